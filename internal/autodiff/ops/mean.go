package ops

import "github.com/ember-ml/ember/internal/tensor"

// Mean reduces all elements of an array to their scalar mean.
//
// Backward pass:
//
//	the scalar upstream gradient is broadcast back to the input shape and
//	scaled by 1/size, so Mean's gradient equals Sum's scaled by 1/size.
//
// The input shape and the 1/size factor are cached.
type Mean struct {
	inShape tensor.Shape // cached by Compute
	factor  float32      // 1/size, cached by Compute
}

// NewMean creates a new Mean op.
func NewMean() *Mean {
	return &Mean{}
}

// Name returns "Mean".
func (op *Mean) Name() string {
	return "Mean"
}

// Compute returns the scalar mean of all elements.
// Panics if the input has no elements.
func (op *Mean) Compute(b tensor.Backend, inputs ...*tensor.Array) *tensor.Array {
	checkArity(op.Name(), inputs, 1)
	x := inputs[0]
	if x.NumElements() == 0 {
		panic("Mean: empty input")
	}
	op.inShape = x.Shape().Clone()
	op.factor = 1 / float32(x.NumElements())
	return b.MulScalar(b.Sum(x), op.factor)
}

// Gradient broadcasts the scalar upstream gradient to the input shape,
// scaled by 1/size.
func (op *Mean) Gradient(b tensor.Backend, upstream *tensor.Array) []*tensor.Array {
	if op.inShape == nil {
		panic("Mean: Gradient called before Compute")
	}
	return []*tensor.Array{b.Full(op.inShape, upstream.Item() * op.factor)}
}
