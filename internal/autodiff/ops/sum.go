package ops

import "github.com/ember-ml/ember/internal/tensor"

// Sum reduces all elements of an array to a rank-0 scalar.
//
// Backward pass:
//
//	every element contributes 1.0 to the output, so the scalar upstream
//	gradient is broadcast back to the input shape.
//
// Only the input shape needs caching.
type Sum struct {
	inShape tensor.Shape // cached by Compute
}

// NewSum creates a new Sum op.
func NewSum() *Sum {
	return &Sum{}
}

// Name returns "Sum".
func (op *Sum) Name() string {
	return "Sum"
}

// Compute returns the scalar sum of all elements and caches the input shape.
func (op *Sum) Compute(b tensor.Backend, inputs ...*tensor.Array) *tensor.Array {
	checkArity(op.Name(), inputs, 1)
	op.inShape = inputs[0].Shape().Clone()
	return b.Sum(inputs[0])
}

// Gradient broadcasts the scalar upstream gradient to the input shape.
func (op *Sum) Gradient(b tensor.Backend, upstream *tensor.Array) []*tensor.Array {
	if op.inShape == nil {
		panic("Sum: Gradient called before Compute")
	}
	return []*tensor.Array{b.Full(op.inShape, upstream.Item())}
}
