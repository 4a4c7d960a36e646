package ops

import "github.com/ember-ml/ember/internal/tensor"

// Sub is element-wise subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = upstream
//   - d(a-b)/db = -1, so grad_b = -upstream
type Sub struct{}

// NewSub creates a new Sub op.
func NewSub() *Sub {
	return &Sub{}
}

// Name returns "Sub".
func (op *Sub) Name() string {
	return "Sub"
}

// Compute returns a - b. No cache is needed for the backward pass.
func (op *Sub) Compute(b tensor.Backend, inputs ...*tensor.Array) *tensor.Array {
	checkArity(op.Name(), inputs, 2)
	checkEqualShapes(op.Name(), inputs[0], inputs[1])
	return b.Sub(inputs[0], inputs[1])
}

// Gradient returns (upstream, -upstream).
func (op *Sub) Gradient(b tensor.Backend, upstream *tensor.Array) []*tensor.Array {
	return []*tensor.Array{upstream, b.Neg(upstream)}
}
