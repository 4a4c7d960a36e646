package ops

import "github.com/ember-ml/ember/internal/tensor"

// Add is element-wise addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = upstream
//   - d(a+b)/db = 1, so grad_b = upstream
//
// Both inputs must have equal shapes; there is no broadcasting.
type Add struct{}

// NewAdd creates a new Add op.
func NewAdd() *Add {
	return &Add{}
}

// Name returns "Add".
func (op *Add) Name() string {
	return "Add"
}

// Compute returns a + b. No cache is needed for the backward pass.
func (op *Add) Compute(b tensor.Backend, inputs ...*tensor.Array) *tensor.Array {
	checkArity(op.Name(), inputs, 2)
	checkEqualShapes(op.Name(), inputs[0], inputs[1])
	return b.Add(inputs[0], inputs[1])
}

// Gradient passes the upstream gradient through to both inputs unchanged.
func (op *Add) Gradient(b tensor.Backend, upstream *tensor.Array) []*tensor.Array {
	return []*tensor.Array{upstream, upstream}
}
