package ops

import "github.com/ember-ml/ember/internal/tensor"

// MatMul is the matrix product of two 2-D arrays: output = A @ B.
//
// Backward pass:
//   - d(A@B)/dA = upstream @ Bᵀ
//   - d(A@B)/dB = Aᵀ @ upstream
//
// Both forward input values are cached for the backward pass. The inner
// dimensions must match; violation is fatal.
type MatMul struct {
	a *tensor.Array // cached by Compute
	b *tensor.Array // cached by Compute
}

// NewMatMul creates a new MatMul op.
func NewMatMul() *MatMul {
	return &MatMul{}
}

// Name returns "MatMul".
func (op *MatMul) Name() string {
	return "MatMul"
}

// Compute returns A @ B and caches both inputs.
func (op *MatMul) Compute(b tensor.Backend, inputs ...*tensor.Array) *tensor.Array {
	checkArity(op.Name(), inputs, 2)
	op.a, op.b = inputs[0], inputs[1]
	return b.MatMul(inputs[0], inputs[1])
}

// Gradient returns (upstream @ Bᵀ, Aᵀ @ upstream).
func (op *MatMul) Gradient(b tensor.Backend, upstream *tensor.Array) []*tensor.Array {
	if op.a == nil || op.b == nil {
		panic("MatMul: Gradient called before Compute")
	}
	gradA := b.MatMul(upstream, b.Transpose(op.b))
	gradB := b.MatMul(b.Transpose(op.a), upstream)
	return []*tensor.Array{gradA, gradB}
}
