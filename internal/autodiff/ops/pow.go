package ops

import "github.com/ember-ml/ember/internal/tensor"

// DefaultExponent is the exponent used by Pow when none is given.
const DefaultExponent = 2.0

// Pow raises every element to a scalar exponent: output = x^n.
//
// Backward pass:
//
//	d(x^n)/dx = n·x^(n-1), so grad_x = n·x^(n-1)·upstream
//
// The exponent is an operation parameter, not a tensor input; the forward
// input value is cached for the backward pass.
type Pow struct {
	Exponent float64

	input *tensor.Array // cached by Compute
}

// NewPow creates a Pow op with the given exponent.
func NewPow(exponent float64) *Pow {
	return &Pow{Exponent: exponent}
}

// NewSquare creates a Pow op with the default exponent of 2.
func NewSquare() *Pow {
	return NewPow(DefaultExponent)
}

// Name returns "Pow".
func (op *Pow) Name() string {
	return "Pow"
}

// Compute returns x^n and caches x.
func (op *Pow) Compute(b tensor.Backend, inputs ...*tensor.Array) *tensor.Array {
	checkArity(op.Name(), inputs, 1)
	op.input = inputs[0]
	return b.PowScalar(inputs[0], op.Exponent)
}

// Gradient returns n·x^(n-1)·upstream.
func (op *Pow) Gradient(b tensor.Backend, upstream *tensor.Array) []*tensor.Array {
	if op.input == nil {
		panic("Pow: Gradient called before Compute")
	}
	local := b.MulScalar(b.PowScalar(op.input, op.Exponent-1), float32(op.Exponent))
	return []*tensor.Array{b.Mul(local, upstream)}
}
