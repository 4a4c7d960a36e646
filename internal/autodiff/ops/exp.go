package ops

import "github.com/ember-ml/ember/internal/tensor"

// Exp is the element-wise exponential: output = e^x.
//
// Backward pass:
//
//	d(e^x)/dx = e^x = output, so grad_x = output·upstream
//
// The forward output is cached so the backward pass never recomputes the
// exponential.
type Exp struct {
	output *tensor.Array // cached by Compute
}

// NewExp creates a new Exp op.
func NewExp() *Exp {
	return &Exp{}
}

// Name returns "Exp".
func (op *Exp) Name() string {
	return "Exp"
}

// Compute returns e^x and caches the output.
func (op *Exp) Compute(b tensor.Backend, inputs ...*tensor.Array) *tensor.Array {
	checkArity(op.Name(), inputs, 1)
	op.output = b.Exp(inputs[0])
	return op.output
}

// Gradient returns output·upstream.
func (op *Exp) Gradient(b tensor.Backend, upstream *tensor.Array) []*tensor.Array {
	if op.output == nil {
		panic("Exp: Gradient called before Compute")
	}
	return []*tensor.Array{b.Mul(op.output, upstream)}
}
