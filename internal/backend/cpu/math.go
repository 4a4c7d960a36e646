package cpu

import (
	"fmt"
	"math"

	"github.com/ember-ml/ember/internal/tensor"
)

// Neg negates all elements.
func (cpu *CPUBackend) Neg(x *tensor.Array) *tensor.Array {
	result := newUnaryResult("neg", x)
	in, out := x.Data(), result.Data()
	for i := range out {
		out[i] = -in[i]
	}
	return result
}

// Exp computes the element-wise exponential e^x.
func (cpu *CPUBackend) Exp(x *tensor.Array) *tensor.Array {
	result := newUnaryResult("exp", x)
	in, out := x.Data(), result.Data()
	for i := range out {
		out[i] = float32(math.Exp(float64(in[i])))
	}
	return result
}

// PowScalar raises every element to the given scalar exponent.
func (cpu *CPUBackend) PowScalar(x *tensor.Array, exponent float64) *tensor.Array {
	result := newUnaryResult("pow", x)
	in, out := x.Data(), result.Data()
	for i := range out {
		out[i] = float32(math.Pow(float64(in[i]), exponent))
	}
	return result
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.Array, scalar float32) *tensor.Array {
	result := newUnaryResult("mulscalar", x)
	in, out := x.Data(), result.Data()
	for i := range out {
		out[i] = in[i] * scalar
	}
	return result
}

// Full constructs an array of the given shape filled with value.
func (cpu *CPUBackend) Full(shape tensor.Shape, value float32) *tensor.Array {
	result, err := tensor.NewArray(shape)
	if err != nil {
		panic(fmt.Sprintf("full: %v", err))
	}
	out := result.Data()
	for i := range out {
		out[i] = value
	}
	return result
}

func newUnaryResult(kernel string, x *tensor.Array) *tensor.Array {
	result, err := tensor.NewArray(x.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result array: %v", kernel, err))
	}
	return result
}
