// Package cpu implements the CPU backend: pure-Go float32 kernels behind the
// tensor.Backend interface.
package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// CPUBackend implements tensor.Backend with dense float32 loops.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition. Shapes must match exactly.
func (cpu *CPUBackend) Add(a, b *tensor.Array) *tensor.Array {
	result := newResult("add", a, b)
	ra, rb, out := a.Data(), b.Data(), result.Data()
	for i := range out {
		out[i] = ra[i] + rb[i]
	}
	return result
}

// Sub performs element-wise subtraction. Shapes must match exactly.
func (cpu *CPUBackend) Sub(a, b *tensor.Array) *tensor.Array {
	result := newResult("sub", a, b)
	ra, rb, out := a.Data(), b.Data(), result.Data()
	for i := range out {
		out[i] = ra[i] - rb[i]
	}
	return result
}

// Mul performs element-wise multiplication. Shapes must match exactly.
func (cpu *CPUBackend) Mul(a, b *tensor.Array) *tensor.Array {
	result := newResult("mul", a, b)
	ra, rb, out := a.Data(), b.Data(), result.Data()
	for i := range out {
		out[i] = ra[i] * rb[i]
	}
	return result
}

// newResult validates the equal-shape precondition for a binary kernel and
// allocates the result array.
func newResult(kernel string, a, b *tensor.Array) *tensor.Array {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch: %v vs %v", kernel, a.Shape(), b.Shape()))
	}
	result, err := tensor.NewArray(a.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result array: %v", kernel, err))
	}
	return result
}
