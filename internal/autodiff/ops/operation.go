// Package ops defines the operation contract and the built-in differentiable
// operations for the Ember autodiff engine.
//
// Every operation implements the Operation interface: a pure forward pass
// over raw arrays (Compute) and a backward pass (Gradient) that maps the
// upstream gradient to one gradient per input. Whatever the backward pass
// needs from the forward pass is stored as typed fields on the op struct
// itself, so each operation's cache is statically known.
//
// One op instance serves exactly one invocation and produces exactly one
// output array. Multi-output operations are not supported.
//
// Built-in operations:
//   - Add: element-wise addition (grads: upstream, upstream)
//   - Sub: element-wise subtraction (grads: upstream, -upstream)
//   - Pow: element-wise power by a scalar exponent (grad: n·x^(n-1)·upstream)
//   - Exp: element-wise e^x (grad: output·upstream)
//   - MatMul: matrix product (grads: upstream·Bᵀ, Aᵀ·upstream)
//   - Sum: full reduction to a scalar (grad: upstream broadcast to input shape)
//   - Mean: mean over all elements (grad: broadcast upstream scaled by 1/size)
package ops

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// Operation is a single differentiable unit of computation.
//
// Compute and Gradient are fatal on misuse: wrong input arity, shape
// precondition violations, and calling Gradient before Compute all panic.
// These indicate programmer error and are never recovered.
type Operation interface {
	// Compute runs the forward pass over raw input arrays and returns the
	// output array. Inputs must not be mutated or aliased by the result.
	Compute(b tensor.Backend, inputs ...*tensor.Array) *tensor.Array

	// Gradient maps the upstream gradient (shaped like the output) to one
	// gradient per input, in the order the inputs were supplied to Compute,
	// each shaped exactly like its corresponding input.
	Gradient(b tensor.Backend, upstream *tensor.Array) []*tensor.Array

	// Name returns the operation name, used to label output tensors.
	Name() string
}

// checkArity panics unless exactly want inputs were supplied.
func checkArity(name string, inputs []*tensor.Array, want int) {
	if len(inputs) != want {
		panic(fmt.Sprintf("%s: expected %d inputs, got %d", name, want, len(inputs)))
	}
	for i, in := range inputs {
		if in == nil {
			panic(fmt.Sprintf("%s: input %d is nil", name, i))
		}
	}
}

// checkEqualShapes panics unless both inputs have identical shapes.
// Element-wise operations do not broadcast.
func checkEqualShapes(name string, a, b *tensor.Array) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch: %v vs %v", name, a.Shape(), b.Shape()))
	}
}
