package tensor

// Backend defines the numeric-kernel boundary consumed by the autodiff
// engine. Implementations provide dense float32 kernels; the engine never
// touches element data directly.
//
// Kernels must allocate fresh result arrays and must not mutate their
// inputs: the computation graph retains forward values for the backward
// pass. Shape preconditions (equal shapes for element-wise kernels, matching
// inner dimensions for MatMul) are fatal; kernels panic on violation.
type Backend interface {
	// Element-wise binary operations. Both inputs must have equal shapes.
	Add(a, b *Array) *Array
	Sub(a, b *Array) *Array
	Mul(a, b *Array) *Array

	// Element-wise unary operations.
	Neg(x *Array) *Array
	Exp(x *Array) *Array

	// Scalar operations (element-wise with a scalar).
	PowScalar(x *Array, exponent float64) *Array
	MulScalar(x *Array, scalar float32) *Array

	// MatMul multiplies two 2-D arrays: (m,k) @ (k,n) -> (m,n).
	MatMul(a, b *Array) *Array

	// Transpose transposes a 2-D array.
	Transpose(x *Array) *Array

	// Sum reduces all elements to a rank-0 scalar array.
	Sum(x *Array) *Array

	// Full constructs an array of the given shape filled with value.
	Full(shape Shape, value float32) *Array

	// Name returns the backend name.
	Name() string
}
