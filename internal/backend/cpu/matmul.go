package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// MatMul multiplies two 2-D arrays: (m,k) @ (k,n) -> (m,n).
// Panics if either input is not 2-D or the inner dimensions differ.
func (cpu *CPUBackend) MatMul(a, b *tensor.Array) *tensor.Array {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: expected 2-D arrays, got %v and %v", aShape, bShape))
	}
	m, k := aShape[0], aShape[1]
	if bShape[0] != k {
		panic(fmt.Sprintf("matmul: inner dimensions do not match: %v @ %v", aShape, bShape))
	}
	n := bShape[1]

	result, err := tensor.NewArray(tensor.Shape{m, n})
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result array: %v", err))
	}

	ra, rb, out := a.Data(), b.Data(), result.Data()
	// Loop order i-p-j keeps the inner loop sequential over both b and out.
	// Every product term is accumulated, even for zero elements of a, so
	// NaN and Inf propagate per IEEE-754 (0·NaN = NaN).
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			av := ra[i*k+p]
			for j := 0; j < n; j++ {
				out[i*n+j] += av * rb[p*n+j]
			}
		}
	}
	return result
}

// Transpose transposes a 2-D array: (m,n) -> (n,m).
func (cpu *CPUBackend) Transpose(x *tensor.Array) *tensor.Array {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("transpose: expected 2-D array, got %v", shape))
	}
	m, n := shape[0], shape[1]

	result, err := tensor.NewArray(tensor.Shape{n, m})
	if err != nil {
		panic(fmt.Sprintf("transpose: failed to create result array: %v", err))
	}

	in, out := x.Data(), result.Data()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out[j*m+i] = in[i*n+j]
		}
	}
	return result
}
