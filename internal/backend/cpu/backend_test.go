package cpu_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/backend/cpu"
	"github.com/ember-ml/ember/internal/tensor"
)

func arr(t *testing.T, data []float32, shape tensor.Shape) *tensor.Array {
	t.Helper()
	a, err := tensor.ArrayFromSlice(data, shape)
	require.NoError(t, err)
	return a
}

func TestCPUBackend_Name(t *testing.T) {
	assert.Equal(t, "CPU", cpu.New().Name())
}

func TestCPUBackend_Add(t *testing.T) {
	backend := cpu.New()
	a := arr(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := arr(t, []float32{10, 20, 30, 40}, tensor.Shape{2, 2})

	result := backend.Add(a, b)

	assert.Equal(t, []float32{11, 22, 33, 44}, result.Data())
	// Inputs must be untouched.
	assert.Equal(t, []float32{1, 2, 3, 4}, a.Data())
}

func TestCPUBackend_Add_ShapeMismatch(t *testing.T) {
	backend := cpu.New()
	a := arr(t, []float32{1, 2}, tensor.Shape{2})
	b := arr(t, []float32{1, 2, 3}, tensor.Shape{3})

	assert.Panics(t, func() { backend.Add(a, b) })
}

func TestCPUBackend_Sub(t *testing.T) {
	backend := cpu.New()
	a := arr(t, []float32{5, 7}, tensor.Shape{2})
	b := arr(t, []float32{2, 10}, tensor.Shape{2})

	assert.Equal(t, []float32{3, -3}, backend.Sub(a, b).Data())
}

func TestCPUBackend_Mul(t *testing.T) {
	backend := cpu.New()
	a := arr(t, []float32{2, 3}, tensor.Shape{2})
	b := arr(t, []float32{4, -5}, tensor.Shape{2})

	assert.Equal(t, []float32{8, -15}, backend.Mul(a, b).Data())
}

func TestCPUBackend_Neg(t *testing.T) {
	backend := cpu.New()
	x := arr(t, []float32{1, -2, 0}, tensor.Shape{3})

	assert.Equal(t, []float32{-1, 2, 0}, backend.Neg(x).Data())
}

func TestCPUBackend_Exp(t *testing.T) {
	backend := cpu.New()
	x := arr(t, []float32{0, 1, -1}, tensor.Shape{3})

	result := backend.Exp(x).Data()

	assert.InDelta(t, 1.0, result[0], 1e-6)
	assert.InDelta(t, math.E, result[1], 1e-5)
	assert.InDelta(t, 1.0/math.E, result[2], 1e-6)
}

func TestCPUBackend_PowScalar(t *testing.T) {
	backend := cpu.New()
	x := arr(t, []float32{2, 3, 4}, tensor.Shape{3})

	assert.Equal(t, []float32{4, 9, 16}, backend.PowScalar(x, 2).Data())
	assert.Equal(t, []float32{8, 27, 64}, backend.PowScalar(x, 3).Data())
}

func TestCPUBackend_MulScalar(t *testing.T) {
	backend := cpu.New()
	x := arr(t, []float32{1, -2, 3}, tensor.Shape{3})

	assert.Equal(t, []float32{2.5, -5, 7.5}, backend.MulScalar(x, 2.5).Data())
}

func TestCPUBackend_MatMul(t *testing.T) {
	backend := cpu.New()
	// (2,3) @ (3,2) -> (2,2)
	a := arr(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := arr(t, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	result := backend.MatMul(a, b)

	assert.Equal(t, tensor.Shape{2, 2}, result.Shape())
	assert.Equal(t, []float32{58, 64, 139, 154}, result.Data())
}

func TestCPUBackend_MatMul_PropagatesNaNAndInf(t *testing.T) {
	backend := cpu.New()
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	// A zero element must not short-circuit accumulation: 0·NaN = NaN.
	a := arr(t, []float32{0}, tensor.Shape{1, 1})
	b := arr(t, []float32{nan}, tensor.Shape{1, 1})
	result := backend.MatMul(a, b)
	assert.True(t, math.IsNaN(float64(result.Data()[0])), "0 * NaN = %f, want NaN", result.Data()[0])

	// Likewise 0·Inf = NaN, and it must survive further accumulation.
	a = arr(t, []float32{0, 1}, tensor.Shape{1, 2})
	b = arr(t, []float32{inf, 3}, tensor.Shape{2, 1})
	result = backend.MatMul(a, b)
	assert.True(t, math.IsNaN(float64(result.Data()[0])), "0*Inf + 1*3 = %f, want NaN", result.Data()[0])

	// Inf rows reached through a nonzero element stay Inf.
	a = arr(t, []float32{2}, tensor.Shape{1, 1})
	b = arr(t, []float32{inf}, tensor.Shape{1, 1})
	result = backend.MatMul(a, b)
	assert.True(t, math.IsInf(float64(result.Data()[0]), 1), "2 * Inf = %f, want +Inf", result.Data()[0])
}

func TestCPUBackend_MatMul_InnerDimMismatch(t *testing.T) {
	backend := cpu.New()
	a := arr(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := arr(t, []float32{1, 2, 3}, tensor.Shape{3, 1})

	assert.Panics(t, func() { backend.MatMul(a, b) })
}

func TestCPUBackend_MatMul_RequiresMatrices(t *testing.T) {
	backend := cpu.New()
	a := arr(t, []float32{1, 2, 3}, tensor.Shape{3})
	b := arr(t, []float32{1, 2, 3}, tensor.Shape{3, 1})

	assert.Panics(t, func() { backend.MatMul(a, b) })
}

func TestCPUBackend_Transpose(t *testing.T) {
	backend := cpu.New()
	x := arr(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	result := backend.Transpose(x)

	assert.Equal(t, tensor.Shape{3, 2}, result.Shape())
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, result.Data())
}

func TestCPUBackend_Sum(t *testing.T) {
	backend := cpu.New()
	x := arr(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	result := backend.Sum(x)

	assert.True(t, result.IsScalar())
	assert.Equal(t, float32(10), result.Item())
}

func TestCPUBackend_Full(t *testing.T) {
	backend := cpu.New()

	result := backend.Full(tensor.Shape{2, 3}, 1.5)

	assert.Equal(t, tensor.Shape{2, 3}, result.Shape())
	for _, v := range result.Data() {
		assert.Equal(t, float32(1.5), v)
	}

	scalar := backend.Full(tensor.Shape{}, 1)
	assert.True(t, scalar.IsScalar())
	assert.Equal(t, float32(1), scalar.Item())
}
