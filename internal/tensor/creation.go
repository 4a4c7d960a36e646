package tensor

import (
	"math"
	"math/rand"
)

// FromSlice creates a leaf tensor from a flat slice of values.
// The slice is copied into the tensor's storage.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, "x")
func FromSlice(data []float32, shape Shape, name string) (*Tensor, error) {
	a, err := ArrayFromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return NewTensor(a, name), nil
}

// Zeros creates a leaf tensor filled with zeros.
func Zeros(shape Shape, name string) *Tensor {
	a, err := NewArray(shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return NewTensor(a, name)
}

// Ones creates a leaf tensor filled with ones.
func Ones(shape Shape, name string) *Tensor {
	return FullTensor(shape, 1, name)
}

// FullTensor creates a leaf tensor filled with a specific value.
func FullTensor(shape Shape, value float32, name string) *Tensor {
	t := Zeros(shape, name)
	data := t.Data().Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a leaf tensor with values drawn from a standard normal
// distribution, using the Box-Muller transform.
// Note: uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
func Randn(shape Shape, name string) *Tensor {
	t := Zeros(shape, name)
	data := t.Data().Data()
	for i := 0; i < len(data); i += 2 {
		u1 := rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
		u2 := rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
		z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
		data[i] = float32(z0)
		if i+1 < len(data) {
			data[i+1] = float32(z1)
		}
	}
	return t
}
