// Package tensor provides the core array and tensor types for the Ember
// autodiff engine.
//
// Array is the raw numeric value: a dense, row-major, float32 n-dimensional
// array. Tensor wraps an Array as a node in a computation graph, pairing the
// value with an optional accumulated gradient. Only float32 is supported;
// arithmetic follows IEEE-754 single-precision semantics.
package tensor

import "fmt"

// Array is a dense n-dimensional float32 array in row-major layout.
// It carries no gradient information; see Tensor for the graph node type.
type Array struct {
	data  []float32
	shape Shape
}

// NewArray creates a zero-filled array with the given shape.
func NewArray(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array{
		data:  make([]float32, shape.NumElements()),
		shape: shape.Clone(),
	}, nil
}

// ArrayFromSlice creates an array from a flat slice of values.
// The slice is copied; the array never aliases caller memory.
func ArrayFromSlice(data []float32, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	a := &Array{
		data:  make([]float32, len(data)),
		shape: shape.Clone(),
	}
	copy(a.data, data)
	return a, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Data returns the underlying flat slice.
// Mutating it mutates the array.
func (a *Array) Data() []float32 {
	return a.data
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// IsScalar reports whether the array has rank 0.
func (a *Array) IsScalar() bool {
	return len(a.shape) == 0
}

// Item returns the single element of a scalar array.
// Panics if the array is not a scalar.
func (a *Array) Item() float32 {
	if !a.IsScalar() {
		panic(fmt.Sprintf("item: array has shape %v, not a scalar", a.shape))
	}
	return a.data[0]
}

// At returns the element at the given multi-index.
func (a *Array) At(index ...int) float32 {
	return a.data[a.flatIndex(index)]
}

// Set writes the element at the given multi-index.
func (a *Array) Set(value float32, index ...int) {
	a.data[a.flatIndex(index)] = value
}

func (a *Array) flatIndex(index []int) int {
	if len(index) != len(a.shape) {
		panic(fmt.Sprintf("index rank %d does not match array rank %d", len(index), len(a.shape)))
	}
	strides := a.shape.ComputeStrides()
	flat := 0
	for i, idx := range index {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of range for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		flat += idx * strides[i]
	}
	return flat
}

// Clone returns a deep copy of the array.
// Forward computations copy their inputs so that recorded values cannot be
// corrupted by later mutation of the originals.
func (a *Array) Clone() *Array {
	clone := &Array{
		data:  make([]float32, len(a.data)),
		shape: a.shape.Clone(),
	}
	copy(clone.data, a.data)
	return clone
}
