package tensor

import "fmt"

// Shape represents the dimensions of an array.
// An empty Shape describes a scalar (rank 0, one element).
type Shape []int

// NumElements returns how many elements an array of this shape holds.
// A rank-0 shape holds one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive. Zero and negative
// dimensions are rejected, so a valid shape never describes an empty array.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("dimension %d is %d, must be positive", i, dim)
		}
	}
	return nil
}

// Equal reports whether other has the same rank and dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, dim := range s {
		if dim != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides returns the row-major strides for this shape: stride[i] is
// the flat-index distance between neighbors along dimension i, i.e. the
// number of elements in one slice of the trailing dimensions.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s[i]
	}
	return strides
}

// String returns a human-readable form like (2, 3).
func (s Shape) String() string {
	if len(s) == 0 {
		return "()"
	}
	out := "("
	for i, dim := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", dim)
	}
	return out + ")"
}
