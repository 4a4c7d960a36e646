package tensor

import "fmt"

// Tensor is a node in the computation graph: an array value plus an optional
// accumulated gradient.
//
// Node identity is the *Tensor pointer. Two tensors with equal data are
// distinct graph nodes; the graph never compares values.
//
// The gradient is nil until a backward pass reaches the tensor. Once set it
// always has exactly the shape of the data. A tensor consumed by several
// operations receives one gradient contribution per consumer; contributions
// are summed, never overwritten.
type Tensor struct {
	data *Array
	grad *Array
	name string
}

// NewTensor creates a tensor wrapping the given array.
// The name is a display label only, never a graph key.
func NewTensor(data *Array, name string) *Tensor {
	if data == nil {
		panic("tensor: nil array")
	}
	return &Tensor{
		data: data,
		name: name,
	}
}

// Data returns the tensor's value.
func (t *Tensor) Data() *Array {
	return t.data
}

// Grad returns the accumulated gradient, or nil if no backward pass has
// reached this tensor.
func (t *Tensor) Grad() *Array {
	return t.grad
}

// Name returns the tensor's display label.
func (t *Tensor) Name() string {
	return t.name
}

// Shape returns the shape of the tensor's value.
func (t *Tensor) Shape() Shape {
	return t.data.Shape()
}

// NumElements returns the total number of elements in the value.
func (t *Tensor) NumElements() int {
	return t.data.NumElements()
}

// AccumulateGrad adds one gradient contribution into the tensor's gradient.
// The first contribution is deep-copied so the gradient never aliases an
// upstream array. Panics if the contribution's shape does not match the
// tensor's data shape.
func (t *Tensor) AccumulateGrad(contrib *Array, b Backend) {
	if contrib == nil {
		panic(fmt.Sprintf("accumulate grad: nil contribution for tensor %q", t.name))
	}
	if !contrib.Shape().Equal(t.data.Shape()) {
		panic(fmt.Sprintf("accumulate grad: contribution shape %v does not match tensor %q shape %v",
			contrib.Shape(), t.name, t.data.Shape()))
	}
	if t.grad == nil {
		t.grad = contrib.Clone()
		return
	}
	t.grad = b.Add(t.grad, contrib)
}

// ClearGrad resets the accumulated gradient to nil.
// Callers reusing leaf tensors across backward passes call this between
// passes; the engine itself never clears gradients.
func (t *Tensor) ClearGrad() {
	t.grad = nil
}

// String returns a short description of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%q, shape=%v)", t.name, t.data.Shape())
}
