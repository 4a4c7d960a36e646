// Package autodiff implements reverse-mode automatic differentiation over an
// implicit computation graph.
//
// A Graph records every operation applied through it: each Apply call runs an
// operation's forward pass and registers the (op, inputs, output) triple.
// Backward then walks the recorded subgraph in reverse topological order and
// accumulates gradients into every tensor that contributed to the root.
//
// Usage:
//
//	g := autodiff.New(cpu.New())
//	x, _ := tensor.FromSlice([]float32{2}, tensor.Shape{1}, "x")
//	y := g.Pow(x, 3)
//	z := g.Sum(y)
//	g.Backward(z)
//	fmt.Println(x.Grad().Data()) // [12] (d(x³)/dx at x=2)
//
// A Graph is not safe for concurrent use: graph construction and backward
// passes are plain sequential computations, and callers running concurrent
// passes over shared tensors must serialize them or use disjoint graphs.
// Records are never removed; a graph grows for as long as it is referenced.
package autodiff

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff/ops"
	"github.com/ember-ml/ember/internal/tensor"
)

// record ties one op invocation to its input and output tensors.
type record struct {
	op     ops.Operation
	id     int
	inputs []*tensor.Tensor
	output *tensor.Tensor
}

// Graph is the computation-graph registry. It owns the monotonic op-id
// counter and maps each output tensor to the operation that produced it.
// Tensors are keyed by identity: a tensor absent from the map is a leaf.
type Graph struct {
	backend tensor.Backend
	records map[*tensor.Tensor]*record
	nextID  int
}

// New creates an empty graph computing on the given backend.
func New(backend tensor.Backend) *Graph {
	return &Graph{
		backend: backend,
		records: make(map[*tensor.Tensor]*record),
	}
}

// Backend returns the numeric backend the graph computes on.
func (g *Graph) Backend() tensor.Backend {
	return g.backend
}

// Apply runs one operation invocation: it copies the raw data out of each
// input tensor, runs the op's forward pass, wraps the result in a new output
// tensor, and registers the (op, inputs, output) triple. The op instance must
// not be reused across invocations; its cache belongs to this one.
//
// Registration and forward computation are a single atomic step: if the
// forward pass panics, nothing is registered.
func (g *Graph) Apply(op ops.Operation, inputs ...*tensor.Tensor) *tensor.Tensor {
	raw := make([]*tensor.Array, len(inputs))
	for i, in := range inputs {
		if in == nil {
			panic(fmt.Sprintf("apply: input %d to %s is not a tensor", i, op.Name()))
		}
		// Copy so the forward pass can never alias or mutate tensor storage.
		raw[i] = in.Data().Clone()
	}

	out := op.Compute(g.backend, raw...)
	if out == nil {
		panic(fmt.Sprintf("apply: %s produced no output array", op.Name()))
	}

	g.nextID++
	output := tensor.NewTensor(out, fmt.Sprintf("Op:%s:%d", op.Name(), g.nextID))
	g.records[output] = &record{
		op:     op,
		id:     g.nextID,
		inputs: inputs,
		output: output,
	}
	return output
}

// Add applies element-wise addition: a + b.
func (g *Graph) Add(a, b *tensor.Tensor) *tensor.Tensor {
	return g.Apply(ops.NewAdd(), a, b)
}

// Sub applies element-wise subtraction: a - b.
func (g *Graph) Sub(a, b *tensor.Tensor) *tensor.Tensor {
	return g.Apply(ops.NewSub(), a, b)
}

// Pow raises x element-wise to a scalar exponent.
func (g *Graph) Pow(x *tensor.Tensor, exponent float64) *tensor.Tensor {
	return g.Apply(ops.NewPow(exponent), x)
}

// Square is Pow with the default exponent of 2.
func (g *Graph) Square(x *tensor.Tensor) *tensor.Tensor {
	return g.Apply(ops.NewSquare(), x)
}

// Exp applies the element-wise exponential e^x.
func (g *Graph) Exp(x *tensor.Tensor) *tensor.Tensor {
	return g.Apply(ops.NewExp(), x)
}

// MatMul applies the matrix product a @ b.
func (g *Graph) MatMul(a, b *tensor.Tensor) *tensor.Tensor {
	return g.Apply(ops.NewMatMul(), a, b)
}

// Sum reduces all elements of x to a scalar.
func (g *Graph) Sum(x *tensor.Tensor) *tensor.Tensor {
	return g.Apply(ops.NewSum(), x)
}

// Mean reduces all elements of x to their scalar mean.
func (g *Graph) Mean(x *tensor.Tensor) *tensor.Tensor {
	return g.Apply(ops.NewMean(), x)
}

// NumOps returns the number of registered operations.
func (g *Graph) NumOps() int {
	return len(g.records)
}

// IsLeaf reports whether t has no producing operation in this graph.
func (g *Graph) IsLeaf(t *tensor.Tensor) bool {
	_, ok := g.records[t]
	return !ok
}

// ProducerName returns the label of the operation that produced t, or ""
// if t is a leaf.
func (g *Graph) ProducerName(t *tensor.Tensor) string {
	rec, ok := g.records[t]
	if !ok {
		return ""
	}
	return fmt.Sprintf("Op:%s:%d", rec.op.Name(), rec.id)
}

// Inputs returns the ordered input tensors of the operation that produced t,
// or nil if t is a leaf.
func (g *Graph) Inputs(t *tensor.Tensor) []*tensor.Tensor {
	rec, ok := g.records[t]
	if !ok {
		return nil
	}
	return rec.inputs
}
