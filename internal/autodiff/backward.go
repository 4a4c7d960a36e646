package autodiff

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// Backward computes gradients for every tensor reachable backward from root,
// seeding the root's gradient with ones (the standard reverse-mode seed for a
// scalar output). For non-scalar roots use BackwardWithGrad and supply the
// seed explicitly.
func (g *Graph) Backward(root *tensor.Tensor) {
	g.BackwardWithGrad(root, g.backend.Full(root.Shape(), 1))
}

// BackwardWithGrad runs the backward pass from root with an explicit seed
// gradient. Panics if the seed's shape does not match the root's.
//
// Each producing operation's Gradient is invoked exactly once, only after
// every downstream consumer has contributed its gradient to that operation's
// output. Gradients accumulate by summation wherever a tensor feeds more
// than one consumer. Any failure inside a gradient computation aborts the
// whole pass.
func (g *Graph) BackwardWithGrad(root *tensor.Tensor, seed *tensor.Array) {
	if root == nil {
		panic("backward: nil root tensor")
	}
	if seed == nil || !seed.Shape().Equal(root.Shape()) {
		panic(fmt.Sprintf("backward: seed gradient must match root shape %v", root.Shape()))
	}

	root.AccumulateGrad(seed, g.backend)

	// Reverse topological order: depth-first post-order from the root,
	// walked backwards, visits every consumer before the producer it feeds.
	order := g.topoOrder(root)
	for i := len(order) - 1; i >= 0; i-- {
		rec := order[i]
		upstream := rec.output.Grad()

		grads := rec.op.Gradient(g.backend, upstream)
		if len(grads) != len(rec.inputs) {
			panic(fmt.Sprintf("backward: %s returned %d gradients for %d inputs",
				rec.op.Name(), len(grads), len(rec.inputs)))
		}
		for j, in := range rec.inputs {
			in.AccumulateGrad(grads[j], g.backend)
		}
	}
}

// topoOrder collects the producing records of the subgraph reachable backward
// from root, in depth-first post-order. Producers appear before any record
// that consumes their output, so the reversed slice is a valid reverse
// topological order. The traversal is finite because operations consume only
// previously constructed tensors (the subgraph is acyclic).
func (g *Graph) topoOrder(root *tensor.Tensor) []*record {
	var order []*record
	visited := make(map[*record]bool)

	var visit func(t *tensor.Tensor)
	visit = func(t *tensor.Tensor) {
		rec, ok := g.records[t]
		if !ok || visited[rec] {
			return // leaf, or producer already scheduled
		}
		visited[rec] = true
		for _, in := range rec.inputs {
			visit(in)
		}
		order = append(order, rec)
	}
	visit(root)

	return order
}
