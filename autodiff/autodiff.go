// Copyright 2025 The Ember Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the public API for Ember's reverse-mode
// automatic differentiation engine.
//
// A Graph records tensor operations as they execute and computes gradients
// of a scalar output with respect to every contributing tensor in a single
// backward traversal.
//
// Example:
//
//	import (
//	    "github.com/ember-ml/ember/autodiff"
//	    "github.com/ember-ml/ember/backend/cpu"
//	    "github.com/ember-ml/ember/tensor"
//	)
//
//	func main() {
//	    g := autodiff.New(cpu.New())
//
//	    x, _ := tensor.FromSlice([]float32{2}, tensor.Shape{1}, "x")
//	    y := g.Pow(x, 3)
//	    z := g.Sum(y)
//
//	    g.Backward(z)
//	    fmt.Println(x.Grad().Data()) // [12]
//	}
package autodiff

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/autodiff/ops"
	"github.com/ember-ml/ember/internal/tensor"
)

// Graph is the computation-graph registry and backward engine.
type Graph = autodiff.Graph

// Operation is the contract implemented by every differentiable operation.
type Operation = ops.Operation

// New creates an empty graph computing on the given backend.
func New(backend tensor.Backend) *Graph {
	return autodiff.New(backend)
}
