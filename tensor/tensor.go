// Copyright 2025 The Ember Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for Ember's array and tensor types.
//
// Array is a dense float32 n-dimensional array. Tensor wraps an Array as a
// computation-graph node with an optional accumulated gradient. Backend is
// the numeric-kernel boundary implemented by compute backends.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, "x")
//	w := tensor.Randn(tensor.Shape{2, 2}, "w")
package tensor

import (
	"github.com/ember-ml/ember/internal/tensor"
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3} represents a 2×3 matrix; an empty Shape is a scalar.
type Shape = tensor.Shape

// Array is a dense n-dimensional float32 array.
type Array = tensor.Array

// Tensor is a computation-graph node: an array value plus an optional
// accumulated gradient.
type Tensor = tensor.Tensor

// Backend is the numeric-kernel interface implemented by compute backends.
type Backend = tensor.Backend

// NewArray creates a zero-filled array with the given shape.
func NewArray(shape Shape) (*Array, error) {
	return tensor.NewArray(shape)
}

// ArrayFromSlice creates an array from a flat slice of values.
func ArrayFromSlice(data []float32, shape Shape) (*Array, error) {
	return tensor.ArrayFromSlice(data, shape)
}

// NewTensor creates a tensor wrapping the given array.
func NewTensor(data *Array, name string) *Tensor {
	return tensor.NewTensor(data, name)
}

// FromSlice creates a leaf tensor from a flat slice of values.
func FromSlice(data []float32, shape Shape, name string) (*Tensor, error) {
	return tensor.FromSlice(data, shape, name)
}

// Zeros creates a leaf tensor filled with zeros.
func Zeros(shape Shape, name string) *Tensor {
	return tensor.Zeros(shape, name)
}

// Ones creates a leaf tensor filled with ones.
func Ones(shape Shape, name string) *Tensor {
	return tensor.Ones(shape, name)
}

// Full creates a leaf tensor filled with a specific value.
func Full(shape Shape, value float32, name string) *Tensor {
	return tensor.FullTensor(shape, value, name)
}

// Randn creates a leaf tensor with standard-normal random values.
func Randn(shape Shape, name string) *Tensor {
	return tensor.Randn(shape, name)
}
