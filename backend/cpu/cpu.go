// Copyright 2025 The Ember Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the public API for the CPU compute backend.
//
// Example:
//
//	backend := cpu.New()
//	g := autodiff.New(backend)
package cpu

import (
	"github.com/ember-ml/ember/internal/backend/cpu"
)

// Backend is the CPU implementation of tensor.Backend.
type Backend = cpu.CPUBackend

// New creates a new CPU backend.
func New() *Backend {
	return cpu.New()
}
