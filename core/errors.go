// SPDX-License-Identifier: MIT
// Package core: sentinel errors.
//
// Callers branch with errors.Is; implementations attach context with %w.

package core

import "errors"

var (
	// ErrInvalidState indicates a Builder method was called after Finalize.
	ErrInvalidState = errors.New("core: builder already finalized")

	// ErrIndexOutOfBounds indicates a matrix-space index outside [0, NodeCount()).
	ErrIndexOutOfBounds = errors.New("core: index out of bounds")

	// ErrNodeNotFound indicates a node identifier absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)
