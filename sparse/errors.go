// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every message is prefixed with "sparse: ..."; wrap with %w at call sites
// and match with errors.Is.

package sparse

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Build.
	ErrGraphNil = errors.New("sparse: graph is nil")

	// ErrNilMatrix indicates that a nil matrix was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrAsymmetry signals that entry (i,j) differs from entry (j,i).
	ErrAsymmetry = errors.New("sparse: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a stored, non-zero diagonal entry.
	ErrNonZeroDiagonal = errors.New("sparse: diagonal not zero")

	// ErrDegreeMismatch signals a degree entry that differs from the row sum.
	ErrDegreeMismatch = errors.New("sparse: degree differs from adjacency row sum")

	// ErrDimensionMismatch signals two matrices of different size.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)
