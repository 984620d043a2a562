// SPDX-License-Identifier: MIT

package neighborhood

import "errors"

var (
	// ErrIndexOutOfBounds indicates a seed index ≥ the matrix size.
	ErrIndexOutOfBounds = errors.New("neighborhood: index out of bounds")

	// ErrInvalidArgument indicates a negative seed index or hop count.
	ErrInvalidArgument = errors.New("neighborhood: invalid argument")

	// ErrNilMatrix indicates a nil adjacency matrix with a non-empty query.
	ErrNilMatrix = errors.New("neighborhood: adjacency matrix is nil")
)
