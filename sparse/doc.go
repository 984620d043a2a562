// SPDX-License-Identifier: MIT

// Package sparse materializes a finalized core.Graph as a symmetric 0/1
// adjacency matrix in compressed sparse column (CSC) form plus its diagonal
// degree matrix.
//
// CSC layout for an n×n matrix:
//
//	Indptr  len n+1      column j occupies Indices[Indptr[j]:Indptr[j+1]]
//	Indices len nnz      structural row indices, ascending within a column
//	Data    len nnz      stored values (always 1 for adjacency)
//
// Because the adjacency matrix is symmetric, column j is also row j, so
// Column(j) enumerates the neighbors of index j without a dense scan. That
// structural access is what neighborhood queries are built on.
//
// Build is the only constructor. Both matrices share the graph's index
// mapping and are read-only afterwards, so concurrent readers are safe.
//
// Errors:
//
//	ErrGraphNil         - nil *core.Graph passed to Build.
//	ErrNilMatrix        - nil matrix passed to a validator.
//	ErrOutOfRange       - row/column index outside [0, n).
//	ErrAsymmetry        - (i,j) and (j,i) disagree.
//	ErrNonZeroDiagonal  - a diagonal entry of the adjacency matrix is set.
//	ErrDegreeMismatch   - degree entry differs from the adjacency row sum.
//	ErrDimensionMismatch - adjacency and degree matrices differ in size.
package sparse
