// SPDX-License-Identifier: MIT
// File: csc.go
// Role: read-only compressed sparse column matrix.
//
// Determinism:
//   - Row indices are ascending within each column, so every enumeration is stable.

package sparse

import (
	"fmt"
	"slices"
)

// CSC is a square matrix in compressed sparse column form.
// Fields are exported for structural access; callers must treat them as
// read-only.
type CSC struct {
	n       int
	Indptr  []int
	Indices []int
	Data    []float64
}

// Rows returns the number of rows.
func (m *CSC) Rows() int { return m.n }

// Cols returns the number of columns.
func (m *CSC) Cols() int { return m.n }

// NNZ returns the number of stored entries.
func (m *CSC) NNZ() int { return len(m.Indices) }

// At returns entry (i, j), or 0 if it is not stored.
//
// Errors:
//   - ErrOutOfRange if i or j is outside [0, n).
//
// Complexity: O(log nnz(col j)).
func (m *CSC) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("At(%d,%d): size %d: %w", i, j, m.n, ErrOutOfRange)
	}
	lo, hi := m.Indptr[j], m.Indptr[j+1]
	if k, found := slices.BinarySearch(m.Indices[lo:hi], i); found {
		return m.Data[lo+k], nil
	}

	return 0, nil
}

// Column returns the structural row indices of column j: for a symmetric
// adjacency matrix these are the neighbors of index j, ascending.
// The slice aliases internal storage and must not be modified.
//
// Errors:
//   - ErrOutOfRange if j is outside [0, n).
func (m *CSC) Column(j int) ([]int, error) {
	if j < 0 || j >= m.n {
		return nil, fmt.Errorf("Column(%d): size %d: %w", j, m.n, ErrOutOfRange)
	}

	return m.ColumnView(j), nil
}

// ColumnView is Column without the bounds check, for hot loops whose
// indices were validated up front.
func (m *CSC) ColumnView(j int) []int {
	return m.Indices[m.Indptr[j]:m.Indptr[j+1]:m.Indptr[j+1]]
}

// RowSums returns the sum of every row.
// Complexity: O(n + nnz).
func (m *CSC) RowSums() []float64 {
	sums := make([]float64, m.n)
	for k, i := range m.Indices {
		sums[i] += m.Data[k]
	}

	return sums
}

// Dense expands the matrix into a row-major [][]float64.
// Intended for diagnostics and small fixtures; O(n²) memory.
func (m *CSC) Dense() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = make([]float64, m.n)
	}
	for j := 0; j < m.n; j++ {
		for k := m.Indptr[j]; k < m.Indptr[j+1]; k++ {
			out[m.Indices[k]][j] = m.Data[k]
		}
	}

	return out
}
