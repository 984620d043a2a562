// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Structural checks for the adjacency/degree pair produced by Build.
//   - Return wrapped sentinels so call sites and tests can branch with errors.Is.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSymmetric ensures entry (i,j) equals entry (j,i) for every stored entry.
// Complexity: O(nnz · log d_max).
func ValidateSymmetric(m *CSC) error {
	if m == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	for j := 0; j < m.n; j++ {
		for k := m.Indptr[j]; k < m.Indptr[j+1]; k++ {
			i := m.Indices[k]
			mirror, _ := m.At(j, i) // i, j are in range by construction
			if mirror != m.Data[k] {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: (%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal ensures no diagonal entry is non-zero.
// Complexity: O(n · log d_max).
func ValidateZeroDiagonal(m *CSC) error {
	if m == nil {
		return validatorErrorf("ValidateZeroDiagonal", ErrNilMatrix)
	}
	for i := 0; i < m.n; i++ {
		if v, _ := m.At(i, i); v != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal: (%d,%d)", i, i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateDegrees ensures deg is the row-sum diagonal of adj.
// Complexity: O(n + nnz).
func ValidateDegrees(adj *CSC, deg *Diagonal) error {
	if adj == nil || deg == nil {
		return validatorErrorf("ValidateDegrees", ErrNilMatrix)
	}
	if adj.n != deg.Size() {
		return validatorErrorf("ValidateDegrees", ErrDimensionMismatch)
	}
	for i, s := range adj.RowSums() {
		if deg.values[i] != s {
			return validatorErrorf(fmt.Sprintf("ValidateDegrees: row %d", i), ErrDegreeMismatch)
		}
	}

	return nil
}
