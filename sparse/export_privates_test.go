// SPDX-License-Identifier: MIT

package sparse

// Test bridge: lets sparse_test assemble raw CSC/Diagonal values (including
// malformed ones) to exercise validators. Compiled only with the test binary.

// NewCSC_TestOnly wraps raw CSC arrays without any checks.
func NewCSC_TestOnly(n int, indptr, indices []int, data []float64) *CSC {
	return &CSC{n: n, Indptr: indptr, Indices: indices, Data: data}
}

// NewDiagonal_TestOnly wraps raw diagonal values.
func NewDiagonal_TestOnly(values []float64) *Diagonal {
	return &Diagonal{values: values}
}
