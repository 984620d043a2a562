// SPDX-License-Identifier: MIT
// File: build.go
// Role: core.Graph → (adjacency CSC, degree Diagonal).
//
// Contract:
//   - Every canonical edge (u,v) sets both (idx(u),idx(v)) and (idx(v),idx(u)) to 1.
//   - The diagonal is never written; core.Graph holds no self-loops.
//   - Degree entry i is row i's sum, computed once after population.

package sparse

import (
	"slices"

	"github.com/katalvlaran/snapgraph/core"
)

// edgeValue is the stored weight of every adjacency entry.
const edgeValue = 1.0

// Build derives the adjacency and degree matrices of g.
//
// Implementation:
//   - Stage 1: validate g (ErrGraphNil).
//   - Stage 2: count entries per column (each edge contributes to two columns).
//   - Stage 3: prefix-sum counts into Indptr.
//   - Stage 4: scatter both orientations of every edge into Indices/Data.
//   - Stage 5: sort each column's row indices; derive degrees from RowSums.
//
// Behavior highlights:
//   - An empty graph yields 0×0 matrices with Indptr == [0].
//
// Errors:
//   - ErrGraphNil if g is nil.
//
// Determinism:
//   - Result depends only on g; column contents are ascending.
//
// Complexity:
//   - Time O(V + E log d_max), Space O(V + E).
func Build(g *core.Graph) (*CSC, *Diagonal, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	n := g.NodeCount()
	edges := g.Edges()

	// resolve endpoints to matrix indices once
	type pair struct{ i, j int }
	pairs := make([]pair, len(edges))
	counts := make([]int, n)
	for k, e := range edges {
		iu, _ := g.Index(e.U)
		iv, _ := g.Index(e.V)
		pairs[k] = pair{iu, iv}
		counts[iu]++
		counts[iv]++
	}

	indptr := make([]int, n+1)
	for j := 0; j < n; j++ {
		indptr[j+1] = indptr[j] + counts[j]
	}

	nnz := indptr[n]
	indices := make([]int, nnz)
	data := make([]float64, nnz)
	next := make([]int, n)
	copy(next, indptr[:n])
	put := func(row, col int) {
		indices[next[col]] = row
		data[next[col]] = edgeValue
		next[col]++
	}
	for _, p := range pairs {
		put(p.i, p.j)
		put(p.j, p.i)
	}
	for j := 0; j < n; j++ {
		slices.Sort(indices[indptr[j]:indptr[j+1]])
	}

	adj := &CSC{n: n, Indptr: indptr, Indices: indices, Data: data}
	deg := &Diagonal{values: adj.RowSums()}

	return adj, deg, nil
}
