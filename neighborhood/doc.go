// SPDX-License-Identifier: MIT

// Package neighborhood answers closed-neighborhood queries against a sparse
// adjacency matrix.
//
// The closed 1-hop neighborhood of a seed set S is S ∪ {j : (i,j) ∈ E, i ∈ S}.
// Expand computes it by reading each seed's CSC column directly, so the cost
// is O(k·avg-degree) for k seeds rather than a dense O(k·n) scan.
//
// Query surface:
//
//	Expand(seeds, adj)                 // 1-hop, sorted unique indices
//	Within(seeds, adj, hops)           // h-hop via multi-source BFS
//	ExpandBatch(ctx, queries, adj, …)  // independent Expand calls in parallel
//
// Validation happens before any computation; no partial result is ever
// returned. Indices are matrix-space (0-based, contiguous).
//
// Errors:
//
//	ErrIndexOutOfBounds - a seed ≥ matrix size.
//	ErrInvalidArgument  - a negative seed or negative hop count.
//	ErrNilMatrix        - a nil matrix with a non-empty seed set.
//
// Concurrency: queries only read the matrix and may run concurrently
// against the same *sparse.CSC.
package neighborhood
