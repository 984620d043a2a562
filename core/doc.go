// SPDX-License-Identifier: MIT

// Package core provides the canonical undirected graph used by every other
// snapgraph package: a one-shot Builder that collapses a noisy edge stream
// into a deduplicated, self-loop-free edge set, and the immutable Graph it
// finalizes into.
//
// The Graph G = (V,E) holds:
//
//   - V: unique int64 node identifiers, sorted ascending.
//   - E: unique canonical pairs (U,V) with U < V, sorted lexicographically.
//   - an index mapping V[i] ↦ i that every matrix and neighborhood query is
//     keyed by. The mapping is derived once in Finalize and never changes.
//
// Build lifecycle:
//
//	b := core.NewBuilder()
//	_ = b.AddEdge(0, 1)   // stored as (0,1)
//	_ = b.AddEdge(1, 0)   // duplicate in reverse order: no-op
//	_ = b.AddEdge(3, 3)   // self-loop: silently dropped
//	g, _ := b.Finalize()  // b is closed; further calls return ErrInvalidState
//
// Canonicalize is the single entry point for pair normalization; AddEdge is
// built on it, so duplicate pairs in either order collapse through plain set
// semantics and no separate dedup pass exists.
//
// Errors:
//
//	ErrInvalidState      - Builder used after Finalize.
//	ErrIndexOutOfBounds  - matrix index outside [0, NodeCount()).
//	ErrNodeNotFound      - node identifier not present in the graph.
//
// Concurrency:
//
//	Builder is not safe for concurrent mutation. A finalized Graph is
//	read-only and may be shared freely across goroutines.
package core
