// SPDX-License-Identifier: MIT
// File: builder.go
// Role: one-shot accumulation of canonical edges and node identifiers.
//
// Policy:
//   - Set semantics for both nodes and edges; duplicates collapse on insert.
//   - Self-loops are dropped without error.
//   - Finalize closes the builder; any later call returns ErrInvalidState.

package core

import (
	"fmt"
	"slices"
)

// Builder accumulates edges for a single Graph.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	nodes     map[NodeID]struct{}
	edges     map[Edge]struct{}
	finalized bool
}

// NewBuilder returns an empty, open Builder.
func NewBuilder() *Builder {
	return &Builder{
		nodes: make(map[NodeID]struct{}),
		edges: make(map[Edge]struct{}),
	}
}

// AddNode inserts an isolated node. Re-inserting an existing node is a no-op.
//
// Errors:
//   - ErrInvalidState if the builder was already finalized.
//
// Complexity: O(1) amortized.
func (b *Builder) AddNode(id NodeID) error {
	if b.finalized {
		return fmt.Errorf("AddNode(%d): %w", id, ErrInvalidState)
	}
	b.nodes[id] = struct{}{}

	return nil
}

// AddEdge canonicalizes {u,v} and inserts it together with both endpoints.
//
// Implementation:
//   - Stage 1: reject use after Finalize.
//   - Stage 2: Canonicalize; a self-loop is a silent no-op.
//   - Stage 3: set-insert the pair and its endpoints.
//
// Behavior highlights:
//   - AddEdge(u,v) followed by AddEdge(v,u) stores exactly one pair.
//
// Errors:
//   - ErrInvalidState if the builder was already finalized.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v NodeID) error {
	if b.finalized {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrInvalidState)
	}
	e, ok := Canonicalize(u, v)
	if !ok {
		return nil
	}
	b.edges[e] = struct{}{}
	b.nodes[e.U] = struct{}{}
	b.nodes[e.V] = struct{}{}

	return nil
}

// HasEdge reports whether the unordered pair {u,v} was already added.
func (b *Builder) HasEdge(u, v NodeID) bool {
	e, ok := Canonicalize(u, v)
	if !ok {
		return false
	}
	_, found := b.edges[e]

	return found
}

// NodeCount returns the number of distinct nodes accumulated so far.
func (b *Builder) NodeCount() int { return len(b.nodes) }

// EdgeCount returns the number of distinct canonical edges accumulated so far.
func (b *Builder) EdgeCount() int { return len(b.edges) }

// Finalize freezes the accumulated sets into an immutable Graph.
//
// Implementation:
//   - Stage 1: sort node identifiers ascending.
//   - Stage 2: assign index i to the i-th smallest node.
//   - Stage 3: sort edges lexicographically and build per-index neighbor lists.
//   - Stage 4: mark the builder closed and release its maps.
//
// Errors:
//   - ErrInvalidState on a second call.
//
// Determinism:
//   - Output is a pure function of the inserted sets, independent of insertion order.
//
// Complexity:
//   - Time O(V log V + E log E), Space O(V + E).
func (b *Builder) Finalize() (*Graph, error) {
	if b.finalized {
		return nil, fmt.Errorf("Finalize: %w", ErrInvalidState)
	}

	nodes := make([]NodeID, 0, len(b.nodes))
	for id := range b.nodes {
		nodes = append(nodes, id)
	}
	slices.Sort(nodes)

	index := make(map[NodeID]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	edges := make([]Edge, 0, len(b.edges))
	for e := range b.edges {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, c Edge) int {
		switch {
		case a.Less(c):
			return -1
		case c.Less(a):
			return 1
		default:
			return 0
		}
	})

	adj := make([][]int, len(nodes))
	for _, e := range edges {
		iu, iv := index[e.U], index[e.V]
		adj[iu] = append(adj[iu], iv)
		adj[iv] = append(adj[iv], iu)
	}
	for i := range adj {
		slices.Sort(adj[i])
	}

	b.finalized = true
	b.nodes, b.edges = nil, nil

	return &Graph{nodes: nodes, edges: edges, index: index, adj: adj}, nil
}
