// SPDX-License-Identifier: MIT
// File: graph.go
// Role: immutable finalized graph and its node-index mapping.
//
// Determinism:
//   - Nodes() ascending, Edges() lexicographic, Neighbors() ascending by index.
//
// Concurrency:
//   - No method mutates the Graph; concurrent readers need no locking.

package core

import (
	"fmt"
	"slices"
)

// Graph is a finalized undirected simple graph.
//
// Invariants:
//   - every edge endpoint appears in nodes;
//   - edges holds no duplicates and no self-loops;
//   - index is a bijection nodes[i] ↦ i onto [0, len(nodes)).
type Graph struct {
	nodes []NodeID
	edges []Edge
	index map[NodeID]int
	adj   [][]int // adj[i] = sorted neighbor indices of nodes[i]
}

// Nodes returns a copy of the node identifiers in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID { return slices.Clone(g.nodes) }

// Edges returns a copy of the canonical edges in lexicographic order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns |V|, which is also the matrix dimension.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Index returns the matrix row/column assigned to id.
func (g *Graph) Index(id NodeID) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// NodeAt returns the identifier mapped to matrix index i.
//
// Errors:
//   - ErrIndexOutOfBounds if i is outside [0, NodeCount()).
func (g *Graph) NodeAt(i int) (NodeID, error) {
	if i < 0 || i >= len(g.nodes) {
		return 0, fmt.Errorf("NodeAt(%d): size %d: %w", i, len(g.nodes), ErrIndexOutOfBounds)
	}

	return g.nodes[i], nil
}

// HasEdge reports whether {u,v} is an edge, in either order.
// Complexity: O(log d) with d = degree of the lower-indexed endpoint.
func (g *Graph) HasEdge(u, v NodeID) bool {
	if _, ok := Canonicalize(u, v); !ok {
		return false
	}
	iu, ok := g.index[u]
	if !ok {
		return false
	}
	iv, ok := g.index[v]
	if !ok {
		return false
	}
	_, found := slices.BinarySearch(g.adj[iu], iv)

	return found
}

// Neighbors returns the sorted neighbor identifiers of id.
//
// Errors:
//   - ErrNodeNotFound if id is not in the graph.
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]NodeID, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.nodes[j]
	}

	return out, nil
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrNodeNotFound if id is not in the graph.
func (g *Graph) Degree(id NodeID) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(g.adj[i]), nil
}
