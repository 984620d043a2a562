// SPDX-License-Identifier: MIT
// File: types.go
// Role: NodeID, Edge and the canonicalization rule shared by every builder path.

package core

import "fmt"

// NodeID identifies a node. Loaded identifiers need not be contiguous or
// zero-based; generated graphs use 0..n-1.
type NodeID = int64

// Edge is an undirected pair stored in canonical form: U < V.
// Values produced by this package always satisfy the invariant; a literal
// Edge built by hand should go through Canonicalize first.
type Edge struct {
	U NodeID
	V NodeID
}

// String renders the edge as "(u,v)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// Less orders edges lexicographically by (U, V).
func (e Edge) Less(o Edge) bool {
	if e.U != o.U {
		return e.U < o.U
	}
	return e.V < o.V
}

// Canonicalize normalizes the unordered pair {u,v} into (min,max).
// It reports false for a self-referential pair (u == v), which is never a
// valid edge.
//
// Complexity: O(1).
func Canonicalize(u, v NodeID) (Edge, bool) {
	switch {
	case u == v:
		return Edge{}, false
	case u < v:
		return Edge{U: u, V: v}, true
	default:
		return Edge{U: v, V: u}, true
	}
}
