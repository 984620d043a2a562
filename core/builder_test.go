// SPDX-License-Identifier: MIT
// Package core_test verifies Builder/Graph contracts: canonicalization,
// set semantics, deterministic ordering and the finalize lifecycle.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapgraph/core"
)

// buildPairs feeds pairs into a fresh builder and finalizes it.
func buildPairs(t *testing.T, pairs [][2]core.NodeID) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, p := range pairs {
		require.NoError(t, b.AddEdge(p[0], p[1]))
	}
	g, err := b.Finalize()
	require.NoError(t, err)

	return g
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		u, v   core.NodeID
		want   core.Edge
		wantOK bool
	}{
		{"ordered", 1, 2, core.Edge{U: 1, V: 2}, true},
		{"reversed", 9, 4, core.Edge{U: 4, V: 9}, true},
		{"negative ids", -3, -7, core.Edge{U: -7, V: -3}, true},
		{"self loop", 5, 5, core.Edge{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := core.Canonicalize(tc.u, tc.v)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestBuilder_SampleEdgeList covers the documented four-node scenario:
// the self-loop "3 3" is dropped and the duplicate "0 1" collapses.
func TestBuilder_SampleEdgeList(t *testing.T) {
	t.Parallel()

	g := buildPairs(t, [][2]core.NodeID{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 3}, {0, 1}})

	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, g.Nodes())
	assert.Equal(t, []core.Edge{{0, 1}, {0, 2}, {1, 2}, {2, 3}}, g.Edges())

	degrees := make([]int, 0, g.NodeCount())
	for _, id := range g.Nodes() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		degrees = append(degrees, d)
	}
	assert.Equal(t, []int{2, 2, 3, 1}, degrees)
}

// TestBuilder_DuplicateIdempotence checks that any mix of repeats and
// reversals of the same pairs yields each canonical pair exactly once.
func TestBuilder_DuplicateIdempotence(t *testing.T) {
	t.Parallel()

	base := [][2]core.NodeID{{10, 20}, {20, 30}, {5, 10}}
	var noisy [][2]core.NodeID
	for rep := 0; rep < 4; rep++ {
		for _, p := range base {
			if rep%2 == 0 {
				noisy = append(noisy, p)
			} else {
				noisy = append(noisy, [2]core.NodeID{p[1], p[0]})
			}
		}
	}

	g := buildPairs(t, noisy)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []core.Edge{{5, 10}, {10, 20}, {20, 30}}, g.Edges())
	assert.True(t, g.HasEdge(30, 20))
	assert.False(t, g.HasEdge(5, 30))
}

func TestBuilder_SparseIdentifiersIndexByRank(t *testing.T) {
	t.Parallel()

	g := buildPairs(t, [][2]core.NodeID{{1000, 7}, {42, 7}, {-5, 1000}})

	require.Equal(t, []core.NodeID{-5, 7, 42, 1000}, g.Nodes())
	for i, id := range g.Nodes() {
		idx, ok := g.Index(id)
		require.True(t, ok)
		assert.Equal(t, i, idx)

		back, err := g.NodeAt(i)
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}

	_, ok := g.Index(8)
	assert.False(t, ok)
	_, err := g.NodeAt(4)
	require.ErrorIs(t, err, core.ErrIndexOutOfBounds)
	_, err = g.NodeAt(-1)
	require.ErrorIs(t, err, core.ErrIndexOutOfBounds)
}

func TestBuilder_InvalidStateAfterFinalize(t *testing.T) {
	t.Parallel()

	b := core.NewBuilder()
	require.NoError(t, b.AddEdge(1, 2))
	_, err := b.Finalize()
	require.NoError(t, err)

	require.ErrorIs(t, b.AddEdge(2, 3), core.ErrInvalidState)
	require.ErrorIs(t, b.AddNode(4), core.ErrInvalidState)
	_, err = b.Finalize()
	require.ErrorIs(t, err, core.ErrInvalidState)
}

func TestBuilder_IsolatedNodes(t *testing.T) {
	t.Parallel()

	b := core.NewBuilder()
	for i := core.NodeID(0); i < 3; i++ {
		require.NoError(t, b.AddNode(i))
	}
	require.NoError(t, b.AddNode(1))
	require.NoError(t, b.AddEdge(1, 1))
	assert.Equal(t, 3, b.NodeCount())
	assert.Equal(t, 0, b.EdgeCount())
	assert.False(t, b.HasEdge(1, 1))

	g, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = g.Neighbors(99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_ReturnedSlicesAreCopies(t *testing.T) {
	t.Parallel()

	g := buildPairs(t, [][2]core.NodeID{{0, 1}})
	nodes := g.Nodes()
	nodes[0] = 99
	edges := g.Edges()
	edges[0] = core.Edge{U: 7, V: 8}

	assert.Equal(t, []core.NodeID{0, 1}, g.Nodes())
	assert.Equal(t, []core.Edge{{0, 1}}, g.Edges())
}

func TestGraph_Components(t *testing.T) {
	t.Parallel()

	b := core.NewBuilder()
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(5, 6))
	require.NoError(t, b.AddNode(9))
	g, err := b.Finalize()
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.ElementsMatch(t, []int{0, 1, 2}, comps[0])
	assert.ElementsMatch(t, []int{3, 4}, comps[1])
	assert.Equal(t, []int{5}, comps[2])
	assert.False(t, g.IsConnected())

	single := buildPairs(t, [][2]core.NodeID{{0, 1}, {1, 2}})
	assert.True(t, single.IsConnected())

	empty, err := core.NewBuilder().Finalize()
	require.NoError(t, err)
	assert.False(t, empty.IsConnected())
	assert.Empty(t, empty.Components())
}
