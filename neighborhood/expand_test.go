// SPDX-License-Identifier: MIT

package neighborhood_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapgraph/builder"
	"github.com/katalvlaran/snapgraph/core"
	"github.com/katalvlaran/snapgraph/neighborhood"
	"github.com/katalvlaran/snapgraph/sparse"
)

// sampleAdjacency is the four-node fixture: edges (0,1),(0,2),(1,2),(2,3).
func sampleAdjacency(t *testing.T) *sparse.CSC {
	t.Helper()
	b := core.NewBuilder()
	for _, p := range [][2]core.NodeID{{0, 1}, {0, 2}, {1, 2}, {2, 3}} {
		require.NoError(t, b.AddEdge(p[0], p[1]))
	}
	g, err := b.Finalize()
	require.NoError(t, err)
	adj, _, err := sparse.Build(g)
	require.NoError(t, err)

	return adj
}

func TestExpand_SampleScenario(t *testing.T) {
	t.Parallel()

	adj := sampleAdjacency(t)
	tests := []struct {
		name  string
		seeds []int
		want  []int
	}{
		{"node 0", []int{0}, []int{0, 1, 2}},
		{"empty", []int{}, []int{}},
		{"leaf", []int{3}, []int{2, 3}},
		{"hub", []int{2}, []int{0, 1, 2, 3}},
		{"duplicate seeds", []int{3, 3, 0}, []int{0, 1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := neighborhood.Expand(tc.seeds, adj)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpand_EmptySeedsDoNotTouchMatrix(t *testing.T) {
	t.Parallel()

	got, err := neighborhood.Expand(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{}, got)
}

func TestExpand_Validation(t *testing.T) {
	t.Parallel()

	adj := sampleAdjacency(t)
	tests := []struct {
		name  string
		seeds []int
		adj   *sparse.CSC
		want  error
	}{
		{"past end", []int{4}, adj, neighborhood.ErrIndexOutOfBounds},
		{"negative", []int{0, -1}, adj, neighborhood.ErrInvalidArgument},
		{"bounds before sign", []int{-1, 9}, adj, neighborhood.ErrIndexOutOfBounds},
		{"nil matrix", []int{0}, nil, neighborhood.ErrNilMatrix},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := neighborhood.Expand(tc.seeds, tc.adj)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, got)
		})
	}
}

// TestExpand_SupersetProperty checks superset and range bounds on random graphs.
func TestExpand_SupersetProperty(t *testing.T) {
	t.Parallel()

	res, err := builder.RandomConnected(60, 0.04, builder.WithSeed(2024))
	require.NoError(t, err)
	n := res.Adjacency.Rows()

	for _, seeds := range [][]int{{0}, {59}, {1, 7, 13}, {5, 5, 40, 22}} {
		got, err := neighborhood.Expand(seeds, res.Adjacency)
		require.NoError(t, err)
		assert.IsIncreasing(t, got)
		assert.Subset(t, got, seeds)
		for _, idx := range got {
			assert.True(t, idx >= 0 && idx < n)
		}
		for _, s := range seeds {
			col, err := res.Adjacency.Column(s)
			require.NoError(t, err)
			assert.Subset(t, got, col)
		}
	}
}

func TestWithin(t *testing.T) {
	t.Parallel()

	adj := sampleAdjacency(t)

	one, err := neighborhood.Within([]int{0}, adj, 1)
	require.NoError(t, err)
	exp, err := neighborhood.Expand([]int{0}, adj)
	require.NoError(t, err)
	assert.Equal(t, exp, one)

	two, err := neighborhood.Within([]int{3}, adj, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, two)

	zero, err := neighborhood.Within([]int{3, 1, 3}, adj, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, zero)

	_, err = neighborhood.Within([]int{0}, adj, -1)
	require.ErrorIs(t, err, neighborhood.ErrInvalidArgument)
	_, err = neighborhood.Within([]int{8}, adj, 2)
	require.ErrorIs(t, err, neighborhood.ErrIndexOutOfBounds)
}

func TestExpandBatch(t *testing.T) {
	t.Parallel()

	adj := sampleAdjacency(t)
	got, err := neighborhood.ExpandBatch(context.Background(),
		[][]int{{0}, {}, {3}, {1, 2}}, adj, neighborhood.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {}, {2, 3}, {0, 1, 2, 3}}, got)

	_, err = neighborhood.ExpandBatch(context.Background(), [][]int{{0}, {7}}, adj)
	require.ErrorIs(t, err, neighborhood.ErrIndexOutOfBounds)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = neighborhood.ExpandBatch(ctx, [][]int{{0}}, adj)
	require.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { neighborhood.WithWorkers(0) })
}
