// SPDX-License-Identifier: MIT
// File: expand.go
// Role: closed neighborhood queries over CSC structural storage.

package neighborhood

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/snapgraph/bfs"
	"github.com/katalvlaran/snapgraph/sparse"
)

// Expand returns the closed 1-hop neighborhood of seeds as a sorted,
// duplicate-free slice of matrix indices.
//
// Implementation:
//   - Stage 1: empty seeds return an empty slice without touching adj.
//   - Stage 2: validate adj and every seed (bounds first, then sign).
//   - Stage 3: union the seeds with each seed's CSC column.
//   - Stage 4: sort the union.
//
// Behavior highlights:
//   - The result is always a superset of seeds; duplicate seeds are allowed.
//
// Errors:
//   - ErrNilMatrix, ErrIndexOutOfBounds, ErrInvalidArgument.
//
// Complexity:
//   - Time O(k·d + r log r) for k seeds, average degree d, r result size.
func Expand(seeds []int, adj *sparse.CSC) ([]int, error) {
	if len(seeds) == 0 {
		return []int{}, nil
	}
	if err := validateSeeds(seeds, adj); err != nil {
		return nil, err
	}

	set := make(map[int]struct{}, len(seeds)*2)
	for _, s := range seeds {
		set[s] = struct{}{}
	}
	for _, s := range seeds {
		for _, nbr := range adj.ColumnView(s) {
			set[nbr] = struct{}{}
		}
	}

	return sortedKeys(set), nil
}

// Within returns the closed hops-hop neighborhood of seeds: every index whose
// shortest-path distance to some seed is at most hops. Within(s, adj, 1)
// equals Expand(s, adj); hops == 0 returns the sorted unique seeds.
//
// Errors:
//   - ErrInvalidArgument if hops < 0, plus the Expand validation errors.
//
// Complexity:
//   - Time O(V_h + E_h) over the explored ball, plus sorting.
func Within(seeds []int, adj *sparse.CSC, hops int) ([]int, error) {
	if hops < 0 {
		return nil, fmt.Errorf("Within: hops=%d: %w", hops, ErrInvalidArgument)
	}
	if len(seeds) == 0 {
		return []int{}, nil
	}
	if err := validateSeeds(seeds, adj); err != nil {
		return nil, err
	}
	if hops == 0 {
		out := slices.Clone(seeds)
		slices.Sort(out)

		return slices.Compact(out), nil
	}

	res, err := bfs.BFS(adj, seeds, bfs.WithMaxDepth(hops))
	if err != nil {
		return nil, fmt.Errorf("Within: %w", err)
	}
	out := slices.Clone(res.Order)
	slices.Sort(out)

	return out, nil
}

// validateSeeds checks adj and the seed range. Out-of-bounds is reported
// before negativity, matching the order callers rely on.
func validateSeeds(seeds []int, adj *sparse.CSC) error {
	if adj == nil {
		return ErrNilMatrix
	}
	n := adj.Rows()
	lo, hi := slices.Min(seeds), slices.Max(seeds)
	if hi >= n {
		return fmt.Errorf("seed %d >= size %d: %w", hi, n, ErrIndexOutOfBounds)
	}
	if lo < 0 {
		return fmt.Errorf("seed %d < 0: %w", lo, ErrInvalidArgument)
	}

	return nil
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}
