// SPDX-License-Identifier: MIT
// Package: snapgraph/builder
//
// random.go - RandomSparse and RandomConnected.
//
// Canonical model:
//   - Undirected G(n,p): iterate unordered pairs {i,j} with i<j, i asc then j asc;
//     include the pair iff rng.Float64() < p (so p=0 never and p=1 always includes).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), then 0 ≤ p ≤ 1 (else ErrInvalidProbability);
//     both wrap ErrInvalidArgument and are checked before any allocation.
//   - Node identifiers are 0..n-1, which are also their matrix indices.
//
// Determinism:
//   - Stable trial order and seeded RNG ⇒ identical output per (n, p, seed, strategy).

package builder

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/snapgraph/bfs"
	"github.com/katalvlaran/snapgraph/core"
	"github.com/katalvlaran/snapgraph/sparse"
)

// File-local constants (stable method tags and domains).
const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
	minVertices           = 1
	probMin               = 0.0
	probMax               = 1.0
)

// Result is the output of RandomConnected.
type Result struct {
	// Graph is the finalized connected graph over 0..n-1.
	Graph *core.Graph
	// Adjacency is the symmetric 0/1 CSC adjacency matrix of Graph.
	Adjacency *sparse.CSC
	// Degree is the diagonal degree matrix of Graph.
	Degree *sparse.Diagonal
	// Repairs is the number of component-joining edges added.
	Repairs int
}

// RandomSparse samples a G(n,p) graph without any connectivity guarantee.
//
// Errors:
//   - ErrInvalidArgument + ErrTooFewVertices / ErrInvalidProbability.
//
// Complexity:
//   - Time O(n²) trials, Space O(n + E).
func RandomSparse(n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	if err := validate(methodRandomSparse, n, p); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	b, _, err := sample(n, p, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}
	g, err := b.Finalize()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}

	return g, nil
}

// RandomConnected samples a G(n,p) graph, repairs it into a single component
// and derives its sparse matrices.
//
// Implementation:
//   - Stage 1: validate n and p (fail fast, no side effects).
//   - Stage 2: add nodes 0..n-1 and run one Bernoulli trial per pair i<j.
//   - Stage 3: while components > 1, join a random node of one random
//     component to a random node of another.
//   - Stage 4: finalize, build CSC/degree matrices.
//   - Stage 5: verify by BFS from index 0 that all n nodes are reachable.
//
// Behavior highlights:
//   - n=1: no trials, no repairs.
//   - p=0: exactly n-1 repairs (a random spanning tree over the singletons).
//   - p=1: complete graph, no repairs.
//
// Errors:
//   - ErrInvalidArgument + ErrTooFewVertices / ErrInvalidProbability.
//   - ErrInvariantViolation if the postcondition fails (unreachable in practice).
//
// Complexity:
//   - Time O(n²) trials + repair cost (see package doc), Space O(n + E).
func RandomConnected(n int, p float64, opts ...BuilderOption) (*Result, error) {
	if err := validate(methodRandomConnected, n, p); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	b, edges, err := sample(n, p, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
	}
	sampled := len(edges)

	tracker := newTracker(cfg.strategy, n, edges)
	initial := tracker.count()
	repairs := 0
	for tracker.count() > 1 {
		u, v := tracker.pick(cfg.rng)
		if err = b.AddEdge(core.NodeID(u), core.NodeID(v)); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomConnected, u, v, err)
		}
		tracker.join(u, v)
		repairs++
		if repairs >= n {
			// each join removes one component; more than n-1 joins means the tracker is broken
			return nil, fmt.Errorf("%s: repair did not converge after %d joins: %w",
				methodRandomConnected, repairs, ErrInvariantViolation)
		}
	}

	g, err := b.Finalize()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
	}
	adj, deg, err := sparse.Build(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
	}
	if err = verifyConnected(g, adj, n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
	}

	cfg.logger.Debug("random connected graph built",
		zap.Int("nodes", n),
		zap.Float64("p", p),
		zap.Int("sampled_edges", sampled),
		zap.Int("initial_components", initial),
		zap.Int("repairs", repairs),
		zap.Stringer("strategy", cfg.strategy),
	)

	return &Result{Graph: g, Adjacency: adj, Degree: deg, Repairs: repairs}, nil
}

// validate applies the documented priority: size first, then probability.
func validate(method string, n int, p float64) error {
	if n < minVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w: %w",
			method, n, minVertices, ErrInvalidArgument, ErrTooFewVertices)
	}
	if math.IsNaN(p) || p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w: %w",
			method, p, probMin, probMax, ErrInvalidArgument, ErrInvalidProbability)
	}

	return nil
}

// sample adds nodes 0..n-1 and the Bernoulli edges to a fresh builder.
// It also returns the sampled edges in index space for component tracking.
func sample(n int, p float64, cfg builderConfig) (*core.Builder, [][2]int, error) {
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		if err := b.AddNode(core.NodeID(i)); err != nil {
			return nil, nil, fmt.Errorf("AddNode(%d): %w", i, err)
		}
	}

	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				if err := b.AddEdge(core.NodeID(i), core.NodeID(j)); err != nil {
					return nil, nil, fmt.Errorf("AddEdge(%d,%d): %w", i, j, err)
				}
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return b, edges, nil
}

// verifyConnected checks the postcondition: n nodes, all reachable from index 0.
func verifyConnected(g *core.Graph, adj *sparse.CSC, n int) error {
	if g.NodeCount() != n {
		return fmt.Errorf("node count %d != %d: %w", g.NodeCount(), n, ErrInvariantViolation)
	}
	res, err := bfs.BFS(adj, []int{0})
	if err != nil {
		return fmt.Errorf("connectivity check: %v: %w", err, ErrInvariantViolation)
	}
	if len(res.Order) != n {
		return fmt.Errorf("reached %d of %d nodes: %w", len(res.Order), n, ErrInvariantViolation)
	}

	return nil
}
