// SPDX-License-Identifier: MIT

package neighborhood

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/snapgraph/sparse"
)

// BatchOption configures ExpandBatch.
type BatchOption func(*batchConfig)

type batchConfig struct {
	workers int
}

// WithWorkers caps the number of concurrent queries. Panics if k < 1.
func WithWorkers(k int) BatchOption {
	if k < 1 {
		panic(fmt.Sprintf("neighborhood: WithWorkers(%d)", k))
	}
	return func(c *batchConfig) { c.workers = k }
}

// ExpandBatch runs Expand for every query concurrently and returns the
// results in query order. The first failing query cancels the remaining
// ones and its error is returned, prefixed with the query position; no
// partial results are returned.
//
// Default concurrency is runtime.GOMAXPROCS(0).
func ExpandBatch(ctx context.Context, queries [][]int, adj *sparse.CSC, opts ...BatchOption) ([][]int, error) {
	cfg := batchConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([][]int, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, q := range queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Expand(q, adj)
			if err != nil {
				return fmt.Errorf("ExpandBatch: query %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
