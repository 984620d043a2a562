package bfs

import (
	"fmt"

	"github.com/katalvlaran/snapgraph/sparse"
)

// queueItem pairs an index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   *sparse.CSC
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on adj starting from every index in seeds.
// Duplicate seeds are visited once.
// Returns ErrNilMatrix, ErrStartOutOfRange or ErrOptionViolation for invalid
// input, the context error on cancellation, or any OnVisit hook error.
func BFS(adj *sparse.CSC, seeds []int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrNilMatrix
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := adj.Rows()
	for _, s := range seeds {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, s, n)
		}
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]queueItem, 0, len(seeds)),
		res: &Result{
			Order:  make([]int, 0, len(seeds)),
			Depth:  make(map[int]int, len(seeds)),
			Parent: make(map[int]int),
		},
	}
	for _, s := range seeds {
		if !w.res.Reached(s) {
			w.enqueue(s, 0, -1)
		}
	}

	return w.res, w.loop()
}

// enqueue marks idx seen at depth d and records its parent (if any).
func (w *walker) enqueue(idx, d, parent int) {
	w.res.Depth[idx] = d
	if parent >= 0 {
		w.res.Parent[idx] = parent
	}
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.idx)
		if err := w.opts.OnVisit(item.idx, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.idx, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj.ColumnView(item.idx) {
			if !w.res.Reached(nbr) {
				w.enqueue(nbr, next, item.idx)
			}
		}
	}

	return nil
}
