// SPDX-License-Identifier: MIT
// Package: snapgraph/builder
//
// components.go - component bookkeeping for connectivity repair.
//
// Both trackers expose components as an ordered list of member slices.
// Ordering rule: components appear in order of their first member when the
// tracker was (re)built; the union-find tracker then swap-deletes absorbed
// roots, so its order diverges from a fresh rebuild after the first merge.

package builder

import "math/rand"

// componentTracker is the small surface the repair loop needs.
type componentTracker interface {
	// count returns the current number of components.
	count() int
	// pick draws two distinct components uniformly, then one member
	// uniformly from each.
	pick(rng *rand.Rand) (u, v int)
	// join records a new edge u-v between two different components.
	join(u, v int)
}

// forest is a disjoint-set forest over 0..n-1 with member lists per root.
type forest struct {
	parent  []int
	members [][]int // members[r] is non-nil only for roots
	roots   []int   // live roots, one per component
	pos     []int   // pos[r] = index of root r in roots
}

// newForest builds a forest from n singletons and unions every edge.
// Complexity: O(n + E·α(n)).
func newForest(n int, edges [][2]int) *forest {
	f := &forest{parent: make([]int, n)}
	for i := range f.parent {
		f.parent[i] = i
	}
	for _, e := range edges {
		f.link(e[0], e[1])
	}
	f.collect()

	return f
}

// find returns the root of x with path halving.
func (f *forest) find(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}

	return x
}

// link unions the sets of a and b without member bookkeeping.
func (f *forest) link(a, b int) {
	ra, rb := f.find(a), f.find(b)
	if ra != rb {
		f.parent[rb] = ra
	}
}

// collect derives member lists and the ordered root list by scanning 0..n-1.
func (f *forest) collect() {
	n := len(f.parent)
	f.members = make([][]int, n)
	f.pos = make([]int, n)
	f.roots = f.roots[:0]
	for i := 0; i < n; i++ {
		r := f.find(i)
		if f.members[r] == nil {
			f.pos[r] = len(f.roots)
			f.roots = append(f.roots, r)
		}
		f.members[r] = append(f.members[r], i)
	}
}

func (f *forest) count() int { return len(f.roots) }

func (f *forest) pick(rng *rand.Rand) (int, int) {
	k := len(f.roots)
	a := rng.Intn(k)
	b := rng.Intn(k - 1)
	if b >= a {
		b++
	}
	ma, mb := f.members[f.roots[a]], f.members[f.roots[b]]

	return ma[rng.Intn(len(ma))], mb[rng.Intn(len(mb))]
}

// join merges the smaller component into the larger one.
// Complexity: O(min(|A|,|B|)) amortized.
func (f *forest) join(u, v int) {
	ru, rv := f.find(u), f.find(v)
	if ru == rv {
		return
	}
	if len(f.members[ru]) < len(f.members[rv]) {
		ru, rv = rv, ru
	}
	f.parent[rv] = ru
	f.members[ru] = append(f.members[ru], f.members[rv]...)
	f.members[rv] = nil

	// swap-delete rv from roots
	last := f.roots[len(f.roots)-1]
	f.roots[f.pos[rv]] = last
	f.pos[last] = f.pos[rv]
	f.roots = f.roots[:len(f.roots)-1]
}

// recomputeTracker relabels components from scratch after every join.
type recomputeTracker struct {
	n     int
	edges [][2]int
	f     *forest
}

func newRecomputeTracker(n int, edges [][2]int) *recomputeTracker {
	own := make([][2]int, len(edges))
	copy(own, edges)

	return &recomputeTracker{n: n, edges: own, f: newForest(n, own)}
}

func (t *recomputeTracker) count() int { return t.f.count() }

func (t *recomputeTracker) pick(rng *rand.Rand) (int, int) { return t.f.pick(rng) }

func (t *recomputeTracker) join(u, v int) {
	t.edges = append(t.edges, [2]int{u, v})
	t.f = newForest(t.n, t.edges)
}

// newTracker selects the bookkeeping for strategy s.
func newTracker(s RepairStrategy, n int, edges [][2]int) componentTracker {
	if s == RepairRecompute {
		return newRecomputeTracker(n, edges)
	}

	return newForest(n, edges)
}
