// SPDX-License-Identifier: MIT

package core

// Components returns the connected components of g in matrix-index space.
// Each component lists its indices in BFS discovery order; components are
// ordered by their smallest index.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and output.
func (g *Graph) Components() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int

	for i0 := range g.nodes {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, j := range g.adj[queue[qi]] {
				if !seen[j] {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// IsConnected reports whether g consists of exactly one component.
// An empty graph has no components and is not connected.
func (g *Graph) IsConnected() bool {
	if len(g.nodes) == 0 {
		return false
	}

	return len(g.Components()) == 1
}
