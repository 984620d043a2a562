// Package bfs provides breadth-first search over a sparse adjacency matrix,
// returning hop distances, parent links, and visit order in matrix-index
// space.
//
// Search may start from several seeds at once (multi-source BFS): every seed
// is at depth 0 and has no parent. Neighbors are enumerated from the CSC
// column storage, ascending, so the visit order is deterministic.
//
// Options: WithContext, WithMaxDepth, WithOnVisit.
package bfs
