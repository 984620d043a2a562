// Package snapgraph builds and queries sparse graph representations: it
// loads SNAP edge lists into a canonical undirected graph, synthesizes random
// connected graphs, and answers closed-neighborhood queries against a CSC
// adjacency matrix.
//
// What is in the box:
//
//	core/         - canonical edges, one-shot Builder, immutable Graph + index mapping
//	sparse/       - CSC adjacency and diagonal degree matrices, validators
//	snap/         - edge-list loader (comments, blanks, malformed-line diagnostics)
//	builder/      - RandomSparse / RandomConnected (Bernoulli model + connectivity repair)
//	neighborhood/ - Expand, Within, ExpandBatch over CSC structural storage
//	bfs/          - multi-source breadth-first search in matrix-index space
//	config/       - YAML configuration, validation, zap logger construction
//	cmd/snapgraph - command-line driver
//
// Quick ASCII example (the four-node fixture used throughout the tests):
//
//	0───1
//	 ╲ ╱
//	  2───3
//
// degrees [2 2 3 1]; Expand([0]) = [0 1 2].
//
// Every construction is a one-shot batch build: graphs and matrices are never
// mutated after they are returned, so they can be shared across goroutines.
//
//	go get github.com/katalvlaran/snapgraph
package snapgraph
