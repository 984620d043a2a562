// Package snap loads SNAP-style edge lists into a canonical core.Graph and
// its sparse adjacency/degree matrices.
//
// Line format:
//
//	# comment            skipped
//	(blank)              skipped
//	u v [ignored...]     edge between integer nodes u and v
//
// Lines with fewer than two fields, or whose first two fields are not
// base-10 integers, are malformed: they are recorded in Result.Skipped,
// logged at Warn, and loading continues. Self-loops are dropped and
// duplicate edges (in either order) collapse, both silently.
//
// Only I/O failures of the underlying reader abort a load.
package snap
