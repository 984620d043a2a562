// Package builder synthesizes random connected graphs under the Bernoulli
// (Erdős–Rényi G(n,p)) edge model.
//
// The package offers two constructors:
//
//   - RandomSparse(n, p):    nodes 0..n-1, one independent trial per unordered
//     pair i<j in ascending order; no connectivity guarantee.
//   - RandomConnected(n, p): RandomSparse followed by connectivity repair and
//     sparse matrix derivation. While more than one component remains, two
//     distinct components are chosen uniformly at random, one node is chosen
//     uniformly from each, and the two are joined. Every repair merges exactly
//     two components, so the loop runs components-1 times.
//
// Configuration primitives:
//
//   - BuilderOption: a function that mutates builderConfig before use.
//   - WithSeed / WithRand: explicit random source (no global RNG state).
//   - WithRepairStrategy: RepairUnionFind (incremental disjoint-set forest)
//     or RepairRecompute (component labels rebuilt from the full edge list on
//     every repair). Both satisfy the same termination and connectivity
//     postconditions and consume the RNG identically for a given component
//     ordering.
//   - WithLogger: *zap.Logger for Debug-level sampling/repair summaries.
//
// Guarantees:
//
//   - Fast-fail on invalid parameters: n ≥ 1 and p ∈ [0,1] are checked before
//     any graph is allocated; both violations match ErrInvalidArgument.
//   - Determinism: same (n, p, seed, strategy) ⇒ identical graphs.
//   - Postcondition: the returned graph has exactly n nodes and is connected;
//     a violation is reported as ErrInvariantViolation and no result is
//     returned.
//   - Fast‐fail on invalid option parameters via panics in option constructors.
//
// Complexity: O(n²) Bernoulli trials; union-find repair is O(n α(n)) in
// total, recompute repair O(c·(n+E)) for c initial components.
package builder
