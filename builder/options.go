// SPDX-License-Identifier: MIT
// Package: snapgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// instance before graph construction begins.
type BuilderOption func(*builderConfig)

// RepairStrategy selects the component bookkeeping of the repair loop.
type RepairStrategy int

const (
	// RepairUnionFind maintains an incremental disjoint-set forest with
	// per-root member lists.
	RepairUnionFind RepairStrategy = iota
	// RepairRecompute relabels all components from the full edge list on
	// every repair iteration.
	RepairRecompute
)

// String returns the configuration token of s.
func (s RepairStrategy) String() string {
	switch s {
	case RepairUnionFind:
		return "unionfind"
	case RepairRecompute:
		return "recompute"
	default:
		return fmt.Sprintf("RepairStrategy(%d)", int(s))
	}
}

// ParseRepairStrategy maps a configuration token ("unionfind", "recompute",
// case-insensitive; empty means the default) to a RepairStrategy.
func ParseRepairStrategy(s string) (RepairStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unionfind", "union-find":
		return RepairUnionFind, nil
	case "recompute":
		return RepairRecompute, nil
	default:
		return 0, fmt.Errorf("ParseRepairStrategy(%q): %w", s, ErrInvalidArgument)
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRepairStrategy selects the repair bookkeeping. Panics on an unknown value.
func WithRepairStrategy(s RepairStrategy) BuilderOption {
	if s != RepairUnionFind && s != RepairRecompute {
		panic(fmt.Sprintf("builder: WithRepairStrategy(%d)", int(s)))
	}
	return func(c *builderConfig) {
		c.strategy = s
	}
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
