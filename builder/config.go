// SPDX-License-Identifier: MIT
// Package: snapgraph/builder
//
// config.go - internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng      = nil → resolved to a wall-clock seeded source at build time
//   • strategy = RepairUnionFind
//   • logger   = zap.NewNop()

package builder

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for Bernoulli trials and repair choices.
	rng *rand.Rand
	// Component bookkeeping used by the repair loop.
	strategy RepairStrategy
	// Structured logger; never nil after resolution.
	logger *zap.Logger
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		strategy: RepairUnionFind,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
