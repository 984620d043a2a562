package snap

import (
	"fmt"

	"go.uber.org/zap"
)

// defaultMaxLineBytes bounds a single line; bufio's 64 KiB default.
const defaultMaxLineBytes = 64 * 1024

// Option configures Load.
type Option func(*loadConfig)

type loadConfig struct {
	logger       *zap.Logger
	maxLineBytes int
}

func newLoadConfig(opts ...Option) loadConfig {
	cfg := loadConfig{logger: zap.NewNop(), maxLineBytes: defaultMaxLineBytes}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes skipped-line diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("snap: WithLogger(nil)")
	}
	return func(c *loadConfig) { c.logger = l }
}

// WithMaxLineBytes raises the per-line size limit. Panics if n <= 0.
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("snap: WithMaxLineBytes(%d)", n))
	}
	return func(c *loadConfig) { c.maxLineBytes = n }
}
