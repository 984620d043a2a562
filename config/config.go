package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/snapgraph/builder"
)

// ErrInvalidConfig classifies every decode, override or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	Log       Log       `yaml:"log"`
	Source    Source    `yaml:"source"`
	Generator Generator `yaml:"generator"`
	Query     Query     `yaml:"query"`
}

// Log controls logger construction.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Source names an edge-list file. An empty path selects the generator.
type Source struct {
	Path string `yaml:"path"`
}

// Generator holds RandomConnected parameters.
type Generator struct {
	Nodes       int     `yaml:"nodes" validate:"min=1"`
	Probability float64 `yaml:"probability" validate:"gte=0,lte=1"`
	// Seed is optional; nil means a wall-clock seed.
	Seed     *int64 `yaml:"seed"`
	Strategy string `yaml:"strategy" validate:"omitempty,oneof=unionfind recompute"`
}

// Query holds neighborhood query parameters.
type Query struct {
	Seeds   []int `yaml:"seeds" validate:"dive,min=0"`
	Hops    int   `yaml:"hops" validate:"min=1"`
	Workers int   `yaml:"workers" validate:"min=0"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Log:       Log{Level: "info"},
		Generator: Generator{Nodes: 10, Probability: 0.3, Strategy: "unionfind"},
		Query:     Query{Hops: 1},
	}
}

var validate = validator.New()

// Validate runs struct-tag validation.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// BuilderOptions translates the generator section into builder options.
func (g Generator) BuilderOptions(logger *zap.Logger) ([]builder.BuilderOption, error) {
	strategy, err := builder.ParseRepairStrategy(g.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := []builder.BuilderOption{builder.WithRepairStrategy(strategy)}
	if g.Seed != nil {
		opts = append(opts, builder.WithSeed(*g.Seed))
	}
	if logger != nil {
		opts = append(opts, builder.WithLogger(logger))
	}

	return opts, nil
}

// NewLogger builds a production or development zap logger at the configured level.
func NewLogger(l Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q: %w", ErrInvalidConfig, l.Level, err)
	}

	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
