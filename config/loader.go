package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables applied on top of the YAML document.
const (
	EnvSourcePath  = "SNAPGRAPH_SOURCE"
	EnvNodes       = "SNAPGRAPH_NODES"
	EnvProbability = "SNAPGRAPH_PROBABILITY"
	EnvSeed        = "SNAPGRAPH_SEED"
	EnvStrategy    = "SNAPGRAPH_STRATEGY"
	EnvLogLevel    = "SNAPGRAPH_LOG_LEVEL"
)

// LookupFunc resolves an environment variable; os.LookupEnv in production.
type LookupFunc func(key string) (string, bool)

// LoadFile reads the YAML document at path. A missing file is an error.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes r over the defaults, applies process environment overrides
// and validates the result.
func Load(r io.Reader) (*Config, error) {
	return LoadWithEnv(r, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
// Unknown YAML keys are rejected. An empty document yields the defaults.
func LoadWithEnv(r io.Reader, lookup LookupFunc) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays SNAPGRAPH_* variables.
func applyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}
	if v, ok := lookup(EnvSourcePath); ok {
		cfg.Source.Path = v
	}
	if v, ok := lookup(EnvStrategy); ok {
		cfg.Generator.Strategy = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvNodes); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvNodes, v, err)
		}
		cfg.Generator.Nodes = n
	}
	if v, ok := lookup(EnvProbability); ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvProbability, v, err)
		}
		cfg.Generator.Probability = p
	}
	if v, ok := lookup(EnvSeed); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvSeed, v, err)
		}
		cfg.Generator.Seed = &s
	}

	return nil
}
