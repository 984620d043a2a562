package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapgraph/builder"
	"github.com/katalvlaran/snapgraph/config"
)

// envMap returns a LookupFunc backed by m.
func envMap(m map[string]string) config.LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

const sampleYAML = `
log:
  level: debug
  development: true
source:
  path: graphs/sample.txt
generator:
  nodes: 50
  probability: 0.1
  seed: 7
  strategy: recompute
query:
  seeds: [0, 3]
  hops: 2
  workers: 4
`

func TestLoad_Document(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadWithEnv(strings.NewReader(sampleYAML), envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "graphs/sample.txt", cfg.Source.Path)
	assert.Equal(t, 50, cfg.Generator.Nodes)
	assert.InDelta(t, 0.1, cfg.Generator.Probability, 1e-12)
	require.NotNil(t, cfg.Generator.Seed)
	assert.EqualValues(t, 7, *cfg.Generator.Seed)
	assert.Equal(t, []int{0, 3}, cfg.Query.Seeds)
	assert.Equal(t, 2, cfg.Query.Hops)
}

func TestLoad_EmptyDocumentYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadWithEnv(strings.NewReader(""), envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadWithEnv(strings.NewReader(sampleYAML), envMap(map[string]string{
		config.EnvSourcePath:  "",
		config.EnvNodes:       "12",
		config.EnvProbability: "0",
		config.EnvSeed:        "-3",
		config.EnvStrategy:    "unionfind",
		config.EnvLogLevel:    "warn",
	}))
	require.NoError(t, err)
	assert.Empty(t, cfg.Source.Path)
	assert.Equal(t, 12, cfg.Generator.Nodes)
	assert.Zero(t, cfg.Generator.Probability)
	assert.EqualValues(t, -3, *cfg.Generator.Seed)
	assert.Equal(t, "unionfind", cfg.Generator.Strategy)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		env  map[string]string
	}{
		{"zero nodes", "generator: {nodes: 0}", nil},
		{"probability above one", "generator: {nodes: 3, probability: 1.5}", nil},
		{"unknown strategy", "generator: {strategy: bfs}", nil},
		{"negative seed index", "query: {seeds: [1, -2]}", nil},
		{"zero hops", "query: {hops: 0}", nil},
		{"bad level", "log: {level: loud}", nil},
		{"unknown key", "generator: {vertices: 3}", nil},
		{"malformed yaml", "generator: [", nil},
		{"bad env int", "", map[string]string{config.EnvNodes: "many"}},
		{"bad env float", "", map[string]string{config.EnvProbability: "half"}},
		{"bad env seed", "", map[string]string{config.EnvSeed: "0x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadWithEnv(strings.NewReader(tc.doc), envMap(tc.env))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator: {nodes: 5, probability: 0.5}\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Generator.Nodes)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerator_BuilderOptions(t *testing.T) {
	t.Parallel()

	seed := int64(4)
	gen := config.Generator{Nodes: 8, Probability: 0, Seed: &seed, Strategy: "recompute"}
	opts, err := gen.BuilderOptions(nil)
	require.NoError(t, err)

	res, err := builder.RandomConnected(gen.Nodes, gen.Probability, opts...)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Repairs)

	_, err = config.Generator{Strategy: "nope"}.BuilderOptions(nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	l, err := config.NewLogger(config.Log{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = config.NewLogger(config.Log{Level: "chatty"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
