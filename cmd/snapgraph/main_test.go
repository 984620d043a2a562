package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapgraph/config"
	"github.com/katalvlaran/snapgraph/neighborhood"
)

func TestRun_EdgeList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("# g\n0 1\n0 2\n1 2\n2 3\n3 3\n0 1\n"), 0o600))

	var out bytes.Buffer
	err := run(context.Background(), []string{"-edges", path, "-seeds", "0"}, &out)
	require.NoError(t, err)
	assert.Equal(t,
		"nodes=4 edges=4 components=1 degree_sum=8\nneighborhood([0], hops=1) = [0 1 2]\n",
		out.String())
}

func TestRun_GeneratorFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapgraph.yaml")
	doc := "log: {level: error}\ngenerator: {nodes: 6, probability: 0, seed: 3}\nquery: {seeds: [2], hops: 6}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", path}, &out))
	assert.Equal(t,
		"nodes=6 edges=5 components=1 degree_sum=10\nneighborhood([2], hops=6) = [0 1 2 3 4 5]\n",
		out.String())
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-nodes", "0"}, &out)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	err = run(context.Background(), []string{"-nodes", "3", "-p", "1", "-seeds", "9", "-log"}, &out)
	require.Error(t, err)

	err = run(context.Background(), []string{"-nodes", "3", "-p", "1", "-seeds", "9"}, &out)
	require.ErrorIs(t, err, neighborhood.ErrIndexOutOfBounds)

	_, err = parseSeeds("1,x")
	require.Error(t, err)
}
