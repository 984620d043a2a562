package snap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/snapgraph/core"
	"github.com/katalvlaran/snapgraph/sparse"
)

// commentPrefix marks a comment line.
const commentPrefix = "#"

// Result is the output of a load.
type Result struct {
	Graph     *core.Graph
	Adjacency *sparse.CSC
	Degree    *sparse.Diagonal
	// Skipped lists malformed lines in input order.
	Skipped []LineError
	// Lines is the number of lines read, including comments and blanks.
	Lines int
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snap: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load reads an edge list from r and builds the graph and its matrices.
//
// Errors:
//   - wrapped reader errors (including bufio.ErrTooLong for an oversize line).
//     Malformed lines are never returned as errors.
//
// Complexity: O(L + E log E) for L input bytes.
func Load(r io.Reader, opts ...Option) (*Result, error) {
	cfg := newLoadConfig(opts...)
	log := cfg.logger

	b := core.NewBuilder()
	res := &Result{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(cfg.maxLineBytes, defaultMaxLineBytes)), cfg.maxLineBytes)
	for sc.Scan() {
		res.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		u, v, err := parseEdge(line)
		if err != nil {
			le := LineError{Line: res.Lines, Text: line, Err: err}
			res.Skipped = append(res.Skipped, le)
			log.Warn("skipping malformed line",
				zap.Int("line", le.Line),
				zap.String("text", le.Text),
				zap.Error(err),
			)
			continue
		}
		if err = b.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("snap: line %d: %w", res.Lines, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("snap: read line %d: %w", res.Lines+1, err)
	}

	g, err := b.Finalize()
	if err != nil {
		return nil, fmt.Errorf("snap: %w", err)
	}
	adj, deg, err := sparse.Build(g)
	if err != nil {
		return nil, fmt.Errorf("snap: %w", err)
	}
	res.Graph, res.Adjacency, res.Degree = g, adj, deg

	log.Debug("edge list loaded",
		zap.Int("lines", res.Lines),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return res, nil
}

// parseEdge classifies a non-blank, non-comment line.
func parseEdge(line string) (core.NodeID, core.NodeID, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ErrTooFewFields
	}
	u, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNotInteger, err)
	}
	v, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNotInteger, err)
	}

	return u, v, nil
}
