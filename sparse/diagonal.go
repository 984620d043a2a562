// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// Diagonal is an n×n diagonal matrix; only the diagonal is stored.
type Diagonal struct {
	values []float64
}

// Size returns n.
func (d *Diagonal) Size() int { return len(d.values) }

// At returns entry (i, j); off-diagonal entries are always 0.
//
// Errors:
//   - ErrOutOfRange if i or j is outside [0, n).
func (d *Diagonal) At(i, j int) (float64, error) {
	n := len(d.values)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("At(%d,%d): size %d: %w", i, j, n, ErrOutOfRange)
	}
	if i != j {
		return 0, nil
	}

	return d.values[i], nil
}

// Values returns a copy of the diagonal.
func (d *Diagonal) Values() []float64 {
	out := make([]float64, len(d.values))
	copy(out, d.values)

	return out
}

// Trace returns the sum of the diagonal; for a degree matrix this is 2|E|.
func (d *Diagonal) Trace() float64 {
	var s float64
	for _, v := range d.values {
		s += v
	}

	return s
}
