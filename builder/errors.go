// SPDX-License-Identifier: MIT
// Package: snapgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Parameter violations wrap both ErrInvalidArgument and the specific
//     sentinel, so either can be matched.
//   • Algorithms do not panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrInvalidArgument classifies every out-of-domain generator parameter.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* reject request */ }.
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrTooFewVertices indicates n < 1.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that p is outside the closed interval [0,1]
// (NaN included).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvariantViolation indicates the connectivity postcondition did not hold
// after repair. It is unreachable for a correct repair loop and is not
// recoverable by retrying with the same inputs.
var ErrInvariantViolation = errors.New("builder: invariant violation")
