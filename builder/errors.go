// SPDX-License-Identifier: MIT
// Package: rpanet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w via builderErrorf.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource →
//   ErrUnsupportedGraphMode → ErrConstructFailed.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the invoked constructor is incompatible
// with the current core.Graph mode (e.g., growth on an undirected graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that a topology could not be constructed
// without breaking invariants (nil constructor, vertex ID collisions, engine
// rejection of the derived configuration).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an option value that is parsed at runtime
// (e.g., an ID scheme name) and is not recognised.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf formats "<method>: <msg>: <sentinel>" keeping err for errors.Is.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
