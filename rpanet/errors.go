// SPDX-License-Identifier: MIT
// Package: rpanet
//
// errors.go - sentinel errors for the rpanet package.
//
// Error policy:
//   • Only construction-time shape checks return errors; growth never does.
//   • Candidate exhaustion is NOT an error: it truncates one step and is
//     reported in Result.Exhaustions.
//   • Callers branch with errors.Is; messages carry method context via %w.

package rpanet

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySeed indicates a seed network without nodes.
	ErrEmptySeed = errors.New("rpanet: seed network has no nodes")

	// ErrSeedMismatch indicates seed slices of different lengths or seed
	// edges referencing unknown nodes.
	ErrSeedMismatch = errors.New("rpanet: inconsistent seed network")

	// ErrBadScenario indicates scenario probabilities that are negative or
	// sum above one.
	ErrBadScenario = errors.New("rpanet: invalid scenario probabilities")

	// ErrBadReciprocity indicates a group vector or reciprocity matrix of the
	// wrong shape, or a seed group label outside the group range.
	ErrBadReciprocity = errors.New("rpanet: invalid reciprocity configuration")

	// ErrBadWeight indicates a negative or non-finite seed or edge weight.
	ErrBadWeight = errors.New("rpanet: invalid weight")

	// ErrBadSteps indicates a negative per-step edge count.
	ErrBadSteps = errors.New("rpanet: invalid step edge count")
)

// rpanetErrorf formats "<method>: <msg>: <sentinel>".
func rpanetErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
