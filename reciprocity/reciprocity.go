// SPDX-License-Identifier: MIT
// Package: rpanet/reciprocity
//
// reciprocity.go - group labels for new nodes and group-dependent reverse edges.
//
// Contract:
//   • A node's group is drawn once, at creation, from a categorical vector.
//   • After a primary edge s→t, the reverse edge t→s is added when a uniform
//     draw p ∈ (0,1) satisfies p ≤ Matrix[group(t)][group(s)].
//   • Self-loops are never reciprocated unless explicitly enabled.
//
// Complexity: SampleGroup O(G), Reciprocate O(1).

// Package reciprocity implements group-based reciprocal edge sampling.
package reciprocity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rpanet/sampler"
)

// NoGroup marks a node without a group label.
const NoGroup = -1

// Sentinel errors for New.
var (
	// ErrEmptyGroups indicates an empty group probability vector.
	ErrEmptyGroups = errors.New("reciprocity: empty group probability vector")
	// ErrMatrixShape indicates a matrix that is not |groups|×|groups|.
	ErrMatrixShape = errors.New("reciprocity: matrix shape mismatch")
)

// Sampler draws group labels and decides reciprocal edges.
// It holds no RNG; every draw uses the caller's stream.
type Sampler struct {
	groupProb []float64
	matrix    [][]float64
	selfLoop  bool
}

// New validates shapes and returns a Sampler. The vector and matrix are copied.
// Probability values are not re-validated; entries outside [0,1] simply
// saturate the comparisons.
func New(groupProb []float64, matrix [][]float64, selfLoop bool) (*Sampler, error) {
	if len(groupProb) == 0 {
		return nil, fmt.Errorf("reciprocity.New: %w", ErrEmptyGroups)
	}
	if len(matrix) != len(groupProb) {
		return nil, fmt.Errorf("reciprocity.New: %d rows for %d groups: %w",
			len(matrix), len(groupProb), ErrMatrixShape)
	}
	m := make([][]float64, len(matrix))
	for i, row := range matrix {
		if len(row) != len(groupProb) {
			return nil, fmt.Errorf("reciprocity.New: row %d has %d columns, want %d: %w",
				i, len(row), len(groupProb), ErrMatrixShape)
		}
		m[i] = append([]float64(nil), row...)
	}
	return &Sampler{
		groupProb: append([]float64(nil), groupProb...),
		matrix:    m,
		selfLoop:  selfLoop,
	}, nil
}

// Groups returns the number of categories.
func (s *Sampler) Groups() int { return len(s.groupProb) }

// SampleGroup draws a category index from the group probability vector.
// If rounding exhausts the vector the last category is returned.
func (s *Sampler) SampleGroup(r *rand.Rand) int {
	g := sampler.OpenUnit(r)
	for i, p := range s.groupProb {
		g -= p
		if g <= 0 {
			return i
		}
	}
	return len(s.groupProb) - 1
}

// Reciprocate reports whether the reverse of source→target is added.
// sourceGroup and targetGroup are the endpoint labels; a NoGroup endpoint
// never reciprocates. No draw is consumed for an ineligible self-loop.
func (s *Sampler) Reciprocate(r *rand.Rand, source, target, sourceGroup, targetGroup int) bool {
	if source == target && !s.selfLoop {
		return false
	}
	if sourceGroup < 0 || targetGroup < 0 ||
		sourceGroup >= len(s.matrix) || targetGroup >= len(s.matrix) {
		return false
	}
	return sampler.OpenUnit(r) <= s.matrix[targetGroup][sourceGroup]
}
