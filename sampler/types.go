// SPDX-License-Identifier: MIT
// Package: rpanet/sampler
//
// types.go - roles, the Sampler contract, sentinel errors and shared helpers.
//
// Contract:
//   • Node ids are dense and assigned by Insert in creation order (0..N-1).
//   • A freshly inserted node has zero preference in both roles until SetWeights.
//   • Sample draws an id with probability pref(id)/Σpref over non-excluded ids.
//   • Sample never panics on exhaustion; it returns ErrNoCandidate instead.
//   • Implementations are NOT safe for concurrent use (single writer).

package sampler

import (
	"errors"
	"math/rand"
)

// Role selects which preference a draw is proportional to.
type Role uint8

const (
	// Source is the role of an edge's tail (out-going end).
	Source Role = iota
	// Target is the role of an edge's head (in-coming end).
	Target
)

// numRoles sizes the per-role arrays.
const numRoles = 2

// String renders the role for logs and metric labels.
func (r Role) String() string {
	switch r {
	case Source:
		return "source"
	case Target:
		return "target"
	default:
		return "unknown"
	}
}

// Opposite returns the other role.
func (r Role) Opposite() Role {
	if r == Source {
		return Target
	}
	return Source
}

// ErrNoCandidate indicates that the non-excluded preference mass of the
// requested role is not positive, so no node can be drawn.
var ErrNoCandidate = errors.New("sampler: no eligible candidate")

// massEpsilon is the relative threshold below which the remaining
// (non-excluded) mass is treated as empty. It absorbs aggregate drift so a
// fully excluded population is never mistaken for a sampleable one.
const massEpsilon = 1e-12

// maxRejections bounds the rejection loop. With a positive remaining mass the
// loop ends with probability one; the bound only guards pathological drift.
const maxRejections = 1 << 24

// Stats reports cumulative sampling diagnostics.
type Stats struct {
	// Rejections counts draws discarded because the id was excluded, per role.
	Rejections [numRoles]uint64
	// Clamps counts descents where the remaining weight exceeded a subtree
	// aggregate and had to be clamped (floating-point drift).
	Clamps uint64
	// Fallbacks counts linear walks that ran off the end and returned the last
	// eligible node (floating-point drift).
	Fallbacks uint64
}

// Sampler is the node-selection contract shared by Tree and Linear.
type Sampler interface {
	// Len returns the number of inserted nodes.
	Len() int
	// Insert appends a node with zero preferences and returns its id.
	Insert() int
	// SetWeights recomputes both preferences of id from its strengths.
	SetWeights(id int, outWeight, inWeight float64)
	// Preference returns the current preference of id for role.
	Preference(id int, role Role) float64
	// Total returns the sum of all preferences for role.
	Total(role Role) float64
	// Sample draws a non-excluded id proportionally to role preference.
	Sample(r *rand.Rand, role Role, excluded *Exclusion) (int, error)
	// Stats returns cumulative diagnostics.
	Stats() Stats
}

// OpenUnit draws u uniformly from the open interval (0,1).
// rand.Float64 yields [0,1); the zero boundary is resampled because a zero
// draw would select the first visited node regardless of its weight.
func OpenUnit(r *rand.Rand) float64 {
	u := r.Float64()
	for u == 0 {
		u = r.Float64()
	}
	return u
}

// excludedMass sums role preferences of the excluded ids in insertion order.
func excludedMass(s Sampler, role Role, excluded *Exclusion) float64 {
	if excluded.Len() == 0 {
		return 0
	}
	var m float64
	for _, id := range excluded.ids {
		if id < s.Len() {
			m += s.Preference(id, role)
		}
	}
	return m
}

// hasMass reports whether mass is positive relative to total.
func hasMass(mass, total float64) bool {
	return total > 0 && mass > total*massEpsilon
}
