// SPDX-License-Identifier: MIT
// Package: rpanet/sampler
//
// linear.go - flat-array sampler with O(N) draws and O(1) updates.
//
// The walk visits ids in a fixed order (id order, or descending preference
// after Presort) and subtracts preferences from u*mass until the remainder is
// non-positive. Excluded ids are skipped and their mass removed up front, so
// no rejection loop is needed.

package sampler

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/rpanet/preference"
)

// Linear is the reference sampler: exact, simple, linear per draw.
type Linear struct {
	model preference.Model
	pref  [numRoles][]float64
	total [numRoles]float64
	order [numRoles][]int // nil means id order
	stats Stats
}

// NewLinear returns an empty linear sampler. Panics on an invalid model.
func NewLinear(model preference.Model, capacity int) *Linear {
	if !model.Valid() {
		panic("sampler: NewLinear with invalid preference model")
	}
	if capacity < 0 {
		capacity = 0
	}
	l := &Linear{model: model}
	for r := range numRoles {
		l.pref[r] = make([]float64, 0, capacity)
	}
	return l
}

// Len returns the number of nodes.
func (l *Linear) Len() int { return len(l.pref[Source]) }

// Insert appends a zero-preference node. After Presort new ids are visited
// after all presorted ones, in creation order.
func (l *Linear) Insert() int {
	id := len(l.pref[Source])
	for r := range numRoles {
		l.pref[r] = append(l.pref[r], 0)
		if l.order[r] != nil {
			l.order[r] = append(l.order[r], id)
		}
	}
	return id
}

// SetWeights recomputes both preferences of id and shifts the running totals.
func (l *Linear) SetWeights(id int, outWeight, inWeight float64) {
	if id < 0 || id >= l.Len() {
		panic(fmt.Sprintf("sampler: SetWeights(%d) out of range [0,%d)", id, l.Len()))
	}
	s, g := l.model.Eval(outWeight, inWeight)
	l.total[Source] += s - l.pref[Source][id]
	l.total[Target] += g - l.pref[Target][id]
	l.pref[Source][id] = s
	l.pref[Target][id] = g
}

// Presort fixes the visiting order of the current nodes to descending
// preference, per role. Ties keep id order. Heavy nodes are then met early,
// which shortens the expected walk on skewed distributions.
func (l *Linear) Presort() {
	n := l.Len()
	for r := range numRoles {
		ord := make([]int, n)
		for i := range ord {
			ord[i] = i
		}
		pref := l.pref[r]
		slices.SortStableFunc(ord, func(a, b int) int {
			switch {
			case pref[a] > pref[b]:
				return -1
			case pref[a] < pref[b]:
				return 1
			default:
				return 0
			}
		})
		l.order[r] = ord
	}
}

// Preference returns the role preference of id.
func (l *Linear) Preference(id int, role Role) float64 { return l.pref[role][id] }

// Total returns the running role-wide sum.
func (l *Linear) Total(role Role) float64 { return l.total[role] }

// Stats returns cumulative diagnostics.
func (l *Linear) Stats() Stats { return l.stats }

// Sample draws a non-excluded node for role proportionally to preference.
// Returns ErrNoCandidate when the non-excluded mass is not positive.
func (l *Linear) Sample(r *rand.Rand, role Role, excluded *Exclusion) (int, error) {
	total := l.total[role]
	mass := total - excludedMass(l, role, excluded)
	if l.Len() == 0 || !hasMass(mass, total) {
		return -1, fmt.Errorf("Linear.Sample(%s): %w", role, ErrNoCandidate)
	}

	w := OpenUnit(r) * mass
	pref, ord := l.pref[role], l.order[role]
	last := -1
	for k := range pref {
		id := k
		if ord != nil {
			id = ord[k]
		}
		p := pref[id]
		if p <= 0 || excluded.Contains(id) {
			continue
		}
		last = id
		w -= p
		if w <= 0 {
			return id, nil
		}
	}
	if last < 0 {
		return -1, fmt.Errorf("Linear.Sample(%s): %w", role, ErrNoCandidate)
	}
	// running total drifted above the true sum
	l.stats.Fallbacks++
	return last, nil
}
