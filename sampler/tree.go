// SPDX-License-Identifier: MIT
// Package: rpanet/sampler
//
// tree.go - weighted sampling tree over an implicit binary heap.
//
// Layout:
//   • Nodes occupy heap slots in id order: children of i are 2i+1 and 2i+2,
//     the parent of i>0 is (i-1)/2. No pointers, no per-node allocation.
//   • For each role the tree keeps pref[i] (own preference) and total[i]
//     (pref[i] plus both subtree totals), so total[0] is the role-wide sum.
//
// Complexity:
//   • Insert, SetWeights: O(log N) ancestor refresh.
//   • Sample: O(log N) per descent, expected 1/(1-q) descents where q is the
//     excluded fraction of the role mass, plus O(|X|) for the mass check.
//
// Determinism: one OpenUnit draw per descent; results depend only on the rng.

package sampler

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rpanet/preference"
)

// Tree is a logarithmic-time weighted sampler for both roles at once.
type Tree struct {
	model preference.Model
	pref  [numRoles][]float64
	total [numRoles][]float64
	stats Stats
}

// NewTree returns an empty tree evaluating preferences with model.
// capacity pre-sizes the backing arrays. Panics on an invalid model.
func NewTree(model preference.Model, capacity int) *Tree {
	if !model.Valid() {
		panic("sampler: NewTree with invalid preference model")
	}
	if capacity < 0 {
		capacity = 0
	}
	t := &Tree{model: model}
	for r := range numRoles {
		t.pref[r] = make([]float64, 0, capacity)
		t.total[r] = make([]float64, 0, capacity)
	}
	return t
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.pref[Source]) }

// Insert appends a zero-preference node in the next heap slot.
func (t *Tree) Insert() int {
	id := len(t.pref[Source])
	for r := range numRoles {
		t.pref[r] = append(t.pref[r], 0)
		t.total[r] = append(t.total[r], 0)
	}
	return id
}

// SetWeights recomputes both preferences of id and refreshes the aggregates
// on the path to the root. Panics on an unknown id.
func (t *Tree) SetWeights(id int, outWeight, inWeight float64) {
	if id < 0 || id >= t.Len() {
		panic(fmt.Sprintf("sampler: SetWeights(%d) out of range [0,%d)", id, t.Len()))
	}
	s, g := t.model.Eval(outWeight, inWeight)
	t.pref[Source][id] = s
	t.pref[Target][id] = g
	t.refresh(Source, id)
	t.refresh(Target, id)
}

// refresh recomputes total[] from id up to the root. Each aggregate is rebuilt
// from its children rather than shifted by a delta, so rounding error does not
// accumulate across updates.
func (t *Tree) refresh(role Role, id int) {
	pref, total := t.pref[role], t.total[role]
	n := len(pref)
	i := id
	for {
		sum := pref[i]
		if l := 2*i + 1; l < n {
			sum += total[l]
			if l+1 < n {
				sum += total[l+1]
			}
		}
		total[i] = sum
		if i == 0 {
			return
		}
		i = (i - 1) / 2
	}
}

// Preference returns the role preference of id.
func (t *Tree) Preference(id int, role Role) float64 { return t.pref[role][id] }

// Total returns the role-wide preference sum (root aggregate).
func (t *Tree) Total(role Role) float64 {
	if t.Len() == 0 {
		return 0
	}
	return t.total[role][0]
}

// Stats returns cumulative diagnostics.
func (t *Tree) Stats() Stats { return t.stats }

// Depth returns the number of levels of the heap (0 for an empty tree).
func (t *Tree) Depth() int {
	d := 0
	for n := t.Len(); n > 0; n >>= 1 {
		d++
	}
	return d
}

// Sample draws a node for role with probability pref/Σpref over ids not in
// excluded. Excluded draws are rejected and redrawn from the full tree.
// Returns ErrNoCandidate when the non-excluded mass is not positive.
func (t *Tree) Sample(r *rand.Rand, role Role, excluded *Exclusion) (int, error) {
	total := t.Total(role)
	if !hasMass(total-excludedMass(t, role, excluded), total) {
		return -1, fmt.Errorf("Tree.Sample(%s): %w", role, ErrNoCandidate)
	}
	for range maxRejections {
		id := t.descend(role, OpenUnit(r)*total)
		if !excluded.Contains(id) {
			return id, nil
		}
		t.stats.Rejections[role]++
	}
	return -1, fmt.Errorf("Tree.Sample(%s): rejection limit: %w", role, ErrNoCandidate)
}

// descend walks from the root to the node owning weight w.
// At node i: subtract pref[i]; stop if the rest is non-positive, otherwise
// go left when it fits in the left subtree and right (shifted) when not.
func (t *Tree) descend(role Role, w float64) int {
	pref, total := t.pref[role], t.total[role]
	n := len(pref)
	i := 0
	for {
		if w > total[i] {
			w = total[i]
			t.stats.Clamps++
		}
		w -= pref[i]
		if w <= 0 {
			return i
		}
		l := 2*i + 1
		if l >= n {
			// leaf reached with drift left over
			return i
		}
		tl := total[l]
		if w <= tl {
			i = l
			continue
		}
		rt := l + 1
		if rt < n && total[rt] > 0 {
			w -= tl
			i = rt
			continue
		}
		if tl <= 0 {
			return i
		}
		// right subtree missing or empty: the excess is drift, stay left
		i = l
	}
}
