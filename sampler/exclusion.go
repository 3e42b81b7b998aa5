// SPDX-License-Identifier: MIT
// Package: rpanet/sampler
//
// exclusion.go - per-role sets of ids barred from selection within a step.
//
// Layout:
//   • ids keeps insertion order; pos maps id → index in ids.
//   • Remove swaps the last id into the freed slot, so only the removed
//     position changes order. The engine removes only the most recent id.
//
// Complexity: Add, Remove, Contains O(1).

package sampler

// Exclusion is a transient set of node ids forbidden from selection.
// Iteration order is insertion order, so sums over the set are reproducible.
// A nil *Exclusion behaves as the empty set for queries.
type Exclusion struct {
	ids []int
	pos map[int]int
}

// NewExclusion returns an empty set sized for hint ids.
func NewExclusion(hint int) *Exclusion {
	return &Exclusion{
		ids: make([]int, 0, hint),
		pos: make(map[int]int, hint),
	}
}

// Add inserts id and reports whether it was absent.
func (x *Exclusion) Add(id int) bool {
	if x.pos == nil {
		x.pos = make(map[int]int)
	}
	if _, ok := x.pos[id]; ok {
		return false
	}
	x.pos[id] = len(x.ids)
	x.ids = append(x.ids, id)
	return true
}

// Remove deletes id if present (swap with last).
func (x *Exclusion) Remove(id int) {
	i, ok := x.pos[id]
	if !ok {
		return
	}
	last := len(x.ids) - 1
	if i != last {
		moved := x.ids[last]
		x.ids[i] = moved
		x.pos[moved] = i
	}
	x.ids = x.ids[:last]
	delete(x.pos, id)
}

// Contains reports membership.
func (x *Exclusion) Contains(id int) bool {
	if x == nil {
		return false
	}
	_, ok := x.pos[id]
	return ok
}

// Len returns the set size.
func (x *Exclusion) Len() int {
	if x == nil {
		return 0
	}
	return len(x.ids)
}

// Clear empties the set, keeping capacity.
func (x *Exclusion) Clear() {
	x.ids = x.ids[:0]
	clear(x.pos)
}

// IDs returns a copy of the members in insertion order.
func (x *Exclusion) IDs() []int {
	if x == nil {
		return nil
	}
	out := make([]int, len(x.ids))
	copy(out, x.ids)
	return out
}
