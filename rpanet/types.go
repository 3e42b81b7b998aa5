// SPDX-License-Identifier: MIT
// Package: rpanet
//
// types.go - scenarios, uniqueness modes, edges, seeds and results.

package rpanet

import (
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/rpanet/reciprocity"
	"github.com/katalvlaran/rpanet/sampler"
)

// Scenario tags how an edge's endpoints were resolved.
type Scenario uint8

const (
	// ScenarioSeed marks edges copied from the seed network.
	ScenarioSeed Scenario = iota
	// ScenarioNewSource: new node → existing target.
	ScenarioNewSource
	// ScenarioExisting: existing source → existing target.
	ScenarioExisting
	// ScenarioNewTarget: existing source → new node.
	ScenarioNewTarget
	// ScenarioNewPair: new node → another new node.
	ScenarioNewPair
	// ScenarioNewLoop: new node → itself.
	ScenarioNewLoop
	// ScenarioReciprocal: reverse of the edge just created.
	ScenarioReciprocal
)

// String returns the numeric tag ("0".."6") used in edge lists and metrics.
func (s Scenario) String() string { return strconv.Itoa(int(s)) }

// Uniqueness selects which endpoints may not be reused within a step.
type Uniqueness uint8

const (
	// UniqueNone allows any node to be drawn any number of times.
	UniqueNone Uniqueness = iota
	// UniqueGlobal forbids an existing node from appearing again in either
	// role once used in either role.
	UniqueGlobal
	// UniqueSource forbids reusing an existing node as a source.
	UniqueSource
	// UniqueTarget forbids reusing an existing node as a target.
	UniqueTarget
	// UniqueBoth applies UniqueSource and UniqueTarget independently.
	UniqueBoth
)

// String renders the mode name.
func (u Uniqueness) String() string {
	switch u {
	case UniqueNone:
		return "none"
	case UniqueGlobal:
		return "global"
	case UniqueSource:
		return "source"
	case UniqueTarget:
		return "target"
	case UniqueBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseUniqueness maps a mode name back to its value.
func ParseUniqueness(s string) (Uniqueness, bool) {
	for u := UniqueNone; u <= UniqueBoth; u++ {
		if u.String() == s {
			return u, true
		}
	}
	return UniqueNone, false
}

// SamplerKind selects the node sampler implementation.
type SamplerKind uint8

const (
	// SamplerTree is the O(log N) implicit-heap sampler.
	SamplerTree SamplerKind = iota
	// SamplerLinear is the O(N) flat-array sampler.
	SamplerLinear
)

// Edge is one directed edge of the network.
type Edge struct {
	Source   int
	Target   int
	Scenario Scenario
	Weight   float64
}

// Seed is the initial network growth starts from.
// OutWeight and InWeight must have equal, positive length; Group is either nil
// (all nodes unlabelled) or of the same length. Edges are optional and only
// carried into the result; strengths are taken from the weight slices.
type Seed struct {
	OutWeight []float64
	InWeight  []float64
	Group     []int
	Edges     []Edge
}

// SeedFromEdges builds a seed of n nodes whose strengths are the summed
// weights of edges. Edges are re-tagged ScenarioSeed.
func SeedFromEdges(n int, edges []Edge) (Seed, error) {
	const method = "SeedFromEdges"
	if n <= 0 {
		return Seed{}, rpanetErrorf(method, ErrEmptySeed, "n=%d", n)
	}
	s := Seed{
		OutWeight: make([]float64, n),
		InWeight:  make([]float64, n),
		Edges:     make([]Edge, len(edges)),
	}
	for i, e := range edges {
		if e.Source < 0 || e.Source >= n || e.Target < 0 || e.Target >= n {
			return Seed{}, rpanetErrorf(method, ErrSeedMismatch, "edge %d (%d→%d) outside [0,%d)", i, e.Source, e.Target, n)
		}
		if !validWeight(e.Weight) {
			return Seed{}, rpanetErrorf(method, ErrBadWeight, "edge %d weight %v", i, e.Weight)
		}
		s.OutWeight[e.Source] += e.Weight
		s.InWeight[e.Target] += e.Weight
		e.Scenario = ScenarioSeed
		s.Edges[i] = e
	}
	return s, nil
}

// Len returns the number of seed nodes.
func (s Seed) Len() int { return len(s.OutWeight) }

// validate checks shapes and weights.
func (s Seed) validate(method string) error {
	n := len(s.OutWeight)
	if n == 0 {
		return rpanetErrorf(method, ErrEmptySeed, "no out-weights")
	}
	if len(s.InWeight) != n {
		return rpanetErrorf(method, ErrSeedMismatch, "%d out-weights, %d in-weights", n, len(s.InWeight))
	}
	if s.Group != nil && len(s.Group) != n {
		return rpanetErrorf(method, ErrSeedMismatch, "%d groups for %d nodes", len(s.Group), n)
	}
	for i := range n {
		if !validWeight(s.OutWeight[i]) || !validWeight(s.InWeight[i]) {
			return rpanetErrorf(method, ErrBadWeight, "node %d strengths (%v,%v)", i, s.OutWeight[i], s.InWeight[i])
		}
	}
	for i, e := range s.Edges {
		if e.Source < 0 || e.Source >= n || e.Target < 0 || e.Target >= n {
			return rpanetErrorf(method, ErrSeedMismatch, "edge %d (%d→%d) outside [0,%d)", i, e.Source, e.Target, n)
		}
	}
	return nil
}

// validWeight reports a finite, non-negative weight.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// Exhaustion records a step truncated because no eligible node remained.
type Exhaustion struct {
	// Step is the zero-based step index.
	Step int
	// Requested is the edge count asked for in the step.
	Requested int
	// Placed is the number of edges, reciprocal ones included, placed
	// before truncation.
	Placed int
	// Scenario is the scenario whose draw was infeasible.
	Scenario Scenario
	// Role is the role that could not be drawn.
	Role sampler.Role
	// Reason explains the infeasibility.
	Reason string
}

// Exhaustion reasons.
const (
	ReasonUniqueExhausted = "unique nodes exhausted"
	ReasonNoPreference    = "no positive preference among eligible nodes"
)

// Result is a snapshot of a grown network.
type Result struct {
	// Edges in creation order; seed edges first.
	Edges []Edge
	// OutWeight and InWeight are final node strengths.
	OutWeight []float64
	InWeight  []float64
	// Group holds node labels (reciprocity.NoGroup when unlabelled).
	Group []int
	// SourcePref and TargetPref are final node preferences.
	SourcePref []float64
	TargetPref []float64
	// Requested is the edge count asked for per step.
	Requested []int
	// Realized counts all edges appended per step, reciprocal ones included.
	// It never exceeds Requested; it falls short only on exhaustion.
	Realized []int
	// Reciprocal counts the reciprocal subset of Realized per step.
	Reciprocal []int
	// Exhaustions lists truncated steps in order.
	Exhaustions []Exhaustion
	// SeedNodes and SeedEdges size the seed part of the network.
	SeedNodes int
	SeedEdges int
}

// NodeCount returns the number of nodes.
func (r *Result) NodeCount() int { return len(r.OutWeight) }

// EdgeCount returns the number of edges, seed edges included.
func (r *Result) EdgeCount() int { return len(r.Edges) }

// Primary returns the number of primary (non-reciprocal) edges of a step.
func (r *Result) Primary(step int) int { return r.Realized[step] - r.Reciprocal[step] }

// Seed returns the network as a seed for further growth. Edges are kept and
// re-tagged ScenarioSeed; labels of unlabelled nodes stay NoGroup.
func (r *Result) Seed() Seed {
	s := Seed{
		OutWeight: slices.Clone(r.OutWeight),
		InWeight:  slices.Clone(r.InWeight),
		Group:     slices.Clone(r.Group),
		Edges:     make([]Edge, len(r.Edges)),
	}
	for i, e := range r.Edges {
		e.Scenario = ScenarioSeed
		s.Edges[i] = e
	}
	if allUnlabelled(s.Group) {
		s.Group = nil
	}
	return s
}

func allUnlabelled(groups []int) bool {
	for _, g := range groups {
		if g != reciprocity.NoGroup {
			return false
		}
	}
	return true
}
