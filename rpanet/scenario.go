// SPDX-License-Identifier: MIT
// Package: rpanet
//
// scenario.go - scenario classification and per-scenario endpoint resolvers.
//
// Every resolver draws all sampled endpoints BEFORE creating new nodes, so an
// infeasible draw leaves the network untouched (only the rng has advanced).
//
//	Scenario | Source                | Target                  | New nodes
//	1        | new                   | sampled (target role)   | 1
//	2        | sampled (source role) | sampled (target role)   | 0
//	3        | sampled (source role) | new                     | 1
//	4        | new                   | new                     | 2
//	5        | new                   | the same new node       | 1

package rpanet

import (
	"github.com/katalvlaran/rpanet/sampler"
)

// ClassifyScenario maps a uniform draw u to scenarios 1..5 by cumulative
// thresholds alpha, alpha+beta, alpha+beta+gamma, alpha+beta+gamma+xi.
func ClassifyScenario(u, alpha, beta, gamma, xi float64) Scenario {
	switch {
	case u <= alpha:
		return ScenarioNewSource
	case u <= alpha+beta:
		return ScenarioExisting
	case u <= alpha+beta+gamma:
		return ScenarioNewTarget
	case u <= alpha+beta+gamma+xi:
		return ScenarioNewPair
	default:
		return ScenarioNewLoop
	}
}

// resolution is the outcome of one resolver.
type resolution struct {
	source, target int
	created        int
}

// infeasible describes why a draw could not be made.
type infeasible struct {
	role   sampler.Role
	reason string
}

// resolve dispatches to the resolver of sc.
func (e *Engine) resolve(sc Scenario) (resolution, *infeasible) {
	switch sc {
	case ScenarioNewSource:
		return e.resolveNewSource()
	case ScenarioExisting:
		return e.resolveExisting()
	case ScenarioNewTarget:
		return e.resolveNewTarget()
	case ScenarioNewPair:
		return e.resolveNewPair()
	default:
		return e.resolveNewLoop()
	}
}

func (e *Engine) resolveNewSource() (resolution, *infeasible) {
	t, bad := e.draw(sampler.Target)
	if bad != nil {
		return resolution{}, bad
	}
	return resolution{source: e.newNode(), target: t, created: 1}, nil
}

// resolveExisting draws both endpoints among existing nodes. Without beta
// loops the first pick is excluded from the second draw for this attempt
// only.
func (e *Engine) resolveExisting() (resolution, *infeasible) {
	first := sampler.Source
	if !e.cfg.sourceFirst {
		first = sampler.Target
	}
	second := first.Opposite()

	a, bad := e.draw(first)
	if bad != nil {
		return resolution{}, bad
	}
	var b int
	if e.cfg.betaLoop {
		b, bad = e.draw(second)
	} else {
		added := e.excl[second].Add(a)
		b, bad = e.draw(second)
		if added {
			e.excl[second].Remove(a)
		}
	}
	if bad != nil {
		return resolution{}, bad
	}
	if first == sampler.Source {
		return resolution{source: a, target: b}, nil
	}
	return resolution{source: b, target: a}, nil
}

func (e *Engine) resolveNewTarget() (resolution, *infeasible) {
	s, bad := e.draw(sampler.Source)
	if bad != nil {
		return resolution{}, bad
	}
	return resolution{source: s, target: e.newNode(), created: 1}, nil
}

func (e *Engine) resolveNewPair() (resolution, *infeasible) {
	s := e.newNode()
	t := e.newNode()
	return resolution{source: s, target: t, created: 2}, nil
}

func (e *Engine) resolveNewLoop() (resolution, *infeasible) {
	s := e.newNode()
	return resolution{source: s, target: s, created: 1}, nil
}

// draw samples an existing node for role. The draw is infeasible when no
// node that existed at step start remains outside the role's exclusion set,
// or when the remaining nodes carry no preference mass.
func (e *Engine) draw(role sampler.Role) (int, *infeasible) {
	if e.stepStart-e.excl[role].Len() < 1 {
		return -1, &infeasible{role: role, reason: ReasonUniqueExhausted}
	}
	id, err := e.nodes.Sample(e.rng, role, e.excl[role])
	if err != nil {
		return -1, &infeasible{role: role, reason: ReasonNoPreference}
	}
	return id, nil
}

// exclude records the endpoints of a placed primary edge per the uniqueness
// mode. Nodes created during the current step never enter a set.
func (e *Engine) exclude(s, t int) {
	existing := func(id int) bool { return id < e.stepStart }
	src, tgt := e.excl[sampler.Source], e.excl[sampler.Target]

	switch e.cfg.uniqueness {
	case UniqueGlobal:
		if existing(s) {
			src.Add(s)
			tgt.Add(s)
		}
		if existing(t) && t != s {
			src.Add(t)
			tgt.Add(t)
		}
	case UniqueSource:
		if existing(s) {
			src.Add(s)
		}
	case UniqueTarget:
		if existing(t) {
			tgt.Add(t)
		}
	case UniqueBoth:
		if existing(s) {
			src.Add(s)
		}
		if existing(t) {
			tgt.Add(t)
		}
	}
}
