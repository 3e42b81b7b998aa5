// SPDX-License-Identifier: MIT
// Package: rpanet
//
// engine.go - the edge generation engine.
//
// Per step:
//  1. Remember the node count at step start; only those nodes are sampleable.
//  2. Until the step's edge budget is spent: draw u, classify the scenario,
//     resolve endpoints, update exclusion sets, append the edge, and, while
//     budget remains, optionally append the reciprocal edge.
//  3. If a draw is infeasible, truncate the step, record an Exhaustion and
//     move on. The run is never aborted.
//  4. Flush the strengths of every touched node into the sampler once, then
//     clear the exclusion sets.
//
// Determinism: a single *rand.Rand stream drives every draw; identical seeds
// and options give identical networks.
//
// Concurrency: an Engine is NOT safe for concurrent use. Independent engines
// with independent RNGs may run in parallel.

package rpanet

import (
	"math/rand"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/rpanet/reciprocity"
	"github.com/katalvlaran/rpanet/sampler"
)

// Engine grows a directed weighted network by generalized preferential
// attachment.
type Engine struct {
	cfg   config
	rng   *rand.Rand
	nodes sampler.Sampler
	recip *reciprocity.Sampler

	out, in []float64
	group   []int
	edges   []Edge

	seedNodes, seedEdges int
	generated            int // generated edges so far; indexes edge weights

	requested, realized, reciprocal []int
	exhaustions                     []Exhaustion

	// per-step state
	stepStart int
	excl      [2]*sampler.Exclusion
	pending   []int
	isPending []bool

	lastStats sampler.Stats
}

// New builds an engine from a seed network and options.
// Returns ErrEmptySeed, ErrSeedMismatch, ErrBadWeight, ErrBadScenario or
// ErrBadReciprocity on malformed input.
func New(seed Seed, opts ...Option) (*Engine, error) {
	const method = "New"
	cfg := newConfig(opts...)
	if err := cfg.validate(method); err != nil {
		return nil, err
	}
	if err := seed.validate(method); err != nil {
		return nil, err
	}

	n := seed.Len()
	e := &Engine{
		cfg:       cfg,
		rng:       cfg.rng,
		out:       slices.Clone(seed.OutWeight),
		in:        slices.Clone(seed.InWeight),
		group:     make([]int, n),
		isPending: make([]bool, n),
		seedNodes: n,
		seedEdges: len(seed.Edges),
	}
	e.excl[sampler.Source] = sampler.NewExclusion(0)
	e.excl[sampler.Target] = sampler.NewExclusion(0)

	if cfg.reciprocal {
		r, err := reciprocity.New(cfg.groupProb, cfg.recipMatrix, cfg.selfLoopRecip)
		if err != nil {
			return nil, rpanetErrorf(method, ErrBadReciprocity, "%v", err)
		}
		e.recip = r
	}
	if err := e.initGroups(method, seed.Group); err != nil {
		return nil, err
	}

	e.edges = make([]Edge, len(seed.Edges))
	for i, se := range seed.Edges {
		se.Scenario = ScenarioSeed
		e.edges[i] = se
	}

	switch cfg.sampler {
	case SamplerLinear:
		lin := sampler.NewLinear(cfg.model, n)
		e.nodes = lin
		e.insertSeed(n)
		if cfg.presort {
			lin.Presort()
		}
	default:
		e.nodes = sampler.NewTree(cfg.model, n)
		e.insertSeed(n)
	}
	return e, nil
}

// initGroups copies seed labels, or draws them when reciprocity is on and
// the seed is unlabelled.
func (e *Engine) initGroups(method string, groups []int) error {
	for i := range e.group {
		switch {
		case groups != nil:
			g := groups[i]
			if g != reciprocity.NoGroup && (g < 0 || (e.recip != nil && g >= e.recip.Groups())) {
				return rpanetErrorf(method, ErrBadReciprocity, "seed node %d group %d", i, g)
			}
			e.group[i] = g
		case e.recip != nil:
			e.group[i] = e.recip.SampleGroup(e.rng)
		default:
			e.group[i] = reciprocity.NoGroup
		}
	}
	return nil
}

func (e *Engine) insertSeed(n int) {
	for i := range n {
		id := e.nodes.Insert()
		e.nodes.SetWeights(id, e.out[i], e.in[i])
	}
}

// NodeCount returns the current number of nodes.
func (e *Engine) NodeCount() int { return len(e.out) }

// EdgeCount returns the current number of edges, seed edges included.
func (e *Engine) EdgeCount() int { return len(e.edges) }

// Run grows the network by len(steps) steps, at most steps[i] edges each,
// and returns a snapshot of the whole network. Run may be called again to
// continue growth; step indices continue across calls.
func (e *Engine) Run(steps []int) (*Result, error) {
	const method = "Run"
	total := 0
	for i, m := range steps {
		if m < 0 {
			return nil, rpanetErrorf(method, ErrBadSteps, "steps[%d]=%d", i, m)
		}
		total += m
	}

	log := e.cfg.logger
	log.Debug("run started",
		zap.Int("steps", len(steps)),
		zap.Int("requested_edges", total),
		zap.Int("nodes", e.NodeCount()),
		zap.Int("edges", e.EdgeCount()),
	)
	started := time.Now()
	exhaustedBefore := len(e.exhaustions)

	e.edges = slices.Grow(e.edges, total)
	for _, m := range steps {
		e.step(m)
	}

	status := "complete"
	if len(e.exhaustions) > exhaustedBefore {
		status = "truncated"
	}
	e.recordSampling()
	e.cfg.metrics.RecordRun(status, time.Since(started), e.NodeCount(), e.EdgeCount())
	log.Debug("run finished",
		zap.String("status", status),
		zap.Int("nodes", e.NodeCount()),
		zap.Int("edges", e.EdgeCount()),
		zap.Int("exhaustions", len(e.exhaustions)-exhaustedBefore),
		zap.Duration("elapsed", time.Since(started)),
	)
	return e.Result(), nil
}

// step places up to m edges. Reciprocal edges use up the same budget, so a
// reciprocal draw is only made while the step still has room.
func (e *Engine) step(m int) {
	started := time.Now()
	idx := len(e.requested)
	e.stepStart = e.NodeCount()
	placed, recips := 0, 0

	for placed+recips < m {
		u := sampler.OpenUnit(e.rng)
		sc := ClassifyScenario(u, e.cfg.alpha, e.cfg.beta, e.cfg.gamma, e.cfg.xi)

		res, bad := e.resolve(sc)
		if bad != nil {
			e.exhausted(idx, m, placed+recips, sc, bad)
			break
		}
		e.cfg.metrics.RecordNodes(res.created)
		e.exclude(res.source, res.target)
		e.appendEdge(res.source, res.target, sc)
		placed++

		if e.recip != nil && placed+recips < m && e.recip.Reciprocate(e.rng, res.source, res.target, e.group[res.source], e.group[res.target]) {
			e.appendEdge(res.target, res.source, ScenarioReciprocal)
			recips++
		}
	}

	e.flush()
	e.excl[sampler.Source].Clear()
	e.excl[sampler.Target].Clear()

	e.requested = append(e.requested, m)
	e.realized = append(e.realized, placed+recips)
	e.reciprocal = append(e.reciprocal, recips)
	e.cfg.metrics.RecordStep(time.Since(started))
}

// exhausted records and logs a truncated step.
func (e *Engine) exhausted(step, requested, placed int, sc Scenario, bad *infeasible) {
	x := Exhaustion{
		Step:      step,
		Requested: requested,
		Placed:    placed,
		Scenario:  sc,
		Role:      bad.role,
		Reason:    bad.reason,
	}
	e.exhaustions = append(e.exhaustions, x)
	e.cfg.metrics.RecordExhaustion(sc.String())
	e.cfg.logger.Warn("step truncated",
		zap.Int("step", step),
		zap.Int("requested", requested),
		zap.Int("realized", placed),
		zap.Stringer("scenario", sc),
		zap.Stringer("role", bad.role),
		zap.String("reason", bad.reason),
	)
}

// newNode appends a node with zero strength; its preference stays zero
// until the end-of-step flush.
func (e *Engine) newNode() int {
	id := e.nodes.Insert()
	e.out = append(e.out, 0)
	e.in = append(e.in, 0)
	e.isPending = append(e.isPending, false)
	g := reciprocity.NoGroup
	if e.recip != nil {
		g = e.recip.SampleGroup(e.rng)
	}
	e.group = append(e.group, g)
	return id
}

// appendEdge records s→t and accumulates strengths; preferences are deferred.
func (e *Engine) appendEdge(s, t int, sc Scenario) {
	w := e.nextWeight()
	e.edges = append(e.edges, Edge{Source: s, Target: t, Scenario: sc, Weight: w})
	e.out[s] += w
	e.in[t] += w
	e.touch(s)
	e.touch(t)
	e.cfg.metrics.RecordEdge(sc.String())
}

// nextWeight returns the weight of the next generated edge.
func (e *Engine) nextWeight() float64 {
	k := e.generated
	e.generated++
	switch {
	case e.cfg.weightFn != nil:
		return e.cfg.weightFn(k)
	case k < len(e.cfg.weights):
		return e.cfg.weights[k]
	default:
		return defaultEdgeWeight
	}
}

func (e *Engine) touch(id int) {
	if !e.isPending[id] {
		e.isPending[id] = true
		e.pending = append(e.pending, id)
	}
}

// flush pushes the strengths of touched nodes into the sampler, once each.
func (e *Engine) flush() {
	for _, id := range e.pending {
		e.nodes.SetWeights(id, e.out[id], e.in[id])
		e.isPending[id] = false
	}
	e.pending = e.pending[:0]
}

// recordSampling forwards sampler diagnostics accumulated since the last call.
func (e *Engine) recordSampling() {
	st := e.nodes.Stats()
	prev := e.lastStats
	e.cfg.metrics.RecordSampling(
		st.Rejections[sampler.Source]-prev.Rejections[sampler.Source],
		st.Rejections[sampler.Target]-prev.Rejections[sampler.Target],
		st.Clamps-prev.Clamps,
		st.Fallbacks-prev.Fallbacks,
	)
	e.lastStats = st
}

// Result returns a snapshot of the current network.
func (e *Engine) Result() *Result {
	n := e.NodeCount()
	r := &Result{
		Edges:       slices.Clone(e.edges),
		OutWeight:   slices.Clone(e.out),
		InWeight:    slices.Clone(e.in),
		Group:       slices.Clone(e.group),
		SourcePref:  make([]float64, n),
		TargetPref:  make([]float64, n),
		Requested:   slices.Clone(e.requested),
		Realized:    slices.Clone(e.realized),
		Reciprocal:  slices.Clone(e.reciprocal),
		Exhaustions: slices.Clone(e.exhaustions),
		SeedNodes:   e.seedNodes,
		SeedEdges:   e.seedEdges,
	}
	for i := range n {
		r.SourcePref[i] = e.nodes.Preference(i, sampler.Source)
		r.TargetPref[i] = e.nodes.Preference(i, sampler.Target)
	}
	return r
}
