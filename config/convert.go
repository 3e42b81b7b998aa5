package config

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rpanet/builder"
	"github.com/katalvlaran/rpanet/core"
	"github.com/katalvlaran/rpanet/preference"
	"github.com/katalvlaran/rpanet/rpanet"
)

// ReplicateCount returns the number of runs, at least one.
func (c Config) ReplicateCount() int {
	return max(c.Replicates, 1)
}

// StepCounts returns the per-step primary edge counts.
func (c Config) StepCounts() []int {
	if len(c.Steps.Counts) > 0 {
		return append([]int(nil), c.Steps.Counts...)
	}
	out := make([]int, c.Steps.Count)
	for i := range out {
		out[i] = c.Steps.EdgesPerStep
	}
	return out
}

// BuildSeed materializes the seed network. Topologies are built as directed
// graphs with unit weights; the random topology draws from RNGSeed.
// Seed.Group, when set, labels nodes in seed order.
func (c Config) BuildSeed() (rpanet.Seed, error) {
	s := c.Seed
	var (
		seed rpanet.Seed
		err  error
	)
	switch {
	case s.Topology != "":
		seed, err = s.topologySeed(c.RNGSeed)
	case len(s.OutWeight) > 0:
		seed = rpanet.Seed{
			OutWeight: append([]float64(nil), s.OutWeight...),
			InWeight:  append([]float64(nil), s.InWeight...),
		}
		for _, e := range s.Edges {
			seed.Edges = append(seed.Edges, rpanet.Edge{Source: e.Source, Target: e.Target, Weight: e.Weight})
		}
	case s.Nodes > 0:
		edges := make([]rpanet.Edge, len(s.Edges))
		for i, e := range s.Edges {
			edges[i] = rpanet.Edge{Source: e.Source, Target: e.Target, Weight: e.Weight}
		}
		seed, err = rpanet.SeedFromEdges(s.Nodes, edges)
	default:
		return rpanet.Seed{}, ErrNoSeed
	}
	if err != nil {
		return rpanet.Seed{}, fmt.Errorf("config: seed: %w", err)
	}

	if len(s.Group) > 0 {
		if len(s.Group) != seed.Len() {
			return rpanet.Seed{}, fmt.Errorf("%w: seed: %d groups for %d nodes", ErrInvalid, len(s.Group), seed.Len())
		}
		seed.Group = append([]int(nil), s.Group...)
	}
	return seed, nil
}

func (s SeedConfig) topologySeed(rngSeed int64) (rpanet.Seed, error) {
	var ctor builder.Constructor
	switch s.Topology {
	case TopologyCycle:
		ctor = builder.Cycle(s.Nodes)
	case TopologyPath:
		ctor = builder.Path(s.Nodes)
	case TopologyStar:
		ctor = builder.Star(s.Nodes)
	case TopologyComplete:
		ctor = builder.Complete(s.Nodes)
	case TopologyRandom:
		ctor = builder.RandomSparse(s.Nodes, s.P)
	default:
		return rpanet.Seed{}, fmt.Errorf("%w: unknown topology %q", ErrInvalid, s.Topology)
	}
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(rngSeed)},
		ctor,
	)
	if err != nil {
		return rpanet.Seed{}, err
	}
	seed, _, err := rpanet.SeedFromGraph(g)
	return seed, err
}

// WeightFn returns the configured distribution, or false when weights come
// from List or the engine default.
func (c Config) WeightFn() (builder.WeightFn, bool) {
	w := c.Weights
	switch w.Distribution {
	case DistConstant:
		return builder.ConstantWeightFn(w.Value), true
	case DistUniform:
		return builder.UniformWeightFn(w.Min, w.Max), true
	case DistNormal:
		return builder.NormalWeightFn(w.Mean, w.StdDev), true
	case DistExponential:
		return builder.ExponentialWeightFn(w.Rate), true
	case DistLogNormal:
		return builder.LogNormalWeightFn(w.Mu, w.Sigma), true
	case DistPareto:
		return builder.ParetoWeightFn(w.Scale, w.Shape), true
	default:
		return nil, false
	}
}

// EngineOptions converts the configuration into engine options for one run
// seeded with rngSeed. Weight draws share the run's RNG. Logging and metrics
// options are left to the caller. c must have passed Validate.
func (c Config) EngineOptions(rngSeed int64) []rpanet.Option {
	rng := rand.New(rand.NewSource(rngSeed))
	opts := []rpanet.Option{
		rpanet.WithRand(rng),
		rpanet.WithScenario(c.Scenario.Alpha, c.Scenario.Beta, c.Scenario.Gamma, c.Scenario.Xi),
		rpanet.WithBetaLoop(c.Scenario.BetaLoop),
		rpanet.WithSourceFirst(!c.Scenario.TargetFirst),
		rpanet.WithLinearPresort(c.Presort),
	}

	if u, ok := rpanet.ParseUniqueness(c.Uniqueness); ok {
		opts = append(opts, rpanet.WithUniqueness(u))
	}
	if c.Sampler == "linear" {
		opts = append(opts, rpanet.WithSampler(rpanet.SamplerLinear))
	}

	if r := c.Reciprocity; len(r.GroupProb) > 0 {
		opts = append(opts,
			rpanet.WithReciprocity(r.GroupProb, r.Matrix),
			rpanet.WithSelfLoopReciprocity(r.SelfLoop),
		)
	}

	if p := c.Preference; len(p.Source) > 0 || len(p.Target) > 0 {
		src, tgt := preference.DefaultSourceParams, preference.DefaultTargetParams
		copy(src[:], p.Source)
		copy(tgt[:], p.Target)
		opts = append(opts, rpanet.WithPreference(preference.Parametric(src, tgt)))
	}

	if fn, ok := c.WeightFn(); ok {
		opts = append(opts, rpanet.WithEdgeWeightFn(builder.EdgeWeights(fn, rng)))
	} else if len(c.Weights.List) > 0 {
		opts = append(opts, rpanet.WithEdgeWeights(c.Weights.List))
	}
	return opts
}
