// SPDX-License-Identifier: MIT
// Package: rpanet
//
// options.go - functional options and the resolved engine configuration.
//
// Contract:
//   • Options are applied in order; later ones override earlier ones.
//   • Option constructors PANIC on meaningless inputs (nil rng, nil function,
//     negative probability). Shape checks that depend on several options
//     (scenario sum, matrix shape) are returned as errors by New.
//   • Defaults are deterministic: seed 1, alpha=beta=gamma=xi=0 (every edge is
//     scenario 5 unless configured), no uniqueness, no reciprocity, linear
//     default preferences, tree sampler, unit edge weights, no-op logger.

package rpanet

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/rpanet/metrics"
	"github.com/katalvlaran/rpanet/preference"
)

// defaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
const defaultSeed = 1

// defaultEdgeWeight is the weight of edges without an explicit weight source.
const defaultEdgeWeight = 1.0

// Option customizes an Engine.
type Option func(*config)

// config aggregates all engine knobs; passed by value after resolution.
type config struct {
	rng *rand.Rand

	alpha, beta, gamma, xi float64
	betaLoop               bool
	sourceFirst            bool
	uniqueness             Uniqueness

	reciprocal    bool
	groupProb     []float64
	recipMatrix   [][]float64
	selfLoopRecip bool

	model   preference.Model
	sampler SamplerKind
	presort bool

	weights  []float64
	weightFn func(k int) float64

	logger  *zap.Logger
	metrics *metrics.Registry
}

func newConfig(opts ...Option) config {
	cfg := config{
		sourceFirst: true,
		model:       preference.Default(),
		sampler:     SamplerTree,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses a caller-owned RNG. Every draw of the run consumes it.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("rpanet: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithScenario sets the scenario probabilities; 1-alpha-beta-gamma-xi is the
// probability of scenario 5. Panics on a negative value; a sum above one is
// reported by New.
func WithScenario(alpha, beta, gamma, xi float64) Option {
	if alpha < 0 || beta < 0 || gamma < 0 || xi < 0 {
		panic(fmt.Sprintf("rpanet: WithScenario(%v,%v,%v,%v) negative probability", alpha, beta, gamma, xi))
	}
	return func(c *config) {
		c.alpha, c.beta, c.gamma, c.xi = alpha, beta, gamma, xi
	}
}

// WithBetaLoop allows scenario 2 to draw the same node for both endpoints.
func WithBetaLoop(allow bool) Option {
	return func(c *config) { c.betaLoop = allow }
}

// WithSourceFirst sets whether scenario 2 draws the source before the target
// (default true).
func WithSourceFirst(sourceFirst bool) Option {
	return func(c *config) { c.sourceFirst = sourceFirst }
}

// WithUniqueness sets the within-step node reuse policy.
func WithUniqueness(mode Uniqueness) Option {
	if mode > UniqueBoth {
		panic(fmt.Sprintf("rpanet: WithUniqueness(%d) unknown mode", mode))
	}
	return func(c *config) { c.uniqueness = mode }
}

// WithReciprocity enables group labels for new nodes and reciprocal edges.
// groupProb is the categorical distribution of new-node groups and
// matrix[targetGroup][sourceGroup] the probability of the reverse edge.
// Shapes are checked by New.
func WithReciprocity(groupProb []float64, matrix [][]float64) Option {
	return func(c *config) {
		c.reciprocal = true
		c.groupProb = groupProb
		c.recipMatrix = matrix
	}
}

// WithSelfLoopReciprocity allows reciprocal draws on self-loops.
func WithSelfLoopReciprocity(allow bool) Option {
	return func(c *config) { c.selfLoopRecip = allow }
}

// WithPreference sets the preference model. Panics on the zero Model.
func WithPreference(m preference.Model) Option {
	if !m.Valid() {
		panic("rpanet: WithPreference(invalid model)")
	}
	return func(c *config) { c.model = m }
}

// WithSampler selects the sampler implementation.
func WithSampler(kind SamplerKind) Option {
	if kind > SamplerLinear {
		panic(fmt.Sprintf("rpanet: WithSampler(%d) unknown kind", kind))
	}
	return func(c *config) { c.sampler = kind }
}

// WithLinearPresort orders seed nodes by descending preference in the linear
// sampler's walk. Ignored by the tree sampler.
func WithLinearPresort(presort bool) Option {
	return func(c *config) { c.presort = presort }
}

// WithEdgeWeights sets the weight of the k-th generated edge to weights[k].
// Edges past the end of the slice get weight 1. Checked by New.
func WithEdgeWeights(weights []float64) Option {
	return func(c *config) {
		c.weights = weights
		c.weightFn = nil
	}
}

// WithEdgeWeightFn computes the weight of the k-th generated edge.
// Panics on nil.
func WithEdgeWeightFn(fn func(k int) float64) Option {
	if fn == nil {
		panic("rpanet: WithEdgeWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
		c.weights = nil
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("rpanet: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics records growth metrics into reg.
func WithMetrics(reg *metrics.Registry) Option {
	return func(c *config) { c.metrics = reg }
}

// validate checks cross-option constraints.
func (c *config) validate(method string) error {
	const eps = 1e-9
	if sum := c.alpha + c.beta + c.gamma + c.xi; sum > 1+eps {
		return rpanetErrorf(method, ErrBadScenario, "alpha+beta+gamma+xi=%v > 1", sum)
	}
	for k, w := range c.weights {
		if !validWeight(w) {
			return rpanetErrorf(method, ErrBadWeight, "edge weight %d = %v", k, w)
		}
	}
	return nil
}
