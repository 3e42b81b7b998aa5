// SPDX-License-Identifier: MIT
// Package: rpanet/builder
//
// weight_fn.go - edge-weight distributions.
//
// Every WeightFn returns a finite, non-negative weight. A nil RNG yields
// DefaultEdgeWeight for the stochastic distributions so unseeded builds stay
// deterministic. Constructors panic on parameters outside their domain.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0 or not finite.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max < +Inf.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0) || !(max >= min) || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn returns a WeightFn sampling N(mean, stddev), clipped at 0.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if !(stddev >= 0) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// ExponentialWeightFn returns a WeightFn sampling Exp(rate), mean 1/rate.
// Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return rng.ExpFloat64() / rate
	}
}

// LogNormalWeightFn returns a WeightFn sampling exp(N(mu, sigma)).
// Panics if sigma < 0.
func LogNormalWeightFn(mu, sigma float64) WeightFn {
	if !(sigma >= 0) {
		panic(fmt.Sprintf("LogNormalWeightFn: sigma must be ≥ 0, got %g", sigma))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return math.Exp(rng.NormFloat64()*sigma + mu)
	}
}

// ParetoWeightFn returns a WeightFn sampling a Pareto(xm, alpha) tail:
// xm · U^(-1/alpha) with U uniform on (0,1). Panics unless xm > 0, alpha > 0.
func ParetoWeightFn(xm, alpha float64) WeightFn {
	if !(xm > 0) || !(alpha > 0) {
		panic(fmt.Sprintf("ParetoWeightFn: require xm > 0 and alpha > 0, got xm=%g, alpha=%g", xm, alpha))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		return xm * math.Pow(u, -1/alpha)
	}
}

// EdgeWeights adapts fn into a per-edge weight source for rpanet.WithEdgeWeightFn.
// Draws are taken from rng in edge creation order; the edge index is ignored.
func EdgeWeights(fn WeightFn, rng *rand.Rand) func(k int) float64 {
	if fn == nil {
		panic("builder: EdgeWeights(nil)")
	}
	return func(int) float64 { return fn(rng) }
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets weights ∼ max(0, N(mean,stddev)) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets weights ∼ Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
