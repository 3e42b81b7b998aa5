// SPDX-License-Identifier: MIT
// Package: rpanet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn        ("0","1","2",...)
//   • rng       = nil                (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn    (constant DefaultEdgeWeight)
//   • weightSet = false              (growth keeps the engine's own weights)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/rpanet/rpanet"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn WeightFn
	// weightSet records an explicit WithWeightFn; PreferentialAttachment then
	// feeds weightFn into the engine.
	weightSet bool
	// Engine options forwarded by PreferentialAttachment.
	growth []rpanet.Option
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
