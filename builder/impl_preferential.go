// SPDX-License-Identifier: MIT
// Package: rpanet/builder
//
// impl_preferential.go - PreferentialAttachment(steps) constructor.
//
// Contract:
//   • g must be directed (else ErrUnsupportedGraphMode).
//   • The current content of g is the seed network (rpanet.SeedFromGraph);
//     an empty g starts from a single isolated vertex cfg.idFn(0).
//   • New nodes get IDs cfg.idFn(k) where k is the engine node id. An ID that
//     already exists in g is ErrConstructFailed.
//   • Engine options, in order: WithRand(cfg.rng) when seeded,
//     WithEdgeWeightFn(cfg.weightFn) when WithWeightFn was given and g is
//     weighted, then everything passed via WithGrowth.
//   • Grown networks may contain parallel edges and self-loops; without
//     core.WithMultiEdges / core.WithLoops the core rejection is returned.
//   • Every vertex gets rpanet.MetaGroup/MetaOutWeight/MetaInWeight metadata.
//
// Complexity: O(V+E) conversion plus the engine's O(E log N) growth.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/rpanet/core"
	"github.com/katalvlaran/rpanet/rpanet"
)

// PreferentialAttachment returns a Constructor that grows g by requesting
// steps[i] primary edges in step i.
func PreferentialAttachment(steps []int) Constructor {
	steps = slices.Clone(steps)
	return func(g *core.Graph, cfg builderConfig) error {
		const method = MethodPreferentialAttachment
		if !g.Directed() {
			return builderErrorf(method, ErrUnsupportedGraphMode, "graph is undirected")
		}

		seed, ids, err := seedOf(g, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		eng, err := rpanet.New(seed, growthOptions(g, cfg)...)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
		}
		res, err := eng.Run(steps)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
		}

		for k := len(ids); k < res.NodeCount(); k++ {
			if id := cfg.idFn(k); g.HasVertex(id) {
				return builderErrorf(method, ErrConstructFailed, "node %d: vertex %q already exists", k, id)
			}
		}
		idOf := func(k int) string {
			if k < len(ids) {
				return ids[k]
			}
			return cfg.idFn(k)
		}
		if err := res.AddTo(g, idOf, res.SeedEdges); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		return nil
	}
}

// seedOf converts g into a seed, or a single isolated node when g is empty.
func seedOf(g *core.Graph, cfg builderConfig) (rpanet.Seed, []string, error) {
	if g.VertexCount() == 0 {
		return rpanet.Seed{OutWeight: []float64{0}, InWeight: []float64{0}}, []string{cfg.idFn(0)}, nil
	}
	return rpanet.SeedFromGraph(g)
}

// growthOptions derives engine options from cfg; WithGrowth options come last.
func growthOptions(g *core.Graph, cfg builderConfig) []rpanet.Option {
	opts := make([]rpanet.Option, 0, len(cfg.growth)+2)
	if cfg.rng != nil {
		opts = append(opts, rpanet.WithRand(cfg.rng))
	}
	if cfg.weightSet && g.Weighted() {
		opts = append(opts, rpanet.WithEdgeWeightFn(EdgeWeights(cfg.weightFn, cfg.rng)))
	}
	return append(opts, cfg.growth...)
}
