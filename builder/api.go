// SPDX-License-Identifier: MIT
// Package: rpanet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors. Option constructors panic on nonsense.
//
// Typical composition:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges()},
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Cycle(3),                                 // seed network
//		builder.PreferentialAttachment([]int{2, 2, 2}),   // grow it
//	)

package builder

import (
	"fmt"

	"github.com/katalvlaran/rpanet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/multigraph/weighted).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure that adds vertices via cfg.idFn
// (except the documented fixed ID CenterVertexID), emits edges in a stable
// order and draws weights from cfg.weightFn on weighted graphs.
//
//   Cycle(n)                      ring 0→1→…→n-1→0 (n ≥ 3)
//   Path(n)                       chain 0→1→…→n-1 (n ≥ 2)
//   Star(n)                       hub CenterVertexID plus n-1 leaves (n ≥ 2)
//   Complete(n)                   all pairs; both directions on directed graphs (n ≥ 1)
//   RandomSparse(n, p)            Erdős–Rényi G(n,p) (n ≥ 1, 0 ≤ p ≤ 1)
//   PreferentialAttachment(steps) grows the current graph with the rpanet engine
