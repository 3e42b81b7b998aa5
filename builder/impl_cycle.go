// SPDX-License-Identifier: MIT
// Package: rpanet/builder
//
// impl_cycle.go - Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ MinCycleNodes, edges i → (i+1)%n for i=0..n-1.
//   • Path:  n ≥ MinPathNodes,  edges i-1 → i for i=1..n-1.
//   • Vertices via cfg.idFn in ascending index order.
//   • Weight policy: cfg.weightFn(cfg.rng) on weighted graphs, else 0.
//
// As growth seeds, a directed cycle gives every node out- and in-strength 1,
// a path leaves node 0 without in-strength and node n-1 without out-strength.
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import "github.com/katalvlaran/rpanet/core"

// Cycle returns a Constructor that builds an n-vertex ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		return chain(MethodCycle, g, cfg, ids, true)
	}
}

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodPath, g, cfg, n)
		if err != nil {
			return err
		}
		return chain(MethodPath, g, cfg, ids, false)
	}
}

// chain links consecutive ids, closing the ring when closed is set.
func chain(method string, g *core.Graph, cfg builderConfig, ids []string, closed bool) error {
	weighted := g.Weighted()
	last := len(ids) - 1
	if closed {
		last = len(ids)
	}
	for i := 0; i < last; i++ {
		u, v := ids[i], ids[(i+1)%len(ids)]
		w := weightFor(weighted, cfg)
		if _, err := g.AddEdge(u, v, w); err != nil {
			return builderErrorf(method, err, "AddEdge(%s→%s, w=%g)", u, v, w)
		}
	}
	return nil
}
