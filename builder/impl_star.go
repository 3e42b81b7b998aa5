// SPDX-License-Identifier: MIT
// Package: rpanet/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   • Star: n ≥ MinStarNodes; hub CenterVertexID, leaves cfg.idFn(1..n-1).
//     Spokes Center → leaf; directed graphs also get leaf → Center with the
//     same weight.
//   • Complete: n ≥ MinCompleteNodes; every pair {i<j} once, both directions
//     (i→j then j→i, each with its own weight draw) on directed graphs.
//
// Complexity: Star O(n), Complete O(n²).

package builder

import "github.com/katalvlaran/rpanet/core"

// Star returns a Constructor that builds a star: one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return builderErrorf(MethodStar, err, "AddVertex(%s)", CenterVertexID)
		}

		weighted := g.Weighted()
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return builderErrorf(MethodStar, err, "AddVertex(%s)", leaf)
			}
			w := weightFor(weighted, cfg)
			if _, err := g.AddEdge(CenterVertexID, leaf, w); err != nil {
				return builderErrorf(MethodStar, err, "AddEdge(%s→%s, w=%g)", CenterVertexID, leaf, w)
			}
			if g.Directed() {
				if _, err := g.AddEdge(leaf, CenterVertexID, w); err != nil {
					return builderErrorf(MethodStar, err, "AddEdge(%s→%s, w=%g)", leaf, CenterVertexID, w)
				}
			}
		}
		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids, err := addVertices(MethodComplete, g, cfg, n)
		if err != nil {
			return err
		}

		weighted := g.Weighted()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs := [][2]string{{ids[i], ids[j]}}
				if g.Directed() {
					pairs = append(pairs, [2]string{ids[j], ids[i]})
				}
				for _, p := range pairs {
					w := weightFor(weighted, cfg)
					if _, err := g.AddEdge(p[0], p[1], w); err != nil {
						return builderErrorf(MethodComplete, err, "AddEdge(%s→%s, w=%g)", p[0], p[1], w)
					}
				}
			}
		}
		return nil
	}
}
