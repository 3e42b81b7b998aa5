// SPDX-License-Identifier: MIT
// Package: rpanet/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n,p). Each admissible edge is included independently
// with probability p.
//   - Undirected: unordered pairs {i,j} with i<j.
//   - Directed: ordered pairs (i,j); self-loops only when g.Looped().
//
// Contract:
//   - n ≥ MinSparseNodes (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and consumes no Bernoulli draws.
//
// Determinism: trial order is i asc, then j asc; the weight draw for an
// accepted edge follows its Bernoulli draw.
//
// Complexity: O(n²) trials, O(n) extra space.

package builder

import "github.com/katalvlaran/rpanet/core"

// RandomSparse returns a Constructor that samples G(n,p) over n vertices.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "p=%g", p)
		}

		ids, err := addVertices(MethodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}

		weighted, directed, loops := g.Weighted(), g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if p == MinProbability || (stochastic && cfg.rng.Float64() >= p) {
					continue
				}
				w := weightFor(weighted, cfg)
				if _, err := g.AddEdge(ids[i], ids[j], w); err != nil {
					return builderErrorf(MethodRandomSparse, err, "AddEdge(%s→%s, w=%g)", ids[i], ids[j], w)
				}
			}
		}
		return nil
	}
}
