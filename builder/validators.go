package builder

import "github.com/katalvlaran/rpanet/core"

// Builder method names, used as error context.
const (
	MethodCycle                  = "Cycle"
	MethodPath                   = "Path"
	MethodStar                   = "Star"
	MethodComplete               = "Complete"
	MethodRandomSparse           = "RandomSparse"
	MethodPreferentialAttachment = "PreferentialAttachment"
)

// CenterVertexID is the fixed hub ID used by Star.
const CenterVertexID = "Center"

// Minimum vertex counts per topology.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinSparseNodes   = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// validateMin ensures got ≥ min, else ErrTooFewVertices.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability, "p=%g not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}
	return nil
}

// weightFor draws the next edge weight, or 0 on an unweighted graph.
func weightFor(weighted bool, cfg builderConfig) float64 {
	if !weighted {
		return 0
	}
	return cfg.weightFn(cfg.rng)
}

// addVertices inserts cfg.idFn(0..n-1) in ascending order and returns the IDs.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range n {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, builderErrorf(method, err, "AddVertex(%s)", ids[i])
		}
	}
	return ids, nil
}
