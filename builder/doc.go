// Package builder assembles core.Graph fixtures and grown networks through
// functional options.
//
// Components:
//
//   - BuildGraph: creates a graph and applies Constructors in order.
//   - Seed topologies: Cycle, Path, Star, Complete, RandomSparse.
//   - Growth: PreferentialAttachment, which treats the graph built so far as
//     the seed network and grows it with the rpanet engine.
//   - Vertex ID schemes (IDFn): DefaultIDFn, HexIDFn, AlphanumericIDFn,
//     PrefixIDFn, resolvable by name through ParseIDScheme.
//   - Edge-weight distributions (WeightFn): constant, uniform, normal,
//     exponential, log-normal, Pareto. EdgeWeights adapts a WeightFn to
//     rpanet.WithEdgeWeightFn.
//
// Option constructors panic on meaningless arguments; Constructors return
// sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ...) wrapped with
// the method name.
package builder
