// Package rpanet is a growth engine for directed, weighted networks under
// generalized preferential attachment, with reciprocity between node groups.
//
// What is rpanet?
//
//	Each step requests a number of edges. Every edge is placed by one of five
//	scenarios (new source, existing pair, new target, new pair, new loop),
//	picking existing endpoints in proportion to a linear preference over
//	in/out strength and degree. A placed edge may trigger a reciprocal
//	back-edge, drawn from a group-to-group probability matrix.
//
// Under the hood, the module is organized as:
//
//	sampler/     — weighted sampling tree (O(log n)) and linear scan sampler
//	preference/  — parametric preference functions over node statistics
//	reciprocity/ — group labels and the reciprocity matrix
//	rpanet/      — the Engine, its options, Seed and Result types, exports
//	core/        — thread-safe directed multigraph used for seeds and exports
//	builder/     — seed topologies and growth on top of core.Graph
//	bfs/         — traversal and weakly connected components
//	config/      — YAML + environment configuration with validation
//	logging/     — zap logger construction
//	metrics/     — Prometheus collectors for runs
//	cmd/rpanet/  — CLI: validate a config, generate replicates
//
// Quick example:
//
//	seed, _ := rpanet.SeedFromEdges(2, []rpanet.Edge{{Source: 0, Target: 1, Weight: 1}})
//	eng, _ := rpanet.New(seed, rpanet.WithSeed(42), rpanet.WithScenario(0.2, 0.6, 0.2, 0))
//	res, _ := eng.Run([]int{10, 10, 10})
//
//	go get github.com/katalvlaran/rpanet
package rpanet
