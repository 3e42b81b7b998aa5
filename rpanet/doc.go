// SPDX-License-Identifier: MIT

// Package rpanet grows directed, weighted networks by generalized
// preferential attachment.
//
// Each step adds a requested number of edges. For every edge a uniform draw
// picks one of five scenarios:
//
//	1  new node      → existing node   (probability alpha)
//	2  existing node → existing node   (beta)
//	3  existing node → new node        (gamma)
//	4  new node      → new node        (xi)
//	5  new node      → itself          (1 - alpha - beta - gamma - xi)
//
// Existing endpoints are drawn with probability proportional to their source
// or target preference, a function of the node's out- and in-strength (see
// package preference). With reciprocity enabled, new nodes get a group label
// and each edge s→t may be followed by the reverse edge t→s (scenario 6) with
// a probability given by the group pair. Reciprocal edges count toward the
// step's requested total.
//
// Strength changes made during a step become visible to sampling only after
// the step ends, so every draw of a step sees the same distribution. Nodes
// created in a step cannot be drawn until the next one.
//
// Uniqueness modes forbid reusing existing nodes within a step. When no
// eligible node is left the step is truncated and the truncation is reported
// in Result.Exhaustions; growth continues with the next step.
//
// Basic usage:
//
//	seed, _ := rpanet.SeedFromEdges(2, []rpanet.Edge{{Source: 0, Target: 1, Weight: 1}})
//	eng, err := rpanet.New(seed,
//		rpanet.WithSeed(42),
//		rpanet.WithScenario(0.2, 0.5, 0.2, 0.1),
//	)
//	if err != nil { ... }
//	res, _ := eng.Run([]int{10, 10, 10})
//	fmt.Println(res.NodeCount(), res.EdgeCount())
package rpanet
