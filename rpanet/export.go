// SPDX-License-Identifier: MIT
// Package: rpanet
//
// export.go - conversion between Result/Seed and core.Graph.
//
// Contract:
//   • Graph and AddTo map node id i to a vertex ID through an id function
//     (decimal by default) and keep edge creation order.
//   • SeedFromGraph is the inverse for arbitrary graphs: vertices are numbered
//     in ascending order (numeric when every ID is a decimal integer), edges
//     keep creation order and undirected edges contribute both directions.

package rpanet

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/rpanet/core"
	"github.com/katalvlaran/rpanet/reciprocity"
)

// Vertex metadata keys set by Graph and AddTo, and read by SeedFromGraph.
const (
	MetaGroup     = "group"
	MetaOutWeight = "outWeight"
	MetaInWeight  = "inWeight"
)

// Graph exports the network as a directed, weighted multigraph with loops.
// Vertex IDs are decimal node ids; each vertex carries MetaGroup,
// MetaOutWeight and MetaInWeight metadata. Edges keep creation order.
func (r *Result) Graph() (*core.Graph, error) {
	g := core.NewGraph(
		core.WithDirected(true),
		core.WithWeighted(),
		core.WithLoops(),
		core.WithMultiEdges(),
	)
	if err := r.AddTo(g, strconv.Itoa, 0); err != nil {
		return nil, fmt.Errorf("Result.Graph: %w", err)
	}
	return g, nil
}

// AddTo writes the network into g. Missing vertices are added, every vertex
// gets its metadata refreshed, and edges with index ≥ fromEdge are appended.
// On an unweighted g edges are added with weight 0.
// Core mode violations (loops, parallel edges) are returned as errors.
func (r *Result) AddTo(g *core.Graph, id func(int) string, fromEdge int) error {
	const method = "Result.AddTo"
	for i := range r.NodeCount() {
		vid := id(i)
		if err := g.AddVertex(vid); err != nil {
			return fmt.Errorf("%s: vertex %d: %w", method, i, err)
		}
		_ = g.SetVertexMetadata(vid, MetaGroup, r.Group[i])
		_ = g.SetVertexMetadata(vid, MetaOutWeight, r.OutWeight[i])
		_ = g.SetVertexMetadata(vid, MetaInWeight, r.InWeight[i])
	}
	weighted := g.Weighted()
	for k := max(fromEdge, 0); k < len(r.Edges); k++ {
		e := r.Edges[k]
		w := e.Weight
		if !weighted {
			w = 0
		}
		if _, err := g.AddEdge(id(e.Source), id(e.Target), w); err != nil {
			return fmt.Errorf("%s: edge %d (%d→%d): %w", method, k, e.Source, e.Target, err)
		}
	}
	return nil
}

// SeedFromGraph converts g into a seed. It returns the seed and the vertex ID
// of every seed node. Edge weights of an unweighted graph count as 1.
// Integer MetaGroup metadata becomes the node group; when no vertex carries
// one the seed is unlabelled.
func SeedFromGraph(g *core.Graph) (Seed, []string, error) {
	const method = "SeedFromGraph"
	ids := vertexOrder(g.Vertices())
	if len(ids) == 0 {
		return Seed{}, nil, rpanetErrorf(method, ErrEmptySeed, "graph has no vertices")
	}
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	var edges []Edge
	for _, ce := range g.Edges() {
		w := ce.Weight
		if !g.Weighted() {
			w = 1
		}
		s, t := index[ce.From], index[ce.To]
		edges = append(edges, Edge{Source: s, Target: t, Weight: w})
		if !ce.Directed && s != t {
			edges = append(edges, Edge{Source: t, Target: s, Weight: w})
		}
	}
	seed, err := SeedFromEdges(len(ids), edges)
	if err != nil {
		return Seed{}, nil, fmt.Errorf("%s: %w", method, err)
	}

	labelled := false
	groups := make([]int, len(ids))
	for i, id := range ids {
		groups[i] = reciprocity.NoGroup
		md, err := g.VertexMetadata(id)
		if err != nil {
			continue
		}
		if v, ok := md[MetaGroup].(int); ok {
			groups[i] = v
			labelled = labelled || v != reciprocity.NoGroup
		}
	}
	if labelled {
		seed.Group = groups
	}
	return seed, ids, nil
}

// vertexOrder sorts numerically when every ID is a decimal integer and keeps
// the lexicographic order otherwise.
func vertexOrder(ids []string) []string {
	nums := make(map[string]int, len(ids))
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			return ids
		}
		nums[id] = n
	}
	slices.SortFunc(ids, func(a, b string) int { return cmp.Compare(nums[a], nums[b]) })
	return ids
}
