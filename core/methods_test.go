// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for vertex/edge lifecycle and query APIs.
//   - Validate constraint enforcement (weights, loops, multi-edges).
//   - Anchor Degree/Strength semantics for directed loops and parallel edges.

package core_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/rpanet/core"
)

// TestGraph_AddRemoveVertex verifies AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("AddVertex(\"\") = %v, want ErrEmptyVertexID", err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A): %v", err)
	}
	if err := g.AddVertex("A"); err != nil || g.VertexCount() != 1 {
		t.Fatalf("duplicate AddVertex must be a no-op; err=%v count=%d", err, g.VertexCount())
	}
	if err := g.RemoveVertex("Z"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("RemoveVertex(Z) = %v, want ErrVertexNotFound", err)
	}
	if err := g.RemoveVertex("A"); err != nil || g.HasVertex("A") {
		t.Fatalf("RemoveVertex(A): err=%v present=%v", err, g.HasVertex("A"))
	}
}

// TestGraph_EdgeConstraints verifies weight, loop and multi-edge gating.
func TestGraph_EdgeConstraints(t *testing.T) {
	plain := core.NewGraph(core.WithDirected(true))
	if _, err := plain.AddEdge("A", "B", 2); !errors.Is(err, core.ErrBadWeight) {
		t.Fatalf("weight on unweighted graph: %v", err)
	}
	if _, err := plain.AddEdge("A", "A", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("loop without WithLoops: %v", err)
	}
	if _, err := plain.AddEdge("A", "B", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := plain.AddEdge("A", "B", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Fatalf("parallel edge without WithMultiEdges: %v", err)
	}

	w := core.NewGraph(core.WithWeighted())
	if _, err := w.AddEdge("A", "B", math.NaN()); !errors.Is(err, core.ErrBadWeight) {
		t.Fatalf("NaN weight: %v", err)
	}
	if _, err := w.AddEdge("", "B", 1); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("empty endpoint: %v", err)
	}
}

// TestGraph_DirectedMultigraph exercises the configuration used for
// generated networks: directed, weighted, loops and parallel edges.
func TestGraph_DirectedMultigraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	if !g.Directed() || !g.Weighted() || !g.Looped() || !g.Multigraph() {
		t.Fatalf("mode flags: directed=%v weighted=%v looped=%v multi=%v",
			g.Directed(), g.Weighted(), g.Looped(), g.Multigraph())
	}

	mustAdd := func(from, to string, w float64) string {
		t.Helper()
		id, err := g.AddEdge(from, to, w)
		if err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", from, to, err)
		}
		return id
	}
	e1 := mustAdd("0", "1", 1.5)
	mustAdd("0", "1", 2)
	mustAdd("1", "1", 3)
	mustAdd("2", "0", 0.5)

	if !g.HasEdge("0", "1") || g.HasEdge("1", "0") {
		t.Fatalf("directed adjacency is wrong")
	}

	in, out, und, err := g.Degree("1")
	if err != nil || in != 3 || out != 1 || und != 0 {
		t.Fatalf("Degree(1) = %d,%d,%d,%v; want 3,1,0", in, out, und, err)
	}
	sin, sout, _, err := g.Strength("1")
	if err != nil || sin != 6.5 || sout != 3 {
		t.Fatalf("Strength(1) = %v,%v,%v; want 6.5,3", sin, sout, err)
	}
	sin, sout, _, _ = g.Strength("0")
	if sin != 0.5 || sout != 3.5 {
		t.Fatalf("Strength(0) = %v,%v; want 0.5,3.5", sin, sout)
	}

	edges := g.Edges()
	if len(edges) != 4 || edges[0].ID != e1 || edges[3].From != "2" {
		t.Fatalf("Edges() not in creation order: %+v", edges)
	}

	nb, err := g.Neighbors("0")
	if err != nil || len(nb) != 2 {
		t.Fatalf("Neighbors(0) = %d edges, %v; want 2 parallel edges", len(nb), err)
	}
	ids, _ := g.NeighborIDs("0")
	if !reflect.DeepEqual(ids, []string{"1"}) {
		t.Fatalf("NeighborIDs(0) = %v", ids)
	}

	if err := g.RemoveEdge(e1); err != nil || g.EdgeCount() != 3 {
		t.Fatalf("RemoveEdge: %v count=%d", err, g.EdgeCount())
	}
	if err := g.RemoveEdge(e1); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Fatalf("second RemoveEdge = %v", err)
	}
	if err := g.RemoveVertex("1"); err != nil || g.EdgeCount() != 1 {
		t.Fatalf("RemoveVertex(1) should drop incident edges; count=%d", g.EdgeCount())
	}
}

// TestGraph_UndirectedDegree anchors loop and mirror semantics.
func TestGraph_UndirectedDegree(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "A", 1)

	if !g.HasEdge("B", "A") {
		t.Fatalf("undirected edge must be mirrored")
	}
	_, _, und, _ := g.Degree("A")
	if und != 3 {
		t.Fatalf("undirected degree with loop = %d, want 3", und)
	}
	_, _, s, _ := g.Strength("A")
	if s != 4 {
		t.Fatalf("undirected strength with loop = %v, want 4", s)
	}
}

// TestGraph_Metadata verifies metadata storage and copy-on-read.
func TestGraph_Metadata(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	if err := g.SetVertexMetadata("A", "group", 2); err != nil {
		t.Fatalf("SetVertexMetadata: %v", err)
	}
	if err := g.SetVertexMetadata("B", "group", 1); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("metadata on missing vertex: %v", err)
	}
	md, err := g.VertexMetadata("A")
	if err != nil || md["group"] != 2 {
		t.Fatalf("VertexMetadata = %v, %v", md, err)
	}
	md["group"] = 9
	again, _ := g.VertexMetadata("A")
	if again["group"] != 2 {
		t.Fatalf("VertexMetadata must return a copy")
	}
	if !reflect.DeepEqual(g.Vertices(), []string{"A"}) {
		t.Fatalf("Vertices() = %v", g.Vertices())
	}
}
