package core_test

import (
	"fmt"

	"github.com/katalvlaran/rpanet/core"
)

// ExampleGraph_Strength shows weighted in/out strength on a directed multigraph.
func ExampleGraph_Strength() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "B", 3)
	_, _ = g.AddEdge("B", "C", 1)

	in, out, _, _ := g.Strength("B")
	fmt.Println("B in:", in, "out:", out)
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// B in: 5 out: 1
	// edges: 3
}
