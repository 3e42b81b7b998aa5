// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus weakly connected
// components of grown networks.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start vertex.
//   - Edge weights are ignored; weighted graphs are traversed by topology.
//   - WithWeak follows edges in both directions on directed graphs.
//   - Components partitions the vertex set into weakly connected components.
//
// Determinism
//
//	Neighbors are expanded in sorted ID order, and Components seeds each
//	search from the lowest unvisited vertex of g.Vertices(), so results are
//	reproducible for a given graph.
//
// Complexity
//
//	BFS and Components run in O(V + E) time and O(V) extra memory
//	(O(V + E) when an undirected view is materialized for WithWeak).
package bfs
