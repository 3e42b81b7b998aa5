// Package core provides a thread-safe in-memory Graph used as the export
// target of generated networks.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Per-vertex metadata (SetVertexMetadata / VertexMetadata)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Monotonic Edge.ID generation ("e1", "e2", …)
//
// Determinism: Vertices() is sorted lexicographically, Edges() by creation
// order, NeighborIDs() lexicographically.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1)
//	HasVertex(id string) bool             // O(1)
//	RemoveVertex(id string) error         // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error       // O(1)
//	HasEdge(from, to string) bool         // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // outgoing (or incident) edges
//	NeighborIDs(id string) ([]string, error) // unique, sorted
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//
//	// Counts & degrees
//	Degree(id string) (in, out, undirected int, err error) // O(E)
//	Strength(id string) (in, out, undirected float64, err error) // O(E)
//	VertexCount() int, EdgeCount() int                     // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero or non-finite weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
