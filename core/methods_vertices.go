// File: methods_vertices.go
// Role: Vertex lifecycle, metadata and per-vertex aggregates (Degree, Strength).
// Concurrency: lock order muVert -> muEdgeAdj everywhere.

package core

import (
	"maps"
	"sort"
)

// AddVertex inserts a vertex; a no-op if it already exists.
// Returns ErrEmptyVertexID on an empty id.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; caller holds muVert.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]any)}
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every incident edge.
//
// Complexity: O(E).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacencyList, id)

	return nil
}

// SetVertexMetadata stores value under key for the vertex.
func (g *Graph) SetVertexMetadata(id, key string, value any) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// VertexMetadata returns a copy of the vertex metadata.
func (g *Graph) VertexMetadata(id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return maps.Clone(v.Metadata), nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the in-degree, out-degree and undirected degree of id.
//
//   - A directed self-loop contributes +1 to in and +1 to out.
//   - An undirected self-loop contributes +2 to undirected.
//
// Complexity: O(E); no reverse index is kept.
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	fin, fout, fu, err := g.incidence(id, func(*Edge) float64 { return 1 })

	return int(fin), int(fout), int(fu), err
}

// Strength is Degree weighted by Edge.Weight: the summed weight of incoming,
// outgoing and undirected incident edges.
//
// Complexity: O(E).
func (g *Graph) Strength(id string) (in, out, undirected float64, err error) {
	return g.incidence(id, func(e *Edge) float64 { return e.Weight })
}

// incidence folds val over the edges incident to id.
func (g *Graph) incidence(id string, val func(*Edge) float64) (in, out, undirected float64, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}
	for _, e := range g.edges {
		isFrom, isTo := e.From == id, e.To == id
		if !isFrom && !isTo {
			continue
		}
		x := val(e)
		if e.Directed {
			if isFrom {
				out += x
			}
			if isTo {
				in += x
			}
			continue
		}
		if isFrom && isTo {
			undirected += 2 * x
		} else {
			undirected += x
		}
	}

	return in, out, undirected, nil
}
