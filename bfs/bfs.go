package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/rpanet/core"
)

// neighborFn lists the vertices one hop away from id, sorted.
type neighborFn func(id string) ([]string, error)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	next    neighborFn
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any error returned by the OnVisit hook.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	next := neighborFn(g.NeighborIDs)
	if o.Weak && g.Directed() {
		next = undirectedView(g)
	}
	w := newWalker(next, o, g.VertexCount())
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Components returns the weakly connected components of g. Each component
// lists its vertices in g.Vertices() order; components are ordered by their
// first vertex.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	next := neighborFn(g.NeighborIDs)
	if g.Directed() {
		next = undirectedView(g)
	}
	vertices := g.Vertices()
	seen := make(map[string]bool, len(vertices))
	rank := make(map[string]int, len(vertices))
	for i, id := range vertices {
		rank[id] = i
	}

	var comps [][]string
	for _, id := range vertices {
		if seen[id] {
			continue
		}
		w := newWalker(next, DefaultOptions(), 0)
		w.visited = seen
		w.enqueue(id, 0, "")
		if err := w.loop(); err != nil {
			return nil, err
		}
		comp := w.res.Order
		sort.Slice(comp, func(i, j int) bool { return rank[comp[i]] < rank[comp[j]] })
		comps = append(comps, comp)
	}

	return comps, nil
}

// undirectedView materializes sorted, de-duplicated neighbor lists that
// ignore edge direction.
func undirectedView(g *core.Graph) neighborFn {
	adj := make(map[string]map[string]struct{}, g.VertexCount())
	link := func(a, b string) {
		if adj[a] == nil {
			adj[a] = make(map[string]struct{})
		}
		adj[a][b] = struct{}{}
	}
	for _, e := range g.Edges() {
		link(e.From, e.To)
		link(e.To, e.From)
	}
	lists := make(map[string][]string, len(adj))
	for id, set := range adj {
		l := make([]string, 0, len(set))
		for nbr := range set {
			l = append(l, nbr)
		}
		sort.Strings(l)
		lists[id] = l
	}

	return func(id string) ([]string, error) {
		return lists[id], nil
	}
}

func newWalker(next neighborFn, o Options, n int) *walker {
	return &walker{
		next:    next,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.next(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}
	return nil
}
