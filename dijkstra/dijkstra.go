// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/disjoint/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath is set (nil otherwise);
//     prev[v] == "" for the source and unreachable vertices.
//   - err:  error if inputs are invalid or a negative weight is present.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	if e, ok := g.NegativeEdge(); ok {
		return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the vertex sequence and distance of a shortest path
// source → target.
//
// Errors: those of Dijkstra, plus ErrUnreachable (wrapped with the target) and
// ErrVertexNotFound for an unknown target.
func ShortestPath(g *core.Graph, source, target string) ([]string, float64, error) {
	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	d, ok := dist[target]
	if !ok {
		return nil, 0, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	if math.IsInf(d, 1) {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnreachable, target)
	}

	path := []string{target}
	for v := target; v != source; {
		v = prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, d, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool // distance finalized
	pq      nodePQ
}

// init sets every distance to +Inf except the source and seeds the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process extracts the closest unvisited vertex until the heap is empty or the
// closest distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the heads of u's arcs, skipping impassable ones.
func (r *runner) relax(u string) error {
	arcs, err := r.g.OutArcs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get arcs of %q: %w", u, err)
	}

	for _, a := range arcs {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if a.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, a.To, a.Weight)
		}

		nd := r.dist[u] + a.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = nd
		r.prev[a.To] = u
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem by (dist, id), with lazy decrease-key.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
