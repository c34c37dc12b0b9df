// SPDX-License-Identifier: MIT

package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/disjoint/core"
)

// ShortestPaths computes shortest distances and a predecessor tree from source.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrVertexNotFound).
//
// Determinism: vertices are queued in FIFO order and arcs are scanned in
// core.OutArcs order, so equal inputs always produce the same tree.
//
// Complexity:
//
//   - Time:  O(V·E) worst case.
//   - Space: O(V).
func ShortestPaths(g *core.Graph, source string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		limit:   len(vertices),
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		hops:    make(map[string]int, len(vertices)),
		queued:  make(map[string]bool, len(vertices)),
	}
	r.init(vertices, source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Bellman–Ford execution.
type runner struct {
	g       *core.Graph
	options Options
	limit   int                // |V|: a shortest path never has this many arcs
	dist    map[string]float64 // best known distance from source
	prev    map[string]string  // predecessor on the best known path
	hops    map[string]int     // arcs on the best known path
	queued  map[string]bool    // membership of the FIFO queue
	queue   []string
}

func (r *runner) init(vertices []string, source string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[source] = 0
	r.queue = append(r.queue, source)
	r.queued[source] = true
}

// process pops vertices in FIFO order until no distance improves.
func (r *runner) process() error {
	for len(r.queue) > 0 {
		u := r.queue[0]
		r.queue = r.queue[1:]
		r.queued[u] = false

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the heads of u's arcs. A path reaching |V| arcs must repeat
// a vertex, which only a negative cycle can make shorter.
func (r *runner) relax(u string) error {
	arcs, err := r.g.OutArcs(u)
	if err != nil {
		return fmt.Errorf("bellmanford: failed to get arcs of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, a := range arcs {
		nd := du + a.Weight
		if !(nd < r.dist[a.To]-r.options.Epsilon) {
			continue
		}
		r.dist[a.To] = nd
		r.prev[a.To] = u
		r.hops[a.To] = r.hops[u] + 1
		if r.hops[a.To] >= r.limit {
			return fmt.Errorf("%w: via %s→%s", ErrNegativeCycle, u, a.To)
		}
		if !r.queued[a.To] {
			r.queued[a.To] = true
			r.queue = append(r.queue, a.To)
		}
	}

	return nil
}

// PathTo returns the vertex sequence source → … → target.
//
// Errors:
//   - *UnreachableError (errors.Is ErrUnreachable) when target has no finite distance.
func (r *Result) PathTo(target string) ([]string, error) {
	d, ok := r.Dist[target]
	if !ok || math.IsInf(d, 1) {
		return nil, &UnreachableError{Target: target}
	}

	path := []string{target}
	for v := target; v != r.Source; {
		v = r.Prev[v]
		if v == "" || len(path) > len(r.Dist) {
			return nil, &UnreachableError{Target: target}
		}
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Distance returns the distance to target (+Inf when unreachable or unknown).
func (r *Result) Distance(target string) float64 {
	if d, ok := r.Dist[target]; ok {
		return d
	}

	return math.Inf(1)
}
