// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/disjoint/core"
)

// Result is a maximum flow together with its residual network.
type Result struct {
	// Value is the total flow from source to sink.
	Value float64

	net    *network
	source int
}

// network is an arc-list residual graph: arc i and arc i^1 are each other's
// reverse, forward arcs have even indices.
type network struct {
	ids   []string
	index map[string]int
	head  [][]int   // arc indices leaving each vertex
	to    []int     // arc head
	cap   []float64 // residual capacity
	orig  []float64 // initial capacity (0 for reverse arcs)
	level []int
	iter  []int
	eps   float64
}

func (n *network) addArc(u, v int, c float64) {
	n.head[u] = append(n.head[u], len(n.to))
	n.to, n.cap, n.orig = append(n.to, v), append(n.cap, c), append(n.orig, c)
	n.head[v] = append(n.head[v], len(n.to))
	n.to, n.cap, n.orig = append(n.to, u), append(n.cap, 0), append(n.orig, 0)
}

// Dinic computes a maximum flow from source to sink.
//
// Steps:
//  1. Validate inputs and number vertices in sorted order.
//  2. Build the arc list from core.OutArcs, skipping self-loops and
//     capacities ≤ Epsilon.
//  3. Repeat: BFS level graph from source; stop if sink is unreachable;
//     push blocking flow along strictly increasing levels.
//
// Complexity:
//
//	Time:   O(V²·E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(ctx context.Context, g *core.Graph, source, sink string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameEndpoints
	}

	n, err := build(g, cfg)
	if err != nil {
		return nil, err
	}
	s, t := n.index[source], n.index[sink]

	res := &Result{net: n, source: s}
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if !n.bfs(s, t) {
			break
		}
		for i := range n.iter {
			n.iter[i] = 0
		}
		for {
			pushed := n.push(s, t, math.Inf(1))
			if pushed <= n.eps {
				break
			}
			res.Value += pushed
		}
	}

	return res, nil
}

func build(g *core.Graph, cfg Options) (*network, error) {
	ids := g.Vertices()
	n := &network{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		head:  make([][]int, len(ids)),
		level: make([]int, len(ids)),
		iter:  make([]int, len(ids)),
		eps:   cfg.Epsilon,
	}
	for i, id := range ids {
		n.index[id] = i
	}
	for i, id := range ids {
		arcs, err := g.OutArcs(id)
		if err != nil {
			return nil, err
		}
		for _, a := range arcs {
			if a.To == id {
				continue
			}
			c := cfg.Capacity(id, a)
			if c < -cfg.Epsilon {
				return nil, EdgeError{From: id, To: a.To, Cap: c}
			}
			if c > cfg.Epsilon {
				n.addArc(i, n.index[a.To], c)
			}
		}
	}

	return n, nil
}

// bfs assigns levels from s over arcs with residual capacity and reports
// whether t was reached.
func (n *network) bfs(s, t int) bool {
	for i := range n.level {
		n.level[i] = -1
	}
	n.level[s] = 0
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range n.head[u] {
			v := n.to[e]
			if n.cap[e] > n.eps && n.level[v] < 0 {
				n.level[v] = n.level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return n.level[t] >= 0
}

// push sends up to limit units from u to t along the level graph.
func (n *network) push(u, t int, limit float64) float64 {
	if u == t {
		return limit
	}
	for ; n.iter[u] < len(n.head[u]); n.iter[u]++ {
		e := n.head[u][n.iter[u]]
		v := n.to[e]
		if n.cap[e] <= n.eps || n.level[v] != n.level[u]+1 {
			continue
		}
		pushed := n.push(v, t, math.Min(limit, n.cap[e]))
		if pushed > n.eps {
			n.cap[e] -= pushed
			n.cap[e^1] += pushed
			return pushed
		}
	}

	return 0
}

// Flow returns the flow carried from u to v (0 for unknown vertices).
func (r *Result) Flow(u, v string) float64 {
	n := r.net
	i, ok := n.index[u]
	j, ok2 := n.index[v]
	if !ok || !ok2 {
		return 0
	}
	var f float64
	for _, e := range n.head[i] {
		if e%2 == 0 && n.to[e] == j {
			f += n.orig[e] - n.cap[e]
		}
	}

	return f
}

// SourceSide returns the vertices still reachable from the source in the
// residual network, in sorted order. It is the source side of a minimum cut.
func (r *Result) SourceSide() []string {
	seen := r.reachable()
	var out []string
	for i, ok := range seen {
		if ok {
			out = append(out, r.net.ids[i])
		}
	}

	return out
}

// Cut returns the arcs of a minimum cut as [from, to] pairs: saturated arcs
// leaving the source side, in vertex then arc order. Parallel arcs appear once.
func (r *Result) Cut() [][2]string {
	n := r.net
	seen := r.reachable()
	dup := make(map[[2]int]bool)
	var out [][2]string
	for u := range n.head {
		if !seen[u] {
			continue
		}
		for _, e := range n.head[u] {
			v := n.to[e]
			if e%2 != 0 || seen[v] || dup[[2]int{u, v}] {
				continue
			}
			dup[[2]int{u, v}] = true
			out = append(out, [2]string{n.ids[u], n.ids[v]})
		}
	}

	return out
}

func (r *Result) reachable() []bool {
	n := r.net
	seen := make([]bool, len(n.ids))
	seen[r.source] = true
	stack := []int{r.source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.head[u] {
			if v := n.to[e]; n.cap[e] > n.eps && !seen[v] {
				seen[v] = true
				stack = append(stack, v)
			}
		}
	}

	return seen
}
