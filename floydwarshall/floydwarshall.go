// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Dense all-pairs shortest paths with next-hop and predecessor tables,
//     the primary routing tables of the protection precompute.
//
// Contract:
//   - Row-major n×n buffers indexed by the sorted vertex order of the graph.
//   - +Inf means "no path"; the diagonal is 0 unless a negative cycle exists.

package floydwarshall

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/disjoint/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNegativeCycle indicates a negative cycle (negative diagonal after closure).
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle")

	// ErrVertexNotFound indicates a query for a vertex outside the table.
	ErrVertexNotFound = errors.New("floydwarshall: vertex not found")

	// ErrUnreachable indicates that no path exists between the queried vertices.
	ErrUnreachable = errors.New("floydwarshall: unreachable")
)

const none = -1

// Table holds the closure of a graph.
type Table struct {
	ids   []string
	index map[string]int
	dist  []float64 // dist[i*n+j]
	next  []int     // first hop after i on a shortest i→j path
	prev  []int     // vertex before j on a shortest i→j path
}

// AllPairs computes shortest distances between every ordered vertex pair.
// Parallel arcs contribute their lightest weight; self-loops are ignored.
//
// Determinism:
//   - Loop order is fixed (k → i → j) and only strict improvements are taken.
//
// Complexity: Time O(V³), Space O(V²).
func AllPairs(g *core.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ids := g.Vertices()
	n := len(ids)
	t := &Table{
		ids:   ids,
		index: make(map[string]int, n),
		dist:  make([]float64, n*n),
		next:  make([]int, n*n),
		prev:  make([]int, n*n),
	}
	for i, id := range ids {
		t.index[id] = i
	}
	for i := range t.dist {
		t.dist[i] = math.Inf(1)
		t.next[i] = none
		t.prev[i] = none
	}
	for i := 0; i < n; i++ {
		t.dist[i*n+i] = 0
		t.next[i*n+i] = i
		t.prev[i*n+i] = i
	}

	for i, id := range ids {
		arcs, err := g.OutArcs(id)
		if err != nil {
			return nil, fmt.Errorf("floydwarshall: arcs of %q: %w", id, err)
		}
		for _, a := range arcs {
			j := t.index[a.To]
			if i == j {
				continue
			}
			if a.Weight < t.dist[i*n+j] {
				t.dist[i*n+j] = a.Weight
				t.next[i*n+j] = j
				t.prev[i*n+j] = i
			}
		}
	}

	t.close()

	for i := 0; i < n; i++ {
		if t.dist[i*n+i] < 0 {
			return nil, fmt.Errorf("%w: through %q", ErrNegativeCycle, ids[i])
		}
	}

	return t, nil
}

// close runs the k → i → j relaxation in place.
func (t *Table) close() {
	n := len(t.ids)
	data := t.dist
	var ik, kj, cand float64
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					t.next[baseI+j] = t.next[baseI+k]
					t.prev[baseI+j] = t.prev[baseK+j]
				}
			}
		}
	}
}

// Vertices returns the vertex order of the table (sorted lexicographically).
func (t *Table) Vertices() []string {
	return append([]string(nil), t.ids...)
}

func (t *Table) pair(u, v string) (int, error) {
	i, ok := t.index[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	j, ok := t.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	return i*len(t.ids) + j, nil
}

// Dist returns the shortest distance u→v (+Inf when unreachable).
func (t *Table) Dist(u, v string) (float64, error) {
	p, err := t.pair(u, v)
	if err != nil {
		return 0, err
	}

	return t.dist[p], nil
}

// Next returns the first hop after u on a shortest u→v path.
// ok is false when v is unreachable or unknown; Next(u,u) is u.
func (t *Table) Next(u, v string) (hop string, ok bool) {
	p, err := t.pair(u, v)
	if err != nil || t.next[p] == none {
		return "", false
	}

	return t.ids[t.next[p]], true
}

// Prev returns the vertex before v on a shortest u→v path.
func (t *Table) Prev(u, v string) (hop string, ok bool) {
	p, err := t.pair(u, v)
	if err != nil || t.prev[p] == none {
		return "", false
	}

	return t.ids[t.prev[p]], true
}

// Path returns the vertex sequence of a shortest u→v path.
func (t *Table) Path(u, v string) ([]string, error) {
	p, err := t.pair(u, v)
	if err != nil {
		return nil, err
	}
	if t.next[p] == none {
		return nil, fmt.Errorf("%w: %q→%q", ErrUnreachable, u, v)
	}

	n := len(t.ids)
	i, j := t.index[u], t.index[v]
	path := []string{u}
	for i != j {
		i = t.next[i*n+j]
		path = append(path, t.ids[i])
		if len(path) > n {
			return nil, fmt.Errorf("%w: %q→%q", ErrNegativeCycle, u, v)
		}
	}

	return path, nil
}

// Reachable returns every vertex reachable from u, in table order.
func (t *Table) Reachable(u string) []string {
	i, ok := t.index[u]
	if !ok {
		return nil
	}
	n := len(t.ids)
	var out []string
	for j := 0; j < n; j++ {
		if j != i && t.next[i*n+j] != none {
			out = append(out, t.ids[j])
		}
	}

	return out
}
