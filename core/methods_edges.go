// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/PutEdge/RemoveEdge/RemoveEdgeID/HasEdge/
//       Edge/Weight/Edges/EdgeCount, input checks used by algorithms, and nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight, creating missing endpoints.
//
// Errors:
//   - ErrEmptyVertexID: empty endpoint.
//   - ErrLoopNotAllowed: from == to without WithLoops().
//   - ErrMultiEdgeNotAllowed: from→to already present without WithMultiEdges().
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	return insertEdge(g, from, to, weight, opts), nil
}

// PutEdge sets the edge from→to to exactly one edge of the given weight,
// replacing every existing from→to edge. It reports whether anything was replaced.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed.
//
// Complexity: O(p) where p is the number of replaced parallel edges.
func (g *Graph) PutEdge(from, to string, weight float64) (bool, error) {
	if from == "" || to == "" {
		return false, ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return false, ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return false, err
	}
	if err := g.AddVertex(to); err != nil {
		return false, err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	replaced := dropEdges(g, from, to) > 0
	insertEdge(g, from, to, weight, nil)

	return replaced, nil
}

// RemoveEdge deletes every edge from→to (and its mirror for undirected graphs).
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(p) where p is the number of parallel edges from→to.
func (g *Graph) RemoveEdge(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if dropEdges(g, from, to) == 0 {
		return ErrEdgeNotFound
	}

	return nil
}

// RemoveEdgeID deletes one edge by ID.
//
// Errors:
//   - ErrEdgeNotFound if eid is unknown.
//
// Complexity: O(1).
func (g *Graph) RemoveEdgeID(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	removeAdjacency(g, e)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether at least one arc from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edge returns the lightest edge from→to (smallest ID on ties).
// The returned *Edge must be treated as read-only.
//
// Errors:
//   - ErrEdgeNotFound if no arc from→to exists.
//
// Complexity: O(p) over parallel edges.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var best *Edge
	for eid := range g.adjacencyList[from][to] {
		e := g.edges[eid]
		if best == nil || e.Weight < best.Weight || (e.Weight == best.Weight && e.ID < best.ID) {
			best = e
		}
	}
	if best == nil {
		return nil, ErrEdgeNotFound
	}

	return best, nil
}

// Weight returns the weight of the lightest arc from→to.
//
// Errors:
//   - ErrEdgeNotFound if no arc from→to exists.
func (g *Graph) Weight(from, to string) (float64, error) {
	e, err := g.Edge(from, to)
	if err != nil {
		return 0, err
	}

	return e.Weight, nil
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// NegativeEdge returns the first edge (by ID) carrying a negative weight, if any.
// Complexity: O(E log E).
func (g *Graph) NegativeEdge() (*Edge, bool) {
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return e, true
		}
	}

	return nil, false
}

// HasParallelEdges reports whether any ordered pair of vertices is joined by
// more than one edge.
// Complexity: O(V + E).
func (g *Graph) HasParallelEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, toMap := range g.adjacencyList {
		for _, set := range toMap {
			if len(set) > 1 {
				return true
			}
		}
	}

	return false
}

// insertEdge stores a new edge; muEdgeAdj must be held for writing.
func insertEdge(g *Graph, from, to string, weight float64, opts []EdgeOption) string {
	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[eid] = e
	addAdjacency(g, e)

	return eid
}

// dropEdges removes every edge from→to and returns how many were removed;
// muEdgeAdj must be held for writing.
func dropEdges(g *Graph, from, to string) int {
	set := g.adjacencyList[from][to]
	if len(set) == 0 {
		return 0
	}
	ids := make([]string, 0, len(set))
	for eid := range set {
		ids = append(ids, eid)
	}
	for _, eid := range ids {
		removeAdjacency(g, g.edges[eid])
		delete(g.edges, eid)
	}

	return len(ids)
}

// edgeIDLess orders "e2" before "e10" by comparing the numeric suffix.
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// nextEdgeID returns a new unique textual edge ID.
// Uses a monotonic counter incremented atomically; produces "e" + decimal digits.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
