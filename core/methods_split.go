// SPDX-License-Identifier: MIT
//
// File: methods_split.go
// Role: Node splitting (SplitNode) and its inverse (MergeNode), the transform
//       that turns node-disjointness into edge-disjointness.
// Determinism:
//   - Twin IDs are derived from the split ID ("X|in", "X|out", probing with
//     extra separators until unused); edges are moved in ID order.
// Concurrency:
//   - Both operations hold muVert and muEdgeAdj write locks for their whole duration.

package core

import "sort"

const twinSeparator = "|"

// SplitNode replaces id by an in-twin and an out-twin joined by a zero-weight
// pass-through arc in→out. Every arc entering id now enters the in-twin and
// every arc leaving id now leaves the out-twin. Edge IDs are preserved.
//
// Errors:
//   - ErrSplitUndirected: the graph is undirected.
//   - ErrEmptyVertexID, ErrVertexNotFound.
//   - ErrAlreadySplit: id is itself a twin.
//
// Complexity: O(deg(id) log deg(id)).
func (g *Graph) SplitNode(id string) (in, out string, err error) {
	if id == "" {
		return "", "", ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.directed {
		return "", "", ErrSplitUndirected
	}
	v, ok := g.vertices[id]
	if !ok {
		return "", "", ErrVertexNotFound
	}
	if v.Origin != "" {
		return "", "", ErrAlreadySplit
	}

	in, out = twinIDs(g, id)
	g.vertices[in] = &Vertex{ID: in, Origin: id, Metadata: v.Metadata}
	g.vertices[out] = &Vertex{ID: out, Origin: id, Metadata: v.Metadata}
	ensureVertexBuckets(g, in)
	ensureVertexBuckets(g, out)

	for _, eid := range incidentEdgeIDs(g, id) {
		e := g.edges[eid]
		removeAdjacency(g, e)
		if e.From == id {
			e.From = out
		}
		if e.To == id {
			e.To = in
		}
		addAdjacency(g, e)
	}
	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	delete(g.incoming, id)

	insertEdge(g, in, out, 0, nil)

	return in, out, nil
}

// MergeNode undoes SplitNode for the original vertex id: the twins are
// replaced by id again, arcs between the twins are dropped and every other
// twin arc is reattached to id. Without WithMultiEdges() a collision keeps
// the lighter edge.
//
// Errors:
//   - ErrEmptyVertexID.
//   - ErrNotSplit: no twin of id exists.
//
// Complexity: O(V + deg(twins)).
func (g *Graph) MergeNode(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	var twins []string
	for tid, v := range g.vertices {
		if v.Origin == id {
			twins = append(twins, tid)
		}
	}
	if len(twins) == 0 {
		return ErrNotSplit
	}
	sort.Strings(twins)

	isTwin := make(map[string]bool, len(twins))
	for _, tid := range twins {
		isTwin[tid] = true
	}

	g.vertices[id] = &Vertex{ID: id, Metadata: g.vertices[twins[0]].Metadata}
	ensureVertexBuckets(g, id)

	var moved []*Edge
	seen := make(map[string]bool)
	for _, tid := range twins {
		for _, eid := range incidentEdgeIDs(g, tid) {
			if seen[eid] {
				continue
			}
			seen[eid] = true
			e := g.edges[eid]
			removeAdjacency(g, e)
			if isTwin[e.From] && isTwin[e.To] {
				delete(g.edges, eid)
				continue
			}
			moved = append(moved, e)
		}
	}
	for _, tid := range twins {
		delete(g.vertices, tid)
		delete(g.adjacencyList, tid)
		delete(g.incoming, tid)
	}

	sort.Slice(moved, func(i, j int) bool { return edgeIDLess(moved[i].ID, moved[j].ID) })
	for _, e := range moved {
		if isTwin[e.From] {
			e.From = id
		}
		if isTwin[e.To] {
			e.To = id
		}
		if !g.allowMulti {
			if clash := firstEdge(g, e.From, e.To); clash != nil {
				if e.Weight < clash.Weight {
					clash.Weight = e.Weight
				}
				delete(g.edges, e.ID)
				continue
			}
		}
		addAdjacency(g, e)
	}

	return nil
}

// twinIDs picks unused in/out IDs for id; muVert must be held.
func twinIDs(g *Graph, id string) (string, string) {
	sep := twinSeparator
	for {
		in, out := id+sep+"in", id+sep+"out"
		_, inTaken := g.vertices[in]
		_, outTaken := g.vertices[out]
		if !inTaken && !outTaken {
			return in, out
		}
		sep += twinSeparator
	}
}

// firstEdge returns any edge from→to; muEdgeAdj must be held.
func firstEdge(g *Graph, from, to string) *Edge {
	for eid := range g.adjacencyList[from][to] {
		return g.edges[eid]
	}
	return nil
}
