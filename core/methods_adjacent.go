// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (OutArcs, SuccessorIDs, PredecessorIDs) and the
//       adjacency helpers shared by every mutating code path.
// Determinism:
//   - OutArcs() sorts by (To, EdgeID) asc.
//   - SuccessorIDs()/PredecessorIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Queries hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// OutArcs returns every arc leaving id, sorted by head then edge ID.
//
// Undirected edges appear from both endpoints; parallel edges appear once each.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d) where d is the out-degree of id.
func (g *Graph) OutArcs(id string) ([]Arc, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []Arc
	for to, set := range g.adjacencyList[id] {
		for eid := range set {
			out = append(out, Arc{To: to, Weight: g.edges[eid].Weight, EdgeID: eid})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return out[i].EdgeID < out[j].EdgeID
	})

	return out, nil
}

// SuccessorIDs returns the unique heads of arcs leaving id, sorted lex asc.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) SuccessorIDs(id string) ([]string, error) {
	return g.neighborIDs(id, false)
}

// PredecessorIDs returns the unique tails of arcs entering id, sorted lex asc.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) PredecessorIDs(id string) ([]string, error) {
	return g.neighborIDs(id, true)
}

func (g *Graph) neighborIDs(id string, reverse bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	index := g.adjacencyList
	if reverse {
		index = g.incoming
	}
	ids := make([]string, 0, len(index[id]))
	for other, set := range index[id] {
		if len(set) > 0 {
			ids = append(ids, other)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureVertexBuckets creates the per-vertex outer maps of both indexes.
func ensureVertexBuckets(g *Graph, id string) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	if g.incoming[id] == nil {
		g.incoming[id] = make(map[string]map[string]struct{})
	}
}

// linkArc records eid as an arc from→to in both indexes.
func linkArc(g *Graph, from, to, eid string) {
	ensureVertexBuckets(g, from)
	ensureVertexBuckets(g, to)
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
	g.adjacencyList[from][to][eid] = struct{}{}
	if g.incoming[to][from] == nil {
		g.incoming[to][from] = make(map[string]struct{})
	}
	g.incoming[to][from][eid] = struct{}{}
}

// unlinkArc removes eid from the from→to buckets and prunes empty buckets.
func unlinkArc(g *Graph, from, to, eid string) {
	if m := g.adjacencyList[from][to]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.adjacencyList[from], to)
		}
	}
	if m := g.incoming[to][from]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.incoming[to], from)
		}
	}
}

// addAdjacency links e, mirrored for undirected non-loop edges.
func addAdjacency(g *Graph, e *Edge) {
	linkArc(g, e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		linkArc(g, e.To, e.From, e.ID)
	}
}

// removeAdjacency is the inverse of addAdjacency.
func removeAdjacency(g *Graph, e *Edge) {
	unlinkArc(g, e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		unlinkArc(g, e.To, e.From, e.ID)
	}
}

// incidentEdgeIDs lists every edge touching id, each once.
func incidentEdgeIDs(g *Graph, id string) []string {
	seen := make(map[string]struct{})
	var ids []string
	collect := func(index map[string]map[string]map[string]struct{}) {
		for _, set := range index[id] {
			for eid := range set {
				if _, dup := seen[eid]; dup {
					continue
				}
				seen[eid] = struct{}{}
				ids = append(ids, eid)
			}
		}
	}
	collect(g.adjacencyList)
	collect(g.incoming)
	sort.Strings(ids)

	return ids
}
