// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Copies of a graph: Clone (deep copy), ToDirected (arc expansion) and
//       Flatten (multigraph → simple graph).
// Determinism:
//   - Clone carries nextEdgeID so edge IDs stay unique on the copy.
//   - ToDirected/Flatten visit edges in ID order, so generated IDs are stable.
// Concurrency:
//   - Read locks on the source only; the copy is private until returned.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// both adjacency indexes. Metadata and Attrs maps are shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := emptyLike(g, g.directed, g.allowMulti)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		addAdjacency(clone, &ne)
	}

	return clone
}

// ToDirected returns a directed deep copy. Every undirected edge {u,v} becomes
// the two arcs u→v and v→u with the same weight; directed graphs are cloned.
// Complexity: O(V + E log E).
func (g *Graph) ToDirected() *Graph {
	if g.Directed() {
		return g.Clone()
	}

	edges := g.Edges()

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := emptyLike(g, true, g.allowMulti)
	for _, e := range edges {
		insertEdge(out, e.From, e.To, e.Weight, attrsOption(e))
		if e.From != e.To {
			insertEdge(out, e.To, e.From, e.Weight, attrsOption(e))
		}
	}

	return out
}

// Flatten returns a simple graph (no parallel edges) keeping, for every
// endpoint pair, only the lightest edge. Directedness and loops are preserved.
// Complexity: O(V + E log E).
func (g *Graph) Flatten() *Graph {
	edges := g.Edges()

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := emptyLike(g, g.directed, false)
	for _, e := range edges {
		if existing := out.adjacencyList[e.From][e.To]; len(existing) > 0 {
			for eid := range existing {
				if kept := out.edges[eid]; e.Weight < kept.Weight {
					kept.Weight = e.Weight
					kept.Attrs = e.Attrs
				}
			}
			continue
		}
		insertEdge(out, e.From, e.To, e.Weight, attrsOption(e))
	}

	return out
}

// emptyLike copies flags and the vertex catalog; muVert of g must be held.
func emptyLike(g *Graph, directed, multi bool) *Graph {
	opts := []GraphOption{WithDirected(directed)}
	if multi {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Origin: v.Origin, Metadata: v.Metadata}
		ensureVertexBuckets(out, id)
	}

	return out
}

func attrsOption(e *Edge) []EdgeOption {
	if e.Attrs == nil {
		return nil
	}
	return []EdgeOption{func(ne *Edge) { ne.Attrs = e.Attrs }}
}
