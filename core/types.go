// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Arc and Graph declarations, sentinel errors, options and NewGraph.
// Concurrency:
//   - muVert guards the vertex catalog and configuration flags.
//   - muEdgeAdj guards the edge catalog and both adjacency indexes.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrAlreadySplit indicates SplitNode was called on a vertex that is itself a split twin.
	ErrAlreadySplit = errors.New("core: vertex already split")

	// ErrNotSplit indicates MergeNode was called for a vertex that has no twins.
	ErrNotSplit = errors.New("core: vertex is not split")

	// ErrSplitUndirected indicates node splitting was requested on an undirected graph.
	ErrSplitUndirected = errors.New("core: node splitting requires a directed graph")
)

// Vertex represents a node in the graph.
//
// Origin is empty for ordinary vertices. For the twins created by SplitNode it
// holds the ID of the vertex that was split, so callers can always map a twin
// back to the node it stands for.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Origin is the ID of the split vertex this twin replaces ("" if not a twin).
	Origin string

	// Metadata stores arbitrary user data. It is shared, not deep-copied, by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Weight is a dedicated field: caller attributes live in Attrs and can never
// shadow or alias the weight used by the algorithms.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight float64

	// Directed is true for one-way edges; undirected edges are traversable both ways.
	Directed bool

	// Attrs stores caller-supplied attributes. Shared, not deep-copied, by Clone.
	Attrs map[string]interface{}
}

// Arc is an edge as seen from one of its tail vertices: the head it leads to,
// its weight and the catalog edge it comes from.
type Arc struct {
	To     string
	Weight float64
	EdgeID string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges (default true).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeAttr attaches a caller attribute to the edge.
func WithEdgeAttr(key string, value interface{}) EdgeOption {
	return func(e *Edge) {
		if e.Attrs == nil {
			e.Attrs = make(map[string]interface{})
		}
		e.Attrs[key] = value
	}
}

// Graph is the in-memory weighted graph.
//
// adjacencyList[from][to][edgeID] indexes arcs by tail, incoming[to][from][edgeID]
// indexes them by head, so in-degree and predecessor queries never scan the
// whole edge catalog. Undirected edges are mirrored in both indexes.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and flags
	muEdgeAdj sync.RWMutex // guards edges, adjacencyList and incoming

	directed   bool
	allowMulti bool
	allowLoops bool

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	adjacencyList map[string]map[string]map[string]struct{}
	incoming      map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is directed, without loops and without multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:      true,
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
		incoming:      make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges of this graph are one-way.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
