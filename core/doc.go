// Package core provides the thread-safe, in-memory weighted Graph used by
// every algorithm of this module.
//
// The Graph G = (V,E) supports:
//
//   - Directed (default) vs. undirected edges (WithDirected)
//   - float64 weights in a dedicated Edge.Weight field, never aliased by
//     caller attributes (Edge.Attrs, Vertex.Metadata)
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via two nested-map indexes:
//     adjacencyList[from][to][edgeID] and incoming[to][from][edgeID]
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Node splitting (SplitNode / MergeNode) with twins that remember their
//     Origin
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error           // O(1), idempotent
//	HasVertex(id string) bool            // O(1)
//	RemoveVertex(id string) error        // O(deg(v))
//	Origin(id string) string             // twin → split vertex
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64, opts ...EdgeOption) (edgeID string, err error)
//	PutEdge(from, to string, w float64) (replaced bool, err error)
//	RemoveEdge(from, to string) error
//	RemoveEdgeID(edgeID string) error
//	HasEdge(from, to string) bool
//	Edge(from, to string) (*Edge, error) // lightest arc from→to
//
//	// Query
//	OutArcs(id string) ([]Arc, error)    // sorted by (To, EdgeID)
//	SuccessorIDs / PredecessorIDs        // unique, sorted
//	Degree(id string) (in, out int, err error)
//	Vertices() []string / Edges() []*Edge
//
//	// Transforms
//	SplitNode(id) (in, out string, err error)
//	MergeNode(id) error
//	Clone() / ToDirected() / Flatten() *Graph
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrAlreadySplit        – SplitNode on a twin
//	ErrNotSplit            – MergeNode on a vertex without twins
//	ErrSplitUndirected     – SplitNode on an undirected graph
package core
