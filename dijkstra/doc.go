// Package dijkstra implements Dijkstra's shortest-path algorithm on graphs with
// non-negative float64 weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, expanding the next-closest
//     vertex from a min-heap.
//   - It is the oracle of the delete-and-retry disjoint-path heuristic, where
//     every graph it sees is a pruned copy of a validated, non-negative input.
//   - Residual graphs of the augmenting engine carry negative arcs; those go
//     through package bellmanford instead.
//
// Key features:
//
//   - ReturnPath: return the predecessor map, so each path can be rebuilt.
//   - MaxDistance: stop exploring beyond a distance cap.
//   - InfEdgeThreshold: arcs with weight ≥ threshold are impassable.
//   - ShortestPath: single-target convenience returning the vertex sequence.
//
// Determinism:
//
//   - Arcs are relaxed in core.OutArcs order and heap ties are broken by vertex
//     ID, so equal-length alternatives always resolve the same way.
//
// Errors:
//
//	ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight,
//	ErrUnreachable, ErrBadMaxDistance, ErrBadInfThreshold.
package dijkstra
