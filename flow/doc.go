// SPDX-License-Identifier: MIT
// Package flow computes maximum flows and minimum cuts on *core.Graph
// networks with Dinic's algorithm (BFS level graph + DFS blocking flows).
//
// Capacities default to edge weights; WithUnitCapacity turns every arc into
// a capacity-1 arc, which makes the flow value the number of arc-disjoint
// source→sink paths (Menger). Undirected edges give one arc each way.
//
// Determinism: vertices are numbered in sorted order and arcs are scanned in
// core.OutArcs order, so equal inputs always produce the same flow and cut.
//
// # Errors
//
//	ErrNilGraph        - graph is nil.
//	ErrSourceNotFound  - the source vertex is missing.
//	ErrSinkNotFound    - the sink vertex is missing.
//	ErrSameEndpoints   - source == sink.
//	EdgeError          - a negative capacity (beyond Epsilon).
//	context.Canceled / context.DeadlineExceeded - from ctx.
//
// Example:
//
//	res, err := flow.Dinic(ctx, g, "s", "t", flow.WithUnitCapacity())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Value, res.Cut())
package flow
