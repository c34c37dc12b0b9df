// SPDX-License-Identifier: MIT

// Package disjoint finds k mutually disjoint shortest paths between two
// vertices of a weighted graph.
//
// Bhandari is the exact algorithm: k rounds of Bellman–Ford on a residual
// graph whose used arcs are reversed and negated, with interleaved paths
// spliced apart, so the k paths have minimum total distance. Simple is the
// naive delete-and-retry heuristic, kept for comparison and as a fallback.
//
// Modes:
//
//	EdgeDisjoint  – paths share no edge (directed or undirected graphs).
//	NodeDisjoint  – paths share no interior vertex; implemented by splitting
//	                vertices into in/out twins (directed graphs only).
//	MaximallyDisjoint and the penalty options are rejected as unimplemented.
//
// Errors fall into four categories, matched with errors.Is:
//
//	ErrInvalidRequest   – nil graph, k < 2, source == target, unknown endpoint or mode.
//	ErrUnsupportedInput – multigraph (see core.Graph.Flatten) or negative weight.
//	ErrInfeasible       – fewer than k paths exist; *InfeasibleError.Found has the count.
//	ErrUnimplemented    – maximal/penalty disjointness, undirected node mode.
//
// Example:
//
//	res, err := disjoint.Bhandari(g, "A", "D", disjoint.WithK(2))
//	var inf *disjoint.InfeasibleError
//	if errors.As(err, &inf) {
//	    fmt.Println("only", inf.Found, "disjoint paths")
//	}
//	for _, p := range res.Paths {
//	    fmt.Println(p.Nodes, p.Distance)
//	}
package disjoint
