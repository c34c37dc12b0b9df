// SPDX-License-Identifier: MIT

// Package builder generates deterministic test and benchmark topologies on
// top of core.Graph: paths, rings, wheels, complete graphs, grids and
// Erdős–Rényi random graphs.
//
// A topology is a Constructor; BuildGraph creates the graph from core
// options, resolves the builder Options and applies constructors in order,
// so several topologies can be composed into one fixture:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(false)},
//		[]builder.Option{builder.WithSeed(7), builder.WithIntWeight(1, 9)},
//		builder.Cycle(6),
//	)
//
// Determinism: the same options, seed and constructor order always give the
// same vertex IDs, the same edge emission order and the same weights.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource) wrapped with the constructor name. Option constructors
// panic on meaningless input; constructors never do.
package builder
