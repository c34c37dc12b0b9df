// SPDX-License-Identifier: MIT

// Package bellmanford defines the types and configuration options of the
// single-source shortest-path oracle used on residual graphs.
//
// Unlike Dijkstra, the oracle accepts negative arc weights: the residual graph
// of the disjoint-path engine reverses consumed arcs and negates their weight.
// It is a FIFO label-correcting Bellman–Ford (each vertex queued at most once
// at a time) that fails with ErrNegativeCycle instead of looping.
//
// Complexity:
//
//	– Time:  O(V·E) worst case, typically close to O(E) on residual graphs.
//	– Space: O(V) for distance, predecessor and hop-count maps plus the queue.
//
// Options:
//
//	– Epsilon: an improvement must exceed this tolerance to count, so sums of
//	  negated float64 weights cannot trigger endless tiny relaxations.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrEmptySource    if the provided source ID is empty.
//	– ErrVertexNotFound if the source vertex does not exist in the graph.
//	– ErrNegativeCycle  if a negative cycle is reachable from the source.
//	– ErrUnreachable    (wrapped by *UnreachableError) from Result.PathTo.
//
// Example usage:
//
//	res, err := bellmanford.ShortestPaths(g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := res.PathTo("D")
package bellmanford

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Bellman–Ford oracle.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrUnreachable indicates that no path leads from the source to a target.
	ErrUnreachable = errors.New("bellmanford: target unreachable")

	// ErrBadEpsilon indicates a negative relaxation tolerance.
	ErrBadEpsilon = errors.New("bellmanford: Epsilon must be non-negative")
)

// DefaultEpsilon is the default relaxation tolerance.
const DefaultEpsilon = 1e-9

// UnreachableError reports the target that could not be reached.
type UnreachableError struct {
	Target string
}

// Error implements error.
func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnreachable, e.Target)
}

// Unwrap allows errors.Is(err, ErrUnreachable).
func (e *UnreachableError) Unwrap() error { return ErrUnreachable }

// Options configures the Bellman–Ford oracle.
//
// Epsilon – minimum improvement for a relaxation to be accepted (≥ 0).
type Options struct {
	Epsilon float64
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithEpsilon sets the relaxation tolerance. Negative values panic.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// DefaultOptions returns Options initialized with Epsilon = DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// Result holds the shortest-path tree computed from Source.
//
// Dist[v] is +Inf for unreachable vertices; Prev[v] is "" for the source and
// for unreachable vertices.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}
