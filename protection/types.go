// SPDX-License-Identifier: MIT
// Package protection precomputes per-failure detour next hops on top of the
// all-pairs routing tables of a graph.
//
// For every vertex u and every successor v of u, Precompute takes out the
// arc u→v (edge failures) or the whole vertex v (node failures), reruns a
// single-source shortest path from u, and records a detour hop for each
// destination whose primary next hop from u was v. Only hops that differ
// from the primary table are stored, plus an explicit "no detour" marker
// where the failure disconnects u from the destination.
//
// Modes:
//
//	EdgeFailures  – one table per failed arc (default).
//	NodeFailures  – one table per failed vertex.
//	EdgeThenNode  – both; arc detours that repeat the node answer are dropped
//	                and arc lookups fall back to the node detours.
//
// Errors:
//
//	ErrNilGraph, ErrMultigraph, ErrUnknownMode  – Precompute input checks.
//	ErrNegativeCycle                            – from the primary closure.
//	ErrVertexNotFound, ErrUnknownFailure        – Route/Next query checks.
//	ErrUnreachable                              – no path even without failure.
//	ErrNoDetour                                 – the failure disconnects the pair.
//	ErrRoutingLoop, ErrCrossesFailure           – the tables led astray.
//
// Example:
//
//	tbl, err := protection.Precompute(ctx, g, protection.WithMode(protection.NodeFailures))
//	if err != nil {
//	    return err
//	}
//	route, err := tbl.Route("A", "D", protection.NodeDown("B"))
package protection

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("protection: graph is nil")

	// ErrMultigraph indicates parallel edges; flatten the graph first.
	ErrMultigraph = errors.New("protection: multigraphs are not supported")

	// ErrUnknownMode indicates a Mode value outside the declared set.
	ErrUnknownMode = errors.New("protection: unknown mode")

	// ErrNegativeCycle indicates the primary closure found a negative cycle.
	ErrNegativeCycle = errors.New("protection: negative cycle")

	// ErrVertexNotFound indicates a query for a vertex outside the table.
	ErrVertexNotFound = errors.New("protection: vertex not found")

	// ErrUnknownFailure indicates a failure the table was not computed for.
	ErrUnknownFailure = errors.New("protection: failure not covered")

	// ErrUnreachable indicates the target is unreachable even without failure.
	ErrUnreachable = errors.New("protection: unreachable")

	// ErrNoDetour indicates the failure disconnects router and target.
	ErrNoDetour = errors.New("protection: no detour")

	// ErrRoutingLoop indicates a hop-by-hop walk revisited a vertex.
	ErrRoutingLoop = errors.New("protection: routing loop")

	// ErrCrossesFailure indicates a hop-by-hop walk stepped onto the failed element.
	ErrCrossesFailure = errors.New("protection: route crosses the failure")
)

// Mode selects which failures are precomputed.
type Mode int

const (
	// EdgeFailures covers the loss of every single arc.
	EdgeFailures Mode = iota
	// NodeFailures covers the loss of every vertex that has a predecessor.
	NodeFailures
	// EdgeThenNode covers both, sharing entries where the answers agree.
	EdgeThenNode
)

func (m Mode) String() string {
	switch m {
	case EdgeFailures:
		return "edge"
	case NodeFailures:
		return "node"
	case EdgeThenNode:
		return "edge-then-node"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "edge", "":
		return EdgeFailures, nil
	case "node":
		return NodeFailures, nil
	case "edge-then-node":
		return EdgeThenNode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) nodes() bool { return m == NodeFailures || m == EdgeThenNode }
func (m Mode) arcs() bool  { return m == EdgeFailures || m == EdgeThenNode }

// Failure names one failed element. The zero value means "nothing failed".
type Failure struct {
	Node string `yaml:"node,omitempty" json:"node,omitempty"`
	From string `yaml:"from,omitempty" json:"from,omitempty"`
	To   string `yaml:"to,omitempty" json:"to,omitempty"`
}

// NodeDown is the failure of vertex v.
func NodeDown(v string) Failure { return Failure{Node: v} }

// ArcDown is the failure of the arc u→v (the whole edge on undirected graphs).
func ArcDown(u, v string) Failure { return Failure{From: u, To: v} }

// IsZero reports whether f names no failure.
func (f Failure) IsZero() bool { return f == Failure{} }

// IsNode reports whether f is a vertex failure.
func (f Failure) IsNode() bool { return f.Node != "" }

func (f Failure) String() string {
	switch {
	case f.IsZero():
		return "none"
	case f.IsNode():
		return "node " + f.Node
	default:
		return "arc " + f.From + "→" + f.To
	}
}

// crosses reports whether the hop u→v uses the failed element.
func (f Failure) crosses(u, v string, directed bool) bool {
	if f.IsNode() {
		return v == f.Node
	}
	if u == f.From && v == f.To {
		return true
	}

	return !directed && u == f.To && v == f.From
}

// Entry is one stored detour: under Failure, Router forwards traffic for
// Target to Next. Reachable is false for a "no detour" marker.
type Entry struct {
	Router    string  `yaml:"router" json:"router"`
	Failure   Failure `yaml:"failure" json:"failure"`
	Target    string  `yaml:"target" json:"target"`
	Next      string  `yaml:"next,omitempty" json:"next,omitempty"`
	Reachable bool    `yaml:"reachable" json:"reachable"`
}

// Options configures Precompute.
//
// Mode    – which failures to cover (default EdgeFailures).
// Workers – failures processed concurrently (default GOMAXPROCS).
// Logger  – receives per-phase debug records (default discards).
type Options struct {
	Mode    Mode
	Workers int
	Logger  *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithMode selects the covered failures.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithWorkers bounds the worker pool.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("protection: WithWorkers(%d): need at least one worker", n))
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns EdgeFailures, GOMAXPROCS workers and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Mode:    EdgeFailures,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
