// SPDX-License-Identifier: MIT

package disjoint

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/disjoint/bellmanford"
)

// Error categories. Every error returned by Bhandari and Simple matches
// exactly one of them through errors.Is.
var (
	// ErrInvalidRequest reports a malformed query; nothing was computed.
	ErrInvalidRequest = errors.New("disjoint: invalid request")

	// ErrUnsupportedInput reports a graph the algorithms cannot accept.
	ErrUnsupportedInput = errors.New("disjoint: unsupported input")

	// ErrInfeasible reports that fewer than k disjoint paths exist.
	// The concrete error is *InfeasibleError.
	ErrInfeasible = errors.New("disjoint: infeasible")

	// ErrUnimplemented reports a requested variant that is not available.
	ErrUnimplemented = errors.New("disjoint: unimplemented")

	// ErrCorruptChain reports a broken internal path chain. It never
	// surfaces for valid inputs.
	ErrCorruptChain = errors.New("disjoint: corrupt path chain")
)

// Specific request and input errors, each wrapping its category.
var (
	ErrNilGraph         = fmt.Errorf("%w: graph is nil", ErrInvalidRequest)
	ErrBadK             = fmt.Errorf("%w: k must be at least 2", ErrInvalidRequest)
	ErrSameEndpoints    = fmt.Errorf("%w: source and target are the same vertex", ErrInvalidRequest)
	ErrEndpointNotFound = fmt.Errorf("%w: endpoint not found in graph", ErrInvalidRequest)
	ErrUnknownMode      = fmt.Errorf("%w: unknown disjointness mode", ErrInvalidRequest)

	ErrMultigraph     = fmt.Errorf("%w: multigraph, flatten it first", ErrUnsupportedInput)
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrUnsupportedInput)
)

// InfeasibleError is returned when only Found < K disjoint paths exist.
type InfeasibleError struct {
	Found int
	K     int
}

// Error implements error.
func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("disjoint: cannot find more than %d disjoint path(s), %d requested", e.Found, e.K)
}

// Unwrap allows errors.Is(err, ErrInfeasible).
func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }

// Mode selects what the paths must not share.
type Mode int

const (
	// EdgeDisjoint paths share no edge.
	EdgeDisjoint Mode = iota

	// NodeDisjoint paths share no vertex other than source and target.
	NodeDisjoint

	// MaximallyDisjoint would allow sharing under penalties; not implemented.
	MaximallyDisjoint
)

// String returns the lower-case mode name used by the CLI and documents.
func (m Mode) String() string {
	switch m {
	case EdgeDisjoint:
		return "edge"
	case NodeDisjoint:
		return "node"
	case MaximallyDisjoint:
		return "maximal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "edge", "":
		return EdgeDisjoint, nil
	case "node":
		return NodeDisjoint, nil
	case "maximal":
		return MaximallyDisjoint, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Options configures a disjoint-path query.
//
// K            – number of paths to find (≥ 2, default 2).
// Mode         – EdgeDisjoint (default) or NodeDisjoint.
// Sorted       – sort paths by ascending distance, stable (default true).
// EdgePenalty, NodePenalty, NodeOverEdge – maximal-disjointness knobs; any
//
//	non-zero value is rejected with ErrUnimplemented.
//
// Epsilon      – relaxation tolerance forwarded to the oracle.
// Logger       – receives per-round debug records (default discards).
type Options struct {
	K            int
	Mode         Mode
	Sorted       bool
	EdgePenalty  float64
	NodePenalty  float64
	NodeOverEdge bool
	Epsilon      float64
	Logger       *slog.Logger
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithK sets the number of disjoint paths. Validation happens at query time
// so that k < 2 surfaces as ErrBadK rather than a panic.
func WithK(k int) Option {
	return func(o *Options) { o.K = k }
}

// WithMode selects edge or node disjointness.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithSorted toggles sorting of the result by ascending distance.
func WithSorted(sorted bool) Option {
	return func(o *Options) { o.Sorted = sorted }
}

// WithEdgePenalty requests penalty-weighted edge sharing (unimplemented).
func WithEdgePenalty(p float64) Option {
	return func(o *Options) { o.EdgePenalty = p }
}

// WithNodePenalty requests penalty-weighted node sharing (unimplemented).
func WithNodePenalty(p float64) Option {
	return func(o *Options) { o.NodePenalty = p }
}

// WithNodeOverEdge requests preferring node over edge disjointness (unimplemented).
func WithNodeOverEdge() Option {
	return func(o *Options) { o.NodeOverEdge = true }
}

// WithEpsilon sets the oracle's relaxation tolerance. Negative values panic.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(bellmanford.ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithLogger routes debug records of the query to l (nil keeps the default).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns K=2, EdgeDisjoint, sorted output, the oracle's
// default epsilon and a discarding logger.
func DefaultOptions() Options {
	return Options{
		K:       2,
		Mode:    EdgeDisjoint,
		Sorted:  true,
		Epsilon: bellmanford.DefaultEpsilon,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Path is one result path over the caller's vertex IDs.
type Path struct {
	Nodes    []string `yaml:"nodes" json:"nodes"`
	Distance float64  `yaml:"distance" json:"distance"`
}

// Result holds the k disjoint paths of a query.
type Result struct {
	Paths []Path `yaml:"paths" json:"paths"`
}

// Total returns the sum of all path distances.
func (r *Result) Total() float64 {
	var sum float64
	for _, p := range r.Paths {
		sum += p.Distance
	}

	return sum
}

// Distances returns the distance of every path, in result order.
func (r *Result) Distances() []float64 {
	out := make([]float64, len(r.Paths))
	for i, p := range r.Paths {
		out[i] = p.Distance
	}

	return out
}

// NodeSequences returns the vertex sequence of every path, in result order.
func (r *Result) NodeSequences() [][]string {
	out := make([][]string, len(r.Paths))
	for i, p := range r.Paths {
		out[i] = p.Nodes
	}

	return out
}
