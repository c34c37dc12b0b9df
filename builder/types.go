// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/disjoint/core"
)

var (
	// ErrTooFewVertices is returned when a size parameter is below the
	// minimum of the requested topology.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability is returned for an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource is returned by stochastic constructors when no RNG
	// was configured with WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrNilConstructor is returned by BuildGraph for a nil Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// CenterID is the fixed hub vertex of Wheel.
const CenterID = "Center"

// DefaultEdgeWeight is used when no weight function is configured.
const DefaultEdgeWeight float64 = 1

// IDFn maps a zero-based vertex index to its ID. It must be pure.
type IDFn func(idx int) string

// DecimalID is the default scheme: 0→"0", 1→"1", ...
func DecimalID(idx int) string { return strconv.Itoa(idx) }

// PrefixID returns a scheme producing prefix+index, e.g. "n0", "n1".
func PrefixID(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WeightFn draws one edge weight. rng is nil unless WithSeed or WithRand
// was given; implementations must then return a fixed value.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeight always yields w. Panics if w is negative.
func ConstantWeight(w float64) WeightFn {
	if w < 0 {
		panic(fmt.Sprintf("builder: ConstantWeight(%g) is negative", w))
	}

	return func(*rand.Rand) float64 { return w }
}

// UniformWeight samples uniformly in [lo, hi). Without an RNG it yields lo.
// Panics unless 0 ≤ lo ≤ hi.
func UniformWeight(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: UniformWeight requires 0 ≤ lo ≤ hi, got %g, %g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IntWeight samples an integer uniformly in [lo, hi]. Without an RNG it
// yields lo. Panics unless 0 ≤ lo ≤ hi.
func IntWeight(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: IntWeight requires 0 ≤ lo ≤ hi, got %d, %d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// Option customizes a build.
type Option func(*config)

type config struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

func newConfig(opts ...Option) config {
	cfg := config{idFn: DecimalID, weightFn: ConstantWeight(DefaultEdgeWeight)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c config) weight() float64 { return c.weightFn(c.rng) }

// WithIDScheme sets the vertex ID scheme. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed uses a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithConstantWeight is WithWeightFn(ConstantWeight(w)).
func WithConstantWeight(w float64) Option { return WithWeightFn(ConstantWeight(w)) }

// WithUniformWeight is WithWeightFn(UniformWeight(lo, hi)).
func WithUniformWeight(lo, hi float64) Option { return WithWeightFn(UniformWeight(lo, hi)) }

// WithIntWeight is WithWeightFn(IntWeight(lo, hi)).
func WithIntWeight(lo, hi int) Option { return WithWeightFn(IntWeight(lo, hi)) }

// Constructor adds one topology to g. Constructors validate their
// parameters before touching g and never panic.
type Constructor func(g *core.Graph, cfg config) error
