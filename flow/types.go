// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/disjoint/core"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = errors.New("flow: source equals sink")
)

// EdgeError is returned when an arc has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// CapacityFunc maps the arc from→a.To to its capacity.
type CapacityFunc func(from string, a core.Arc) float64

// Options configures Dinic.
//   - Epsilon: capacities ≤ Epsilon are treated as zero (default 1e-9).
//   - Capacity: arc capacity (default: the arc weight).
type Options struct {
	Epsilon  float64
	Capacity CapacityFunc
}

// Option configures Options.
type Option func(*Options)

// WithEpsilon sets the zero threshold.
// Panics if eps is negative.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic(fmt.Sprintf("flow: WithEpsilon(%g): must be non-negative", eps))
	}

	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithCapacity replaces the weight-as-capacity rule.
func WithCapacity(fn CapacityFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Capacity = fn
		}
	}
}

// WithUnitCapacity gives every arc capacity 1.
func WithUnitCapacity() Option {
	return WithCapacity(func(string, core.Arc) float64 { return 1 })
}

// DefaultOptions returns Epsilon=1e-9 and weight capacities.
func DefaultOptions() Options {
	return Options{
		Epsilon:  1e-9,
		Capacity: func(_ string, a core.Arc) float64 { return a.Weight },
	}
}
