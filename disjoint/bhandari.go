// SPDX-License-Identifier: MIT

package disjoint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/disjoint/bellmanford"
	"github.com/katalvlaran/disjoint/core"
)

// Bhandari returns k disjoint paths from source to target of minimum total
// distance.
//
// Each round runs the Bellman–Ford oracle on a residual copy of g in which
// the arcs of earlier paths are reversed and negated. Arcs of the new path are
// either fresh (consumed and reversed) or walk an earlier path backwards; the
// latter are given back and the two paths are spliced at that point, which
// untangles interleaved paths. In NodeDisjoint mode interior vertices are split
// into in/out twins before a path leaves them.
//
// Preconditions and validation (nothing is computed on failure):
//  1. g non-nil, k ≥ 2, source ≠ target, both endpoints present (ErrInvalidRequest).
//  2. Mode is EdgeDisjoint or NodeDisjoint, no penalty options (ErrUnimplemented
//     for MaximallyDisjoint and penalties, ErrUnknownMode otherwise).
//  3. g is not a multigraph and has no negative weight (ErrUnsupportedInput).
//  4. NodeDisjoint needs a directed graph (ErrUnimplemented).
//
// Fewer than k paths yield *InfeasibleError carrying the number found.
// g is only read; concurrent queries on the same graph are safe.
//
// Complexity:
//
//   - Time:  O(k·V·E) for the oracle rounds.
//   - Space: O(V + E) for the residual graph plus O(k·L) for the chains.
func Bhandari(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	cfg, err := prepare(g, source, target, opts)
	if err != nil {
		return nil, err
	}
	if cfg.Mode == NodeDisjoint && !g.Directed() {
		return nil, fmt.Errorf("%w: node-disjoint paths on an undirected graph", ErrUnimplemented)
	}

	log := cfg.Logger.With("algorithm", "bhandari", "source", source, "target", target, "k", cfg.K, "mode", cfg.Mode.String())
	r := newResidual(g, source, target, cfg.Mode)
	c := newChains()

	for i := 0; i < cfg.K; i++ {
		if err = r.round(c, cfg); err != nil {
			if errors.Is(err, bellmanford.ErrUnreachable) {
				log.Debug("target unreachable", "found", i)
				return nil, &InfeasibleError{Found: i, K: cfg.K}
			}
			return nil, fmt.Errorf("disjoint: round %d: %w", i+1, err)
		}
		log.Debug("round complete", "round", i+1, "arcs", len(c.links), "splits", len(r.twins))
	}

	paths, err := r.reconstruct(c)
	if err != nil {
		return nil, err
	}
	if cfg.Sorted {
		sortPaths(paths)
	}

	return &Result{Paths: paths}, nil
}

// round finds one shortest residual path and merges it into the chains.
func (r *residual) round(c *chains, cfg Options) error {
	res, err := bellmanford.ShortestPaths(r.g, r.src, bellmanford.WithEpsilon(cfg.Epsilon))
	if err != nil {
		return err
	}
	path, err := res.PathTo(r.dst)
	if err != nil {
		return err
	}

	// Walk target → source; steps are collected backwards.
	var back []step
	v := r.dst
	for j := len(path) - 2; j >= 0; j-- {
		u := path[j]

		owned := arc{from: v, to: u}
		if old, ok := c.links[owned]; ok {
			delete(c.links, owned)
			if err = r.release(u, v); err != nil {
				return err
			}
			back = append(back, step{a: owned, cancel: true, old: old})
			v = u
			continue
		}

		arcs, tail, err := r.consume(u, v)
		if err != nil {
			return err
		}
		for k := len(arcs) - 1; k >= 0; k-- {
			back = append(back, step{a: arcs[k]})
		}
		v = tail
	}

	steps := make([]step, len(back))
	for i, s := range back {
		steps[len(back)-1-i] = s
	}
	c.splice(steps)

	return nil
}

// prepare applies opts and validates a query; g is never mutated.
func prepare(g *core.Graph, source, target string, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return cfg, ErrNilGraph
	}
	if cfg.K < 2 {
		return cfg, fmt.Errorf("%w: k=%d", ErrBadK, cfg.K)
	}

	return cfg, validate(g, source, target, cfg)
}

// validate checks everything about a query except k.
func validate(g *core.Graph, source, target string, cfg Options) error {
	if source == target {
		return fmt.Errorf("%w: %q", ErrSameEndpoints, source)
	}
	switch cfg.Mode {
	case EdgeDisjoint, NodeDisjoint:
	case MaximallyDisjoint:
		return fmt.Errorf("%w: maximally disjoint paths", ErrUnimplemented)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, cfg.Mode)
	}
	if cfg.EdgePenalty != 0 || cfg.NodePenalty != 0 || cfg.NodeOverEdge {
		return fmt.Errorf("%w: penalty-weighted disjointness", ErrUnimplemented)
	}
	for _, id := range []string{source, target} {
		if !g.HasVertex(id) {
			return fmt.Errorf("%w: %q", ErrEndpointNotFound, id)
		}
	}
	if g.Multigraph() || g.HasParallelEdges() {
		return ErrMultigraph
	}
	if e, ok := g.NegativeEdge(); ok {
		return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	return nil
}
