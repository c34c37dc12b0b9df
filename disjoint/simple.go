// SPDX-License-Identifier: MIT

package disjoint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/disjoint/core"
	"github.com/katalvlaran/disjoint/dijkstra"
)

// Simple finds k disjoint paths by repeating "take a shortest path, delete it".
//
// In EdgeDisjoint mode the arcs of each path are removed from a private copy
// of g, in NodeDisjoint mode its interior vertices (a direct source→target arc
// is removed instead, so it cannot be taken twice). There is no optimality
// guarantee and it may report *InfeasibleError where Bhandari succeeds: an
// early shortest path can block every remaining route.
//
// Validation is identical to Bhandari's, except that NodeDisjoint is also
// accepted on undirected graphs.
//
// Complexity: O(k·(V + E) log V).
func Simple(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	cfg, err := prepare(g, source, target, opts)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger.With("algorithm", "simple", "source", source, "target", target, "k", cfg.K, "mode", cfg.Mode.String())
	work := g.Clone()
	paths := make([]Path, 0, cfg.K)

	for i := 0; i < cfg.K; i++ {
		nodes, d, err := dijkstra.ShortestPath(work, source, target)
		if errors.Is(err, dijkstra.ErrUnreachable) {
			log.Debug("target unreachable", "found", i)
			return nil, &InfeasibleError{Found: i, K: cfg.K}
		}
		if err != nil {
			return nil, fmt.Errorf("disjoint: round %d: %w", i+1, err)
		}
		paths = append(paths, Path{Nodes: nodes, Distance: d})

		if err = prune(work, nodes, cfg.Mode); err != nil {
			return nil, fmt.Errorf("disjoint: round %d: %w", i+1, err)
		}
		log.Debug("round complete", "round", i+1, "distance", d)
	}

	if cfg.Sorted {
		sortPaths(paths)
	}

	return &Result{Paths: paths}, nil
}

// prune deletes a found path from work.
func prune(work *core.Graph, nodes []string, mode Mode) error {
	if mode == NodeDisjoint && len(nodes) > 2 {
		for _, v := range nodes[1 : len(nodes)-1] {
			if err := work.RemoveVertex(v); err != nil {
				return err
			}
		}
		return nil
	}
	for i := 0; i+1 < len(nodes); i++ {
		if err := work.RemoveEdge(nodes[i], nodes[i+1]); err != nil {
			return err
		}
	}

	return nil
}
