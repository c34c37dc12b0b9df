// SPDX-License-Identifier: MIT

package disjoint

import (
	"context"
	"fmt"

	"github.com/katalvlaran/disjoint/core"
	"github.com/katalvlaran/disjoint/flow"
)

// Connectivity is the largest number of disjoint paths between two vertices
// together with a bottleneck that proves it: removing the CutNodes and
// CutEdges separates source from target, and there are exactly Paths of them.
type Connectivity struct {
	Paths    int         `yaml:"paths" json:"paths"`
	CutNodes []string    `yaml:"cut_nodes,omitempty" json:"cut_nodes,omitempty"`
	CutEdges [][2]string `yaml:"cut_edges,omitempty" json:"cut_edges,omitempty"`
}

// MaxDisjoint counts the disjoint source→target paths a query could ask for,
// as a unit-capacity maximum flow. In NodeDisjoint mode every vertex other
// than the endpoints is split so it carries at most one unit.
//
// Bhandari succeeds exactly for k ≤ Paths and otherwise reports
// *InfeasibleError with Found == Paths. Validation matches Simple (k is
// ignored); weights play no part beyond being validated.
//
// Complexity: O(E·√V) for the flow.
func MaxDisjoint(ctx context.Context, g *core.Graph, source, target string, opts ...Option) (*Connectivity, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := validate(g, source, target, cfg); err != nil {
		return nil, err
	}

	network := g
	if cfg.Mode == NodeDisjoint {
		network = g.ToDirected()
		for _, id := range g.Vertices() {
			if id == source || id == target {
				continue
			}
			if _, _, err := network.SplitNode(id); err != nil {
				return nil, fmt.Errorf("disjoint: split %q: %w", id, err)
			}
		}
	}

	res, err := flow.Dinic(ctx, network, source, target, flow.WithUnitCapacity())
	if err != nil {
		return nil, fmt.Errorf("disjoint: max flow: %w", err)
	}

	c := &Connectivity{Paths: int(res.Value + 0.5)}
	for _, a := range res.Cut() {
		from, to := network.Origin(a[0]), network.Origin(a[1])
		if from == to {
			c.CutNodes = append(c.CutNodes, from)
			continue
		}
		c.CutEdges = append(c.CutEdges, [2]string{from, to})
	}
	cfg.Logger.Debug("max disjoint", "source", source, "target", target, "mode", cfg.Mode.String(), "paths", c.Paths)

	return c, nil
}
