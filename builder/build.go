// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/disjoint/core"
)

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped; the partial graph
// is discarded.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs. Existing
// vertices are reused so constructors can share a vertex range.
func addVertices(method string, g *core.Graph, cfg config, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// link adds u→v; with mirror set, a directed graph also gets v→u with the
// same weight. Undirected graphs store a single edge either way.
func link(method string, g *core.Graph, cfg config, u, v string, mirror bool) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if mirror && g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

// Path builds P_n: 0→1→…→n-1 (n ≥ 2). Directed graphs get forward arcs only.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Path: n=%d < 2: %w", n, ErrTooFewVertices)
		}
		ids, err := addVertices("Path", g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link("Path", g, cfg, ids[i], ids[i+1], false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: i→(i+1) mod n (n ≥ 3). Directed graphs get a one-way
// ring.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewVertices)
		}
		ids, err := addVertices("Cycle", g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link("Cycle", g, cfg, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a ring C_{n-1} plus hub CenterID joined to every rim
// vertex (n ≥ 4). Spokes run both ways in directed graphs.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 4 {
			return fmt.Errorf("Wheel: n=%d < 4: %w", n, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("Wheel: rim: %w", err)
		}
		if err := g.AddVertex(CenterID); err != nil {
			return fmt.Errorf("Wheel: AddVertex(%s): %w", CenterID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := link("Wheel", g, cfg, CenterID, cfg.idFn(i), true); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1), both directions in directed graphs.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		ids, err := addVertices("Complete", g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link("Complete", g, cfg, ids[i], ids[j], true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbour grid with IDs "r,c" in row-major
// order, both directions in directed graphs. The ID scheme option is not
// used.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: rows=%d cols=%d: %w", rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("Grid: AddVertex(%s): %w", id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link("Grid", g, cfg, GridID(r, c), GridID(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link("Grid", g, cfg, GridID(r, c), GridID(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridID is the vertex ID of cell (r, c) in Grid.
func GridID(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

// RandomSparse samples each admissible edge independently with probability
// p: ordered pairs i≠j for directed graphs, i<j for undirected ones. Trials
// run in (i, j) order and each kept edge draws its weight right after its
// trial. Requires an RNG unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		ids, err := addVertices("RandomSparse", g, cfg, n)
		if err != nil {
			return err
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			j := 0
			if !directed {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err := link("RandomSparse", g, cfg, ids[i], ids[j], false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func trial(cfg config, p float64) bool {
	switch {
	case p == 0:
		return false
	case p == 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
