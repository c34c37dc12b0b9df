// SPDX-License-Identifier: MIT

package protection

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/disjoint/bellmanford"
	"github.com/katalvlaran/disjoint/core"
	"github.com/katalvlaran/disjoint/floydwarshall"
)

// entryKey addresses one detour: router, failure and destination.
type entryKey struct {
	router  string
	failure Failure
	target  string
}

// hop is the stored answer of one entryKey.
type hop struct {
	next      string
	reachable bool
}

// Table is the primary routing table plus the detours of every covered failure.
// A Table is immutable once built and safe for concurrent queries.
type Table struct {
	mode     Mode
	directed bool
	primary  *floydwarshall.Table
	detours  map[entryKey]hop
	covered  map[Failure]bool
}

// job is one failure seen from the router adjacent to it.
type job struct {
	router  string
	failure Failure
}

// Precompute builds the protection table of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Mode must be known (ErrUnknownMode).
//  3. g must not be a multigraph (ErrMultigraph).
//  4. The primary closure must succeed (ErrNegativeCycle).
//
// Every failure is evaluated on a private clone of g, so the caller's graph
// is only read. Failures run on a bounded worker pool and their entries are
// merged in (router, successor) order; where two routers' detours write the
// same node-failure entry, the later router wins.
//
// Cancellation: ctx is checked before each failure; the first error stops
// the pool and is returned.
//
// Complexity: O(V³) for the closure plus O(E·V·E) for the failures.
func Precompute(ctx context.Context, g *core.Graph, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.Mode.nodes() && !cfg.Mode.arcs() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, cfg.Mode)
	}
	if g.Multigraph() || g.HasParallelEdges() {
		return nil, ErrMultigraph
	}

	primary, err := floydwarshall.AllPairs(g)
	if err != nil {
		if errors.Is(err, floydwarshall.ErrNegativeCycle) {
			return nil, fmt.Errorf("%w: %v", ErrNegativeCycle, err)
		}
		return nil, err
	}

	t := &Table{
		mode:     cfg.Mode,
		directed: g.Directed(),
		primary:  primary,
		detours:  make(map[entryKey]hop),
		covered:  make(map[Failure]bool),
	}
	log := cfg.Logger.With("mode", cfg.Mode.String(), "vertices", g.VertexCount())

	var adjacent []job
	for _, u := range g.Vertices() {
		succ, err := g.SuccessorIDs(u)
		if err != nil {
			return nil, err
		}
		for _, v := range succ {
			if v != u {
				adjacent = append(adjacent, job{router: u, failure: ArcDown(u, v)})
			}
		}
	}

	p := &precompute{g: g, primary: primary, workers: cfg.Workers}

	if cfg.Mode.nodes() {
		jobs := make([]job, len(adjacent))
		for i, j := range adjacent {
			jobs[i] = job{router: j.router, failure: NodeDown(j.failure.To)}
		}
		results, err := p.run(ctx, jobs)
		if err != nil {
			return nil, err
		}
		n := t.mergeNodes(jobs, results)
		log.Debug("node failures complete", "failures", len(jobs), "entries", n)
	}

	if cfg.Mode.arcs() {
		results, err := p.run(ctx, adjacent)
		if err != nil {
			return nil, err
		}
		n := t.mergeArcs(adjacent, results)
		log.Debug("arc failures complete", "failures", len(adjacent), "entries", n)
	}

	return t, nil
}

// precompute carries the read-only inputs shared by the workers.
type precompute struct {
	g       *core.Graph
	primary *floydwarshall.Table
	workers int
}

// run evaluates every job on the worker pool; results[i] belongs to jobs[i].
func (p *precompute) run(ctx context.Context, jobs []job) ([][]Entry, error) {
	results := make([][]Entry, len(jobs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers)
	for i, j := range jobs {
		i, j := i, j
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			entries, err := p.detours(j)
			if err != nil {
				return fmt.Errorf("protection: %v at %q: %w", j.failure, j.router, err)
			}
			results[i] = entries

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// detours reruns the shortest-path tree of j.router without the failed
// element and walks it back from every affected destination.
func (p *precompute) detours(j job) ([]Entry, error) {
	u := j.router
	v := j.failure.To
	if j.failure.IsNode() {
		v = j.failure.Node
	}

	var affected []string
	for _, n := range p.primary.Vertices() {
		if n == u {
			continue
		}
		if next, ok := p.primary.Next(u, n); ok && next == v {
			affected = append(affected, n)
		}
	}
	if len(affected) == 0 {
		return nil, nil
	}

	h := p.g.Clone()
	var err error
	if j.failure.IsNode() {
		err = h.RemoveVertex(v)
	} else {
		err = h.RemoveEdge(u, v)
	}
	if err != nil {
		return nil, err
	}

	tree, err := bellmanford.ShortestPaths(h, u)
	if err != nil {
		return nil, err
	}

	var out []Entry
	for _, n := range affected {
		d, ok := tree.Dist[n]
		if !ok || math.IsInf(d, 1) {
			out = append(out, Entry{Router: u, Failure: j.failure, Target: n})
			continue
		}
		for next := n; next != u; {
			prev := tree.Prev[next]
			if hop, ok := p.primary.Next(prev, n); !ok || hop != next {
				out = append(out, Entry{Router: prev, Failure: j.failure, Target: n, Next: next, Reachable: true})
			}
			next = prev
		}
	}

	return out, nil
}

// mergeNodes stores node-failure entries in job order and returns how many
// entries were written.
func (t *Table) mergeNodes(jobs []job, results [][]Entry) int {
	n := 0
	for i, j := range jobs {
		i, j := i, j
		t.covered[j.failure] = true
		for _, e := range results[i] {
			t.detours[entryKey{e.Router, e.Failure, e.Target}] = hop{e.Next, e.Reachable}
			n++
		}
	}

	return n
}

// mergeArcs stores arc-failure entries, skipping detours the node entries of
// the arc's head already answer identically. Markers are always kept.
func (t *Table) mergeArcs(jobs []job, results [][]Entry) int {
	n := 0
	for i, j := range jobs {
		i, j := i, j
		t.covered[j.failure] = true
		shadow := NodeDown(j.failure.To)
		for _, e := range results[i] {
			if t.mode == EdgeThenNode && e.Reachable {
				if h, ok := t.detours[entryKey{e.Router, shadow, e.Target}]; ok && h.reachable && h.next == e.Next {
					continue
				}
			}
			t.detours[entryKey{e.Router, e.Failure, e.Target}] = hop{e.Next, e.Reachable}
			n++
		}
	}

	return n
}
