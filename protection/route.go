// SPDX-License-Identifier: MIT

package protection

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/disjoint/floydwarshall"
)

// Mode returns the failures the table covers.
func (t *Table) Mode() Mode { return t.mode }

// Primary returns the failure-free all-pairs table.
func (t *Table) Primary() *floydwarshall.Table { return t.primary }

// Covers reports whether Route and Next accept f.
func (t *Table) Covers(f Failure) bool { return f.IsZero() || t.covered[f] }

// Len returns the number of stored detour entries.
func (t *Table) Len() int { return len(t.detours) }

// Next returns the hop router takes towards target while f is down.
//
// Lookup order: the entry for f itself, then (for an arc failure) a detour
// stored for the arc's head vertex failing, then the primary table.
func (t *Table) Next(router, target string, f Failure) (string, error) {
	if _, err := t.primary.Dist(router, target); err != nil {
		return "", fmt.Errorf("%w: %v", ErrVertexNotFound, err)
	}
	if !t.Covers(f) {
		return "", fmt.Errorf("%w: %v", ErrUnknownFailure, f)
	}
	if router == target {
		return target, nil
	}

	if !f.IsZero() {
		h, ok := t.detours[entryKey{router, f, target}]
		if !ok && !f.IsNode() {
			h, ok = t.detours[entryKey{router, NodeDown(f.To), target}]
			ok = ok && h.reachable
		}
		if ok {
			if !h.reachable {
				return "", fmt.Errorf("%w: %q→%q under %v", ErrNoDetour, router, target, f)
			}
			return h.next, nil
		}
	}

	next, ok := t.primary.Next(router, target)
	if !ok {
		return "", fmt.Errorf("%w: %q→%q", ErrUnreachable, router, target)
	}

	return next, nil
}

// Route follows the tables hop by hop from source to target while f is down.
//
// Errors:
//   - ErrVertexNotFound, ErrUnknownFailure for bad queries.
//   - ErrNoDetour if an endpoint is the failed vertex or the failure disconnects them.
//   - ErrUnreachable if no route exists even without the failure.
//   - ErrRoutingLoop, ErrCrossesFailure if the walk goes astray.
func (t *Table) Route(source, target string, f Failure) ([]string, error) {
	if f.IsNode() && (source == f.Node || target == f.Node) {
		if _, err := t.primary.Dist(source, target); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, err)
		}
		return nil, fmt.Errorf("%w: endpoint %q is down", ErrNoDetour, f.Node)
	}

	route := []string{source}
	seen := map[string]bool{source: true}
	for cur := source; cur != target; {
		next, err := t.Next(cur, target, f)
		if err != nil {
			return nil, err
		}
		if f.crosses(cur, next, t.directed) {
			return nil, fmt.Errorf("%w: %q→%q under %v", ErrCrossesFailure, cur, next, f)
		}
		if seen[next] {
			return nil, fmt.Errorf("%w: revisits %q", ErrRoutingLoop, next)
		}
		seen[next] = true
		route = append(route, next)
		cur = next
	}

	return route, nil
}

// Entries returns every stored detour ordered by failure, router and target.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.detours))
	for k, h := range t.detours {
		out = append(out, Entry{Router: k.router, Failure: k.failure, Target: k.target, Next: h.next, Reachable: h.reachable})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Failure != b.Failure {
			return failureLess(a.Failure, b.Failure)
		}
		if a.Router != b.Router {
			return a.Router < b.Router
		}
		return a.Target < b.Target
	})

	return out
}

// Failures returns every covered failure, node failures first.
func (t *Table) Failures() []Failure {
	out := make([]Failure, 0, len(t.covered))
	for f := range t.covered {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return failureLess(out[i], out[j]) })

	return out
}

func failureLess(a, b Failure) bool {
	if a.IsNode() != b.IsNode() {
		return a.IsNode()
	}
	if a.Node != b.Node {
		return a.Node < b.Node
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}
