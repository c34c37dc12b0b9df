// SPDX-License-Identifier: MIT

package disjoint

// arc is a directed residual arc (from → to), used as the key of a chain link.
type arc struct {
	from, to string
}

// link connects a path arc to its neighbours on the same path:
// prev is the vertex before arc.from, next the vertex after arc.to
// ("" at the source and at the target).
type link struct {
	prev, next string
}

// chains is the arena of all path arcs found so far, keyed by arc.
// Its key set always equals the set of reversed arcs of the residual graph.
type chains struct {
	links map[arc]link
	heads []arc // first arc of every path, in discovery order
}

func newChains() *chains {
	return &chains{links: make(map[arc]link)}
}

// owns reports whether some path currently uses a.
func (c *chains) owns(a arc) bool {
	_, ok := c.links[a]
	return ok
}

// step is one classified arc of a round's path, in source → target order.
// For a fresh step, a is the new path arc. For a cancelling step, a is the
// earlier path's arc the round walked backwards over and old is its link.
type step struct {
	a      arc
	cancel bool
	old    link
}

// splice merges a round's classified steps into the chains.
//
// pending is the path arc entering the current vertex of the new path. A
// fresh arc is appended behind it. A cancelled arc (y,x), walked as x→y,
// reroutes pending onto the earlier path's continuation after x, and the
// earlier path's arc entering y becomes the new pending arc, so the rest of
// the round continues that path. Consecutive cancellations of the same earlier
// path leave pending pointing at an already-removed arc, which is then skipped.
func (c *chains) splice(steps []step) {
	var pending arc
	hasPending := false

	for _, s := range steps {
		if !s.cancel {
			l := link{}
			if hasPending {
				pl := c.links[pending]
				pl.next = s.a.to
				c.links[pending] = pl
				l.prev = pending.from
			} else {
				c.heads = append(c.heads, s.a)
			}
			c.links[s.a] = l
			pending, hasPending = s.a, true
			continue
		}

		// s.a = (y, x); the new path went x → y.
		y, x := s.a.from, s.a.to
		if pending != s.a {
			pl := c.links[pending]
			pl.next = s.old.next
			c.links[pending] = pl
			if s.old.next != "" {
				after := arc{from: x, to: s.old.next}
				al := c.links[after]
				al.prev = pending.from
				c.links[after] = al
			}
		}
		pending, hasPending = arc{from: s.old.prev, to: y}, true
	}
}
