// SPDX-License-Identifier: MIT

package disjoint

import (
	"fmt"

	"github.com/katalvlaran/disjoint/core"
)

// residual is the private working copy of one query: arcs consumed by a path
// are reversed with a negated weight, node-split twins replace split vertices.
type residual struct {
	orig  *core.Graph // caller's graph, read only
	g     *core.Graph // directed working copy
	mode  Mode
	src   string
	dst   string
	twins map[string][2]string // split vertex → {in, out}
}

func newResidual(orig *core.Graph, source, target string, mode Mode) *residual {
	return &residual{
		orig:  orig,
		g:     orig.ToDirected(),
		mode:  mode,
		src:   source,
		dst:   target,
		twins: make(map[string][2]string),
	}
}

// inSlot is the residual vertex where original arcs into v arrive.
func (r *residual) inSlot(v string) string {
	if t, ok := r.twins[v]; ok {
		return t[0]
	}
	return v
}

// outSlot is the residual vertex original arcs out of v leave from.
func (r *residual) outSlot(v string) string {
	if t, ok := r.twins[v]; ok {
		return t[1]
	}
	return v
}

// consume applies a fresh path arc u→v: the arc and any opposing arc are
// removed and the reversal v→u is installed with the negated weight. When u
// gets split first, the reversal lands on the out-twin and the twin pass-through
// is reversed too. The returned steps are in source → target order and
// tail is the vertex the backward walk continues from.
func (r *residual) consume(u, v string) (steps []arc, tail string, err error) {
	w, err := r.g.Weight(u, v)
	if err != nil {
		return nil, "", fmt.Errorf("%w: path arc %s→%s: %v", ErrCorruptChain, u, v, err)
	}
	if err = r.g.RemoveEdge(u, v); err != nil {
		return nil, "", err
	}
	if r.g.HasEdge(v, u) {
		if err = r.g.RemoveEdge(v, u); err != nil {
			return nil, "", err
		}
	}

	if r.mode == NodeDisjoint && r.shouldSplit(u) {
		in, out, err := r.g.SplitNode(u)
		if err != nil {
			return nil, "", fmt.Errorf("disjoint: split %q: %w", u, err)
		}
		r.twins[u] = [2]string{in, out}

		if err = r.g.RemoveEdge(in, out); err != nil {
			return nil, "", err
		}
		if _, err = r.g.AddEdge(out, in, 0); err != nil {
			return nil, "", err
		}
		if _, err = r.g.PutEdge(v, out, negate(w)); err != nil {
			return nil, "", err
		}

		return []arc{{from: in, to: out}, {from: out, to: v}}, in, nil
	}

	if _, err = r.g.PutEdge(v, u, negate(w)); err != nil {
		return nil, "", err
	}

	return []arc{{from: u, to: v}}, u, nil
}

// release undoes an earlier path's use of the arc v→u, which the current
// round walked backwards as u→v: the reversal u→v is removed, v→u is restored
// with its original weight, and the original u→v arc, if the caller's graph
// has one, is put back between the matching twin slots.
func (r *residual) release(u, v string) error {
	rw, err := r.g.Weight(u, v)
	if err != nil {
		return fmt.Errorf("%w: reversed arc %s→%s: %v", ErrCorruptChain, u, v, err)
	}
	if err = r.g.RemoveEdge(u, v); err != nil {
		return err
	}
	if _, err = r.g.PutEdge(v, u, negate(rw)); err != nil {
		return err
	}

	ou, ov := r.g.Origin(u), r.g.Origin(v)
	if ou == ov {
		return nil
	}
	if e, err := r.orig.Edge(ou, ov); err == nil {
		if _, err = r.g.PutEdge(r.outSlot(ou), r.inSlot(ov), e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// negate flips the sign of w; zero stays positive zero.
func negate(w float64) float64 {
	if w == 0 {
		return 0
	}
	return -w
}
