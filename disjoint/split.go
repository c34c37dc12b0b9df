// SPDX-License-Identifier: MIT

package disjoint

// shouldSplit reports whether n must be split before a path leaves it.
//
// Source and target are never split, nor is a twin or an already split vertex.
// A vertex with a single incoming or outgoing arc cannot carry two paths, and
// neither can one with at most three distinct neighbours (successors plus
// predecessors that are not successors). Degrees come from the caller's graph.
func (r *residual) shouldSplit(n string) bool {
	if n == r.src || n == r.dst {
		return false
	}
	if _, split := r.twins[n]; split {
		return false
	}
	if r.g.Origin(n) != n || !r.orig.HasVertex(n) {
		return false
	}

	in, out, err := r.orig.Degree(n)
	if err != nil || in == 1 || out == 1 {
		return false
	}

	succ, err := r.orig.SuccessorIDs(n)
	if err != nil {
		return false
	}
	pred, err := r.orig.PredecessorIDs(n)
	if err != nil {
		return false
	}
	isSucc := make(map[string]bool, len(succ))
	for _, s := range succ {
		isSucc[s] = true
	}
	distinct := len(succ)
	for _, p := range pred {
		if !isSucc[p] {
			distinct++
		}
	}

	return distinct > 3
}
