// SPDX-License-Identifier: MIT

package disjoint

import (
	"fmt"
	"sort"
)

// reconstruct walks every path head through the chains and returns the paths
// over the caller's vertex IDs. Twins collapse into their split vertex, and the
// distance is summed from the caller's original weights.
func (r *residual) reconstruct(c *chains) ([]Path, error) {
	paths := make([]Path, 0, len(c.heads))
	limit := len(c.links) + 1

	for _, head := range c.heads {
		nodes := []string{head.from}
		var dist float64
		last := head.from

		cur := head
		for steps := 0; ; steps++ {
			if steps > limit {
				return nil, fmt.Errorf("%w: path from %s does not terminate", ErrCorruptChain, head.to)
			}
			l, ok := c.links[cur]
			if !ok {
				return nil, fmt.Errorf("%w: dangling arc %s→%s", ErrCorruptChain, cur.from, cur.to)
			}

			v := r.g.Origin(cur.to)
			if v != last {
				w, err := r.orig.Weight(last, v)
				if err != nil {
					return nil, fmt.Errorf("%w: %s→%s not in graph: %v", ErrCorruptChain, last, v, err)
				}
				nodes = append(nodes, v)
				dist += w
				last = v
			}

			if l.next == "" {
				break
			}
			cur = arc{from: cur.to, to: l.next}
		}

		if last != r.dst {
			return nil, fmt.Errorf("%w: path ends at %s", ErrCorruptChain, last)
		}
		paths = append(paths, Path{Nodes: nodes, Distance: dist})
	}

	return paths, nil
}

// sortPaths orders paths by ascending distance, keeping discovery order on ties.
func sortPaths(paths []Path) {
	sort.SliceStable(paths, func(i, j int) bool { return paths[i].Distance < paths[j].Distance })
}
