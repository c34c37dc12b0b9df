// SPDX-License-Identifier: MIT

package disjoint_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/disjoint/core"
	"github.com/katalvlaran/disjoint/disjoint"
)

// ExampleBhandari untangles the trap graph: the shortest path s→a→b→t would
// block a second path, the optimal pair avoids a→b altogether.
func ExampleBhandari() {
	g := core.NewGraph()
	_, _ = g.AddEdge("s", "a", 1)
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "t", 1)
	_, _ = g.AddEdge("s", "b", 2.5)
	_, _ = g.AddEdge("a", "t", 2.5)

	res, err := disjoint.Bhandari(g, "s", "t", disjoint.WithK(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Paths {
		fmt.Println(p.Nodes, p.Distance)
	}

	_, err = disjoint.Bhandari(g, "s", "t", disjoint.WithK(3))
	var inf *disjoint.InfeasibleError
	if errors.As(err, &inf) {
		fmt.Println("found only", inf.Found)
	}

	// Output:
	// [s a t] 3.5
	// [s b t] 3.5
	// found only 2
}

// ExampleBhandari_nodeDisjoint forbids the shared hub h.
func ExampleBhandari_nodeDisjoint() {
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"s", "h", 1}, {"h", "t", 1}, {"s", "a", 1}, {"a", "h", 1},
		{"h", "b", 1}, {"b", "t", 1}, {"s", "c", 5}, {"c", "t", 5},
	} {
		_, _ = g.AddEdge(e.u, e.v, e.w)
	}

	res, _ := disjoint.Bhandari(g, "s", "t", disjoint.WithMode(disjoint.NodeDisjoint))
	fmt.Println(res.NodeSequences(), res.Total())

	// Output:
	// [[s h t] [s c t]] 12
}
