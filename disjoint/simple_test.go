// SPDX-License-Identifier: MIT

package disjoint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disjoint/core"
	"github.com/katalvlaran/disjoint/disjoint"
)

func TestSimple_Diamond(t *testing.T) {
	res, err := disjoint.Simple(graphOf(t, diamond), "A", "D")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, res.NodeSequences())
	require.Equal(t, []float64{2, 2}, res.Distances())
}

func TestSimple_TrapIsBlocked(t *testing.T) {
	g := graphOf(t, trap)

	_, err := disjoint.Simple(g, "s", "t")
	var inf *disjoint.InfeasibleError
	require.ErrorAs(t, err, &inf)
	require.Equal(t, 1, inf.Found)

	res, err := disjoint.Bhandari(g, "s", "t")
	require.NoError(t, err)
	require.Len(t, res.Paths, 2)
}

func TestSimple_NodeMode(t *testing.T) {
	res, err := disjoint.Simple(graphOf(t, hub), "s", "t", disjoint.WithMode(disjoint.NodeDisjoint))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"s", "h", "t"}, {"s", "c", "t"}}, res.NodeSequences())

	direct := graphOf(t, []wedge{{"s", "t", 10}, {"s", "x", 1}, {"x", "t", 1}})
	_, err = disjoint.Simple(direct, "s", "t", disjoint.WithMode(disjoint.NodeDisjoint), disjoint.WithK(3))
	var inf *disjoint.InfeasibleError
	require.ErrorAs(t, err, &inf)
	require.Equal(t, 2, inf.Found, "the direct arc is used once")
}

func TestSimple_UndirectedNodeMode(t *testing.T) {
	g := graphOf(t, diamond, core.WithDirected(false))

	res, err := disjoint.Simple(g, "A", "D", disjoint.WithMode(disjoint.NodeDisjoint))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, res.NodeSequences())
	require.Equal(t, 4, g.EdgeCount(), "caller graph untouched")
}

func TestSimple_Validation(t *testing.T) {
	g := graphOf(t, diamond)

	_, err := disjoint.Simple(g, "A", "A")
	require.ErrorIs(t, err, disjoint.ErrSameEndpoints)
	_, err = disjoint.Simple(g, "A", "D", disjoint.WithK(0))
	require.ErrorIs(t, err, disjoint.ErrInvalidRequest)
	_, err = disjoint.Simple(g, "A", "D", disjoint.WithMode(disjoint.MaximallyDisjoint))
	require.ErrorIs(t, err, disjoint.ErrUnimplemented)
}

// Whatever Simple finds is disjoint and never better than Bhandari.
func TestSimple_NeverBeatsBhandari(t *testing.T) {
	for seed := int64(300); seed < 340; seed++ {
		g := randomGraph(t, seed, 8, 0.45)
		for _, mode := range []disjoint.Mode{disjoint.EdgeDisjoint, disjoint.NodeDisjoint} {
			naive, err := disjoint.Simple(g, "n0", "n7", disjoint.WithMode(mode))
			if err != nil {
				continue
			}
			requireDisjoint(t, g, naive, mode)

			exact, err := disjoint.Bhandari(g, "n0", "n7", disjoint.WithMode(mode))
			require.NoError(t, err, "seed=%d %s", seed, mode)
			require.LessOrEqual(t, exact.Total(), naive.Total()+1e-9)
		}
	}
}
