// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, path reconstruction, MaxDistance, InfEdgeThreshold and the
// single-target ShortestPath helper.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disjoint/core"
	"github.com/katalvlaran/disjoint/dijkstra"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(false))
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource, "empty source has priority over nil graph")

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	g := core.NewGraph()
	_, err = g.AddEdge("A", "B", -5)
	require.NoError(t, err)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	var o dijkstra.Options
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&o) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&o) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality.
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	g := triangle(t)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Nil(t, prev, "prev is nil without WithReturnPath")
	require.Equal(t, 3.0, dist["C"])

	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3}, dist)
	require.Equal(t, "A", prev["B"])
	require.Equal(t, "B", prev["C"])
}

func TestDijkstra_DirectedFractional(t *testing.T) {
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 2.5}, {"A", "C", 1}, {"C", "B", 0.5},
		{"B", "D", 3}, {"C", "D", 5}, {"D", "A", 1},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.InDelta(t, 1.5, dist["B"], 1e-12)
	require.InDelta(t, 4.5, dist["D"], 1e-12)

	// Directed: nothing leads back into C from D except through A.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("D"))
	require.NoError(t, err)
	require.InDelta(t, 2.0, dist["C"], 1e-12)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, 2.0, dist["C"])
	require.True(t, math.IsInf(dist["D"], 1))

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	require.Zero(t, dist["A"])
	require.True(t, math.IsInf(dist["B"], 1))
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 100)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 2)
	_, _ = g.AddEdge("C", "D", 50)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(50))
	require.NoError(t, err)
	require.Equal(t, 3.0, dist["B"])
	require.True(t, math.IsInf(dist["D"], 1), "weight equal to the threshold is a wall")
}

func TestDijkstra_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("A", "B", 4)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"A": 0, "B": 4}, dist)
}

// ------------------------------------------------------------------------
// 3. ShortestPath.
// ------------------------------------------------------------------------

func TestShortestPath(t *testing.T) {
	g := triangle(t)

	path, d, err := dijkstra.ShortestPath(g, "C", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B", "A"}, path)
	require.Equal(t, 3.0, d)

	path, d, err = dijkstra.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)
	require.Zero(t, d)

	require.NoError(t, g.AddVertex("Z"))
	_, _, err = dijkstra.ShortestPath(g, "A", "Z")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)

	_, _, err = dijkstra.ShortestPath(g, "A", "missing")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestShortestPath_TieBreakIsStable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("S", "y", 1)
	_, _ = g.AddEdge("S", "x", 1)
	_, _ = g.AddEdge("x", "T", 1)
	_, _ = g.AddEdge("y", "T", 1)

	for i := 0; i < 10; i++ {
		path, _, err := dijkstra.ShortestPath(g, "S", "T")
		require.NoError(t, err)
		require.Equal(t, []string{"S", "x", "T"}, path)
	}
}
