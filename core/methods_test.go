// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disjoint/core"
)

// TestGraph_AddRemoveVertex checks the vertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))

	// Duplicate insert is a no-op.
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex("Z"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	require.False(t, g.HasVertex("A"))
}

// TestGraph_RemoveVertexDropsIncidentEdges checks that both indexes forget the vertex.
func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 3)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex("B"))
	require.Equal(t, 1, g.EdgeCount())

	succ, err := g.SuccessorIDs("A")
	require.NoError(t, err)
	require.Empty(t, succ)
	pred, err := g.PredecessorIDs("C")
	require.NoError(t, err)
	require.Empty(t, pred)
}

// TestGraph_AddEdgePolicies checks loop and multi-edge enforcement.
func TestGraph_AddEdgePolicies(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "A", 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge("A", "B", 1.5)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)
	_, err = g.AddEdge("A", "B", 2)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	require.False(t, g.HasParallelEdges())

	multi := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, err = multi.AddEdge("A", "B", 3)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "A", 1)
	require.NoError(t, err)
	require.True(t, multi.HasParallelEdges())

	w, err := multi.Weight("A", "B")
	require.NoError(t, err)
	require.Equal(t, 1.0, w, "Weight reports the lightest parallel arc")
}

// TestGraph_PutAndRemoveEdge checks upsert and removal semantics.
func TestGraph_PutAndRemoveEdge(t *testing.T) {
	g := core.NewGraph()

	replaced, err := g.PutEdge("A", "B", 4)
	require.NoError(t, err)
	require.False(t, replaced)

	replaced, err = g.PutEdge("A", "B", 7)
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, 1, g.EdgeCount())

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	require.Equal(t, 7.0, w)

	require.ErrorIs(t, g.RemoveEdge("B", "A"), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge("A", "B"))
	require.False(t, g.HasEdge("A", "B"))
	require.True(t, g.HasVertex("A"), "removing an edge keeps its endpoints")

	_, err = g.Edge("A", "B")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.ErrorIs(t, g.RemoveEdgeID("e99"), core.ErrEdgeNotFound)
}

// TestGraph_UndirectedMirror checks that undirected edges are visible from both ends.
func TestGraph_UndirectedMirror(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))

	in, out, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, out)

	require.NoError(t, g.RemoveEdge("B", "A"))
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "B"))
}

// TestGraph_OrderingAnchors locks sorted iteration of Vertices, Edges and OutArcs.
func TestGraph_OrderingAnchors(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge("S", string(rune('a'+i)), float64(i))
		require.NoError(t, err)
	}
	_, err := g.AddEdge("b", "S", 1)
	require.NoError(t, err)

	vs := g.Vertices()
	require.Equal(t, "S", vs[0])
	require.Equal(t, "a", vs[1])

	edges := g.Edges()
	require.Len(t, edges, 12)
	require.Equal(t, "e1", edges[0].ID)
	require.Equal(t, "e2", edges[1].ID)
	require.Equal(t, "e10", edges[9].ID, "numeric-aware edge order")

	arcs, err := g.OutArcs("S")
	require.NoError(t, err)
	require.Len(t, arcs, 11)
	for i := 1; i < len(arcs); i++ {
		require.Less(t, arcs[i-1].To, arcs[i].To)
	}

	_, err = g.OutArcs("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	in, out, err := g.Degree("b")
	require.NoError(t, err)
	require.Equal(t, 1, in)
	require.Equal(t, 1, out)
}

// TestGraph_NegativeEdge checks the negative-weight scan used by input validation.
func TestGraph_NegativeEdge(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, ok := g.NegativeEdge()
	require.False(t, ok)

	_, err = g.AddEdge("B", "C", -2)
	require.NoError(t, err)
	e, ok := g.NegativeEdge()
	require.True(t, ok)
	require.Equal(t, "B", e.From)
	require.Equal(t, -2.0, e.Weight)
}

// TestGraph_EdgeAttrs checks that caller attributes never touch the weight.
func TestGraph_EdgeAttrs(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 3, core.WithEdgeAttr("weight", "label"))
	require.NoError(t, err)

	e, err := g.Edge("A", "B")
	require.NoError(t, err)
	require.Equal(t, 3.0, e.Weight)
	require.Equal(t, "label", e.Attrs["weight"])
}
