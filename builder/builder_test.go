// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disjoint/builder"
	"github.com/katalvlaran/disjoint/core"
)

var undirected = []core.GraphOption{core.WithDirected(false)}

func TestTopologies_Counts(t *testing.T) {
	tests := []struct {
		name         string
		gopts        []core.GraphOption
		ctor         builder.Constructor
		wantV, wantE int
	}{
		{"Path(4)", nil, builder.Path(4), 4, 3},
		{"Cycle(5) directed", nil, builder.Cycle(5), 5, 5},
		{"Cycle(5) undirected", undirected, builder.Cycle(5), 5, 5},
		{"Wheel(5) directed", nil, builder.Wheel(5), 5, 4 + 8},
		{"Wheel(5) undirected", undirected, builder.Wheel(5), 5, 4 + 4},
		{"Complete(4) directed", nil, builder.Complete(4), 4, 12},
		{"Complete(4) undirected", undirected, builder.Complete(4), 4, 6},
		{"Complete(1)", nil, builder.Complete(1), 1, 0},
		{"Grid(2,3) undirected", undirected, builder.Grid(2, 3), 6, 7},
		{"Grid(2,3) directed", nil, builder.Grid(2, 3), 6, 14},
		{"RandomSparse(4,1) directed", nil, builder.RandomSparse(4, 1), 4, 12},
		{"RandomSparse(4,0)", nil, builder.RandomSparse(4, 0), 4, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestTopologies_Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.Option{builder.WithIDScheme(builder.PrefixID("n"))}, builder.Cycle(3))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("n0", "n1"))
	assert.True(t, g.HasEdge("n2", "n0"))
	assert.False(t, g.HasEdge("n1", "n0"))

	g, err = builder.BuildGraph(undirected, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, g.Vertices())
	assert.True(t, g.HasEdge("1,1", "0,1"))
	assert.False(t, g.HasEdge("0,0", "1,1"))

	g, err = builder.BuildGraph(nil, nil, builder.Wheel(4))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(builder.CenterID, "2"))
	assert.True(t, g.HasEdge("2", builder.CenterID))
}

func TestBuildGraph_Composes(t *testing.T) {
	// Constructors over the same index range share vertices.
	g, err := builder.BuildGraph(undirected, nil, builder.Path(3), builder.Complete(1))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.Option
		ctor builder.Constructor
		want error
	}{
		{"path", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"cycle", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"wheel", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"complete", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"grid", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"sparse n", nil, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"sparse p", []builder.Option{builder.WithSeed(1)}, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"sparse rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, nil, builder.ErrNilConstructor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.Option{builder.WithSeed(seed), builder.WithIntWeight(1, 9)},
			builder.RandomSparse(8, 0.4))
		require.NoError(t, err)

		return g
	}

	a, b := build(11), build(11)
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, e := range a.Edges() {
		w, err := b.Weight(e.From, e.To)
		require.NoError(t, err)
		assert.Equal(t, e.Weight, w)
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
		assert.NotEqual(t, e.From, e.To)
	}
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	assert.Equal(t, 2.5, builder.ConstantWeight(2.5)(rng))
	assert.Equal(t, 4.0, builder.UniformWeight(4, 8)(nil))
	assert.Equal(t, 3.0, builder.IntWeight(3, 7)(nil))
	for i := 0; i < 100; i++ {
		u := builder.UniformWeight(4, 8)(rng)
		assert.True(t, u >= 4 && u < 8, u)
		n := builder.IntWeight(3, 7)(rng)
		assert.True(t, n >= 3 && n <= 7 && n == float64(int(n)), n)
	}

	assert.Panics(t, func() { builder.ConstantWeight(-1) })
	assert.Panics(t, func() { builder.UniformWeight(5, 4) })
	assert.Panics(t, func() { builder.IntWeight(-1, 4) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
