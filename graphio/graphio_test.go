// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disjoint/disjoint"
	"github.com/katalvlaran/disjoint/graphio"
)

const diamondDoc = `
edges:
  - {from: A, to: B}
  - {from: B, to: D}
  - {from: A, to: C, weight: 1}
  - {from: C, to: D, weight: 1, attrs: {label: south}}
vertices: [E]
`

func TestDecodeGraph(t *testing.T) {
	g, err := graphio.DecodeGraph(strings.NewReader(diamondDoc))
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, graphio.DefaultWeight, w)

	e, err := g.Edge("C", "D")
	require.NoError(t, err)
	assert.Equal(t, "south", e.Attrs["label"])
}

func TestDecodeGraph_Undirected(t *testing.T) {
	g, err := graphio.DecodeGraph(strings.NewReader("directed: false\nedges: [{from: A, to: B, weight: 2}]\n"))
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.True(t, g.HasEdge("B", "A"))
}

func TestDecodeGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"unknown field", "edges: []\nweighted: true\n"},
		{"empty endpoint", "edges: [{from: A, to: ''}]\n"},
		{"parallel without multigraph", "edges: [{from: A, to: B}, {from: A, to: B}]\n"},
		{"loop without loops", "edges: [{from: A, to: A}]\n"},
		{"not yaml", "edges: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.DecodeGraph(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, graphio.ErrBadDocument)
		})
	}

	g, err := graphio.DecodeGraph(strings.NewReader("multigraph: true\nedges: [{from: A, to: B}, {from: A, to: B, weight: 3}]\n"))
	require.NoError(t, err)
	assert.True(t, g.HasParallelEdges())
}

func TestEncodeGraph_ReadsBack(t *testing.T) {
	g, err := graphio.DecodeGraph(strings.NewReader(diamondDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.EncodeGraph(&buf, g))
	assert.Contains(t, buf.String(), "directed: true")

	back, err := graphio.DecodeGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, graphio.FromGraph(g), graphio.FromGraph(back))
}

func TestReadGraphFile(t *testing.T) {
	_, err := graphio.ReadGraphFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBatch_InlineGraph(t *testing.T) {
	doc := `
graph:
  edges:
    - {from: A, to: B}
    - {from: B, to: D}
    - {from: A, to: C}
    - {from: C, to: D}
queries:
  - {name: pair, source: A, target: D}
  - {name: three, source: A, target: D, k: 3, algorithm: simple}
`
	b, err := graphio.DecodeBatch(strings.NewReader(doc), "")
	require.NoError(t, err)
	g, err := b.LoadGraph()
	require.NoError(t, err)
	require.Len(t, b.Queries, 2)

	res, err := b.Queries[0].Solve(g)
	require.NoError(t, err)
	a := graphio.NewAnswer(b.Queries[0], res, err)
	assert.Equal(t, "edge", a.Mode)
	assert.Equal(t, graphio.AlgorithmBhandari, a.Algorithm)
	assert.Equal(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, res.NodeSequences())
	assert.Equal(t, 4.0, a.Total)
	assert.Nil(t, a.Found)

	res, err = b.Queries[1].Solve(g)
	require.ErrorIs(t, err, disjoint.ErrInfeasible)
	a = graphio.NewAnswer(b.Queries[1], res, err)
	require.NotNil(t, a.Found)
	assert.Equal(t, 2, *a.Found)
	assert.NotEmpty(t, a.Error)
	assert.Empty(t, a.Paths)
}

func TestBatch_GraphFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "net.yaml"), []byte(diamondDoc), 0o600))
	batch := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(batch, []byte("graph_file: net.yaml\nqueries: [{source: A, target: D, mode: node}]\n"), 0o600))

	b, err := graphio.ReadBatchFile(batch)
	require.NoError(t, err)
	g, err := b.LoadGraph()
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())

	opts, err := b.Queries[0].Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestBatch_Errors(t *testing.T) {
	_, err := graphio.DecodeBatch(strings.NewReader("queries: [{source: A, target: B}]\n"), "")
	require.ErrorIs(t, err, graphio.ErrBadDocument, "no graph")

	_, err = graphio.DecodeBatch(strings.NewReader("graph: {edges: []}\ngraph_file: x.yaml\nqueries: [{source: A, target: B}]\n"), "")
	require.ErrorIs(t, err, graphio.ErrBadDocument, "two graphs")

	_, err = graphio.DecodeBatch(strings.NewReader("graph: {edges: []}\n"), "")
	require.ErrorIs(t, err, graphio.ErrBadDocument, "no queries")

	g, err := graphio.DecodeGraph(strings.NewReader(diamondDoc))
	require.NoError(t, err)

	_, err = graphio.Query{Source: "A", Target: "D", Algorithm: "yen"}.Solve(g)
	require.ErrorIs(t, err, graphio.ErrBadDocument)
	_, err = graphio.Query{Source: "A", Target: "D", Mode: "ring"}.Solve(g)
	require.ErrorIs(t, err, disjoint.ErrUnknownMode)
}
