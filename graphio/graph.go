// SPDX-License-Identifier: MIT
// Package graphio reads and writes graphs and query batches as YAML documents.
//
// A graph document lists its edges and, optionally, isolated vertices:
//
//	directed: true      # default true
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: D, weight: 2.5, attrs: {label: core}}
//	vertices: [E]
//
// A missing weight means 1. Unknown fields are rejected so typos surface as
// errors instead of silently dropped settings.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/disjoint/core"
)

// ErrBadDocument indicates a YAML document that does not describe a valid graph or batch.
var ErrBadDocument = errors.New("graphio: invalid document")

// DefaultWeight is the weight of an edge whose document omits it.
const DefaultWeight = 1.0

// GraphDoc is the document form of a core.Graph.
type GraphDoc struct {
	Directed   *bool     `yaml:"directed,omitempty" json:"directed,omitempty"`
	Multigraph bool      `yaml:"multigraph,omitempty" json:"multigraph,omitempty"`
	Loops      bool      `yaml:"loops,omitempty" json:"loops,omitempty"`
	Vertices   []string  `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges      []EdgeDoc `yaml:"edges" json:"edges"`
}

// EdgeDoc is one edge of a GraphDoc.
type EdgeDoc struct {
	From   string                 `yaml:"from" json:"from"`
	To     string                 `yaml:"to" json:"to"`
	Weight *float64               `yaml:"weight,omitempty" json:"weight,omitempty"`
	Attrs  map[string]interface{} `yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

// Build turns the document into a graph.
//
// Errors:
//   - ErrBadDocument for empty endpoints or edges the graph's policy rejects.
func (d GraphDoc) Build() (*core.Graph, error) {
	directed := d.Directed == nil || *d.Directed
	opts := []core.GraphOption{core.WithDirected(directed)}
	if d.Multigraph {
		opts = append(opts, core.WithMultiEdges())
	}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %v", ErrBadDocument, id, err)
		}
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge #%d has an empty endpoint", ErrBadDocument, i)
		}
		w := DefaultWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		keys := make([]string, 0, len(e.Attrs))
		for k := range e.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		attrs := make([]core.EdgeOption, 0, len(keys))
		for _, k := range keys {
			attrs = append(attrs, core.WithEdgeAttr(k, e.Attrs[k]))
		}
		if _, err := g.AddEdge(e.From, e.To, w, attrs...); err != nil {
			return nil, fmt.Errorf("%w: edge #%d %s→%s: %v", ErrBadDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a document. Edges keep catalog order; only
// vertices without incident edges are listed under Vertices.
func FromGraph(g *core.Graph) GraphDoc {
	directed := g.Directed()
	d := GraphDoc{
		Directed:   &directed,
		Multigraph: g.Multigraph(),
		Loops:      g.Looped(),
	}

	touched := make(map[string]bool)
	for _, e := range g.Edges() {
		w := e.Weight
		d.Edges = append(d.Edges, EdgeDoc{From: e.From, To: e.To, Weight: &w, Attrs: e.Attrs})
		touched[e.From] = true
		touched[e.To] = true
	}
	for _, id := range g.Vertices() {
		if !touched[id] {
			d.Vertices = append(d.Vertices, id)
		}
	}

	return d
}

// DecodeGraph reads one graph document from r.
func DecodeGraph(r io.Reader) (*core.Graph, error) {
	var d GraphDoc
	if err := decodeStrict(r, &d); err != nil {
		return nil, err
	}

	return d.Build()
}

// ReadGraphFile reads a graph document from path.
func ReadGraphFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open graph: %w", err)
	}
	defer f.Close()

	g, err := DecodeGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// EncodeGraph writes g to w as a YAML document.
func EncodeGraph(w io.Writer, g *core.Graph) error {
	return Encode(w, FromGraph(g))
}

// Encode writes any value as a two-space indented YAML document.
func Encode(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

func decodeStrict(r io.Reader, v interface{}) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrBadDocument)
		}
		return fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return nil
}
