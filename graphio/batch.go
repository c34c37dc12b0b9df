// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/disjoint/core"
	"github.com/katalvlaran/disjoint/disjoint"
)

// Algorithm names accepted in a Query.
const (
	AlgorithmBhandari = "bhandari"
	AlgorithmSimple   = "simple"
)

// Batch is a graph plus the queries to run on it. Exactly one of Graph and
// GraphFile must be set; GraphFile is resolved relative to the batch file.
type Batch struct {
	Graph     *GraphDoc `yaml:"graph,omitempty" json:"graph,omitempty"`
	GraphFile string    `yaml:"graph_file,omitempty" json:"graph_file,omitempty"`
	Queries   []Query   `yaml:"queries" json:"queries"`

	dir string
}

// Query is one disjoint-path request. Zero values take the library defaults.
type Query struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Source    string `yaml:"source" json:"source"`
	Target    string `yaml:"target" json:"target"`
	K         int    `yaml:"k,omitempty" json:"k,omitempty"`
	Mode      string `yaml:"mode,omitempty" json:"mode,omitempty"`
	Algorithm string `yaml:"algorithm,omitempty" json:"algorithm,omitempty"`
	Unsorted  bool   `yaml:"unsorted,omitempty" json:"unsorted,omitempty"`
}

// Answer is the document form of one query outcome.
type Answer struct {
	Name      string          `yaml:"name,omitempty" json:"name,omitempty"`
	Source    string          `yaml:"source" json:"source"`
	Target    string          `yaml:"target" json:"target"`
	Mode      string          `yaml:"mode" json:"mode"`
	Algorithm string          `yaml:"algorithm" json:"algorithm"`
	Paths     []disjoint.Path `yaml:"paths,omitempty" json:"paths,omitempty"`
	Total     float64         `yaml:"total,omitempty" json:"total,omitempty"`
	Found     *int            `yaml:"found,omitempty" json:"found,omitempty"`
	Error     string          `yaml:"error,omitempty" json:"error,omitempty"`
}

// DecodeBatch reads one batch document from r. A relative GraphFile is
// resolved against dir.
func DecodeBatch(r io.Reader, dir string) (*Batch, error) {
	var b Batch
	if err := decodeStrict(r, &b); err != nil {
		return nil, err
	}
	if (b.Graph == nil) == (b.GraphFile == "") {
		return nil, fmt.Errorf("%w: set exactly one of graph and graph_file", ErrBadDocument)
	}
	if len(b.Queries) == 0 {
		return nil, fmt.Errorf("%w: no queries", ErrBadDocument)
	}
	b.dir = dir

	return &b, nil
}

// ReadBatchFile reads a batch document from path.
func ReadBatchFile(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open batch: %w", err)
	}
	defer f.Close()

	b, err := DecodeBatch(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}

// LoadGraph builds the batch's inline graph or reads its graph file.
func (b *Batch) LoadGraph() (*core.Graph, error) {
	if b.Graph != nil {
		return b.Graph.Build()
	}
	path := b.GraphFile
	if !filepath.IsAbs(path) && b.dir != "" {
		path = filepath.Join(b.dir, path)
	}

	return ReadGraphFile(path)
}

// Options translates the query into engine options.
func (q Query) Options() ([]disjoint.Option, error) {
	mode, err := disjoint.ParseMode(q.Mode)
	if err != nil {
		return nil, err
	}
	opts := []disjoint.Option{disjoint.WithMode(mode), disjoint.WithSorted(!q.Unsorted)}
	if q.K != 0 {
		opts = append(opts, disjoint.WithK(q.K))
	}

	return opts, nil
}

// Solve runs the query on g with the selected algorithm. Extra options are
// applied after the query's own.
func (q Query) Solve(g *core.Graph, extra ...disjoint.Option) (*disjoint.Result, error) {
	opts, err := q.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)

	switch q.Algorithm {
	case AlgorithmBhandari, "":
		return disjoint.Bhandari(g, q.Source, q.Target, opts...)
	case AlgorithmSimple:
		return disjoint.Simple(g, q.Source, q.Target, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrBadDocument, q.Algorithm)
	}
}

// NewAnswer records the outcome of q. An infeasible query keeps the
// number of paths that do exist in Found.
func NewAnswer(q Query, res *disjoint.Result, err error) Answer {
	a := Answer{
		Name:      q.Name,
		Source:    q.Source,
		Target:    q.Target,
		Mode:      q.Mode,
		Algorithm: q.Algorithm,
	}
	if a.Mode == "" {
		a.Mode = disjoint.EdgeDisjoint.String()
	}
	if a.Algorithm == "" {
		a.Algorithm = AlgorithmBhandari
	}
	if err != nil {
		a.Error = err.Error()
		var inf *disjoint.InfeasibleError
		if errors.As(err, &inf) {
			found := inf.Found
			a.Found = &found
		}
		return a
	}
	a.Paths = res.Paths
	a.Total = res.Total()

	return a
}
