// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/disjoint/core"
	"github.com/katalvlaran/disjoint/graphio"
)

// app holds the flags and services shared by every subcommand.
type app struct {
	logLevel  string
	logFormat string
	flatten   bool
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "disjoint",
		Short: "Find k disjoint shortest paths in weighted graphs",
		Long: `disjoint reads graphs from YAML documents and answers disjoint-path queries.

Subcommands:
  paths    - k edge- or node-disjoint shortest paths between two vertices
  count    - how many disjoint paths exist, and the cut that limits them
  protect  - detour tables for every single arc or vertex failure
  batch    - many path queries over one graph, run concurrently
  generate - deterministic test topologies as graph documents

Results are written to stdout as YAML; logs go to stderr.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().BoolVar(&a.flatten, "flatten", false, "keep only the lightest of parallel edges before solving")

	root.AddCommand(a.newPathsCmd(), a.newCountCmd(), a.newProtectCmd(), a.newBatchCmd(), a.newGenerateCmd())

	return root
}

// readGraph loads a graph document, flattening it when --flatten is set.
func (a *app) readGraph(path string) (*core.Graph, error) {
	g, err := graphio.ReadGraphFile(path)
	if err != nil {
		return nil, err
	}

	return a.prepare(g), nil
}

func (a *app) prepare(g *core.Graph) *core.Graph {
	if !a.flatten || !(g.Multigraph() || g.HasParallelEdges()) {
		return g
	}
	before := g.EdgeCount()
	g = g.Flatten()
	a.logger.Debug("flattened parallel edges", "before", before, "after", g.EdgeCount())

	return g
}

// setupLogger builds the stderr logger from --log-level and --log-format.
func (a *app) setupLogger(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(a.logFormat) {
	case "text":
		a.logger = slog.New(slog.NewTextHandler(w, opts))
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(w, opts))
	default:
		return fmt.Errorf("--log-format: unknown format %q", a.logFormat)
	}

	return nil
}
