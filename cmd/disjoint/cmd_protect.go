// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/disjoint/disjoint"
	"github.com/katalvlaran/disjoint/graphio"
	"github.com/katalvlaran/disjoint/protection"
)

// protectReport is the document written by "protect" without --source.
type protectReport struct {
	Mode     string               `yaml:"mode" json:"mode"`
	Failures int                  `yaml:"failures" json:"failures"`
	Entries  []protection.Entry   `yaml:"entries" json:"entries"`
	Covered  []protection.Failure `yaml:"covered,omitempty" json:"covered,omitempty"`
}

// routeReport is the document written by "protect --source --target".
type routeReport struct {
	Source  string             `yaml:"source" json:"source"`
	Target  string             `yaml:"target" json:"target"`
	Failure protection.Failure `yaml:"failure" json:"failure"`
	Route   []string           `yaml:"route,omitempty" json:"route,omitempty"`
	Error   string             `yaml:"error,omitempty" json:"error,omitempty"`
}

func (a *app) newProtectCmd() *cobra.Command {
	var (
		mode    string
		workers int
		source  string
		target  string
		fail    string
		covered bool
	)

	cmd := &cobra.Command{
		Use:   "protect GRAPH",
		Short: "Precompute detour tables for single failures",
		Long: `Precompute, for every arc or vertex failure, the next hops that route
around it from the adjacent router.

Modes:
  edge            - every single arc failure (default)
  node            - every single vertex failure
  edge-then-node  - both, sharing identical detours

Without --source the full entry list is printed. With --source and
--target the route under --fail is printed instead.

Failure syntax:
  node:B     vertex B is down
  arc:A:B    the arc A→B is down

Examples:
  disjoint protect net.yaml --mode node
  disjoint protect net.yaml --source A --target D --fail arc:A:B`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := protection.ParseMode(mode)
			if err != nil {
				return err
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}
			if (source == "") != (target == "") {
				return errors.New("--source and --target go together")
			}
			f, err := parseFailure(fail)
			if err != nil {
				return err
			}

			g, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			tbl, err := protection.Precompute(cmd.Context(), g,
				protection.WithMode(m),
				protection.WithWorkers(workers),
				protection.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			a.logger.Info("protection table ready", "mode", m.String(), "entries", tbl.Len())

			if source == "" {
				report := protectReport{
					Mode:     m.String(),
					Failures: len(tbl.Failures()),
					Entries:  tbl.Entries(),
				}
				if covered {
					report.Covered = tbl.Failures()
				}
				return graphio.Encode(cmd.OutOrStdout(), report)
			}

			route, rerr := tbl.Route(source, target, f)
			report := routeReport{Source: source, Target: target, Failure: f, Route: route}
			if rerr != nil {
				report.Error = rerr.Error()
			}
			if err := graphio.Encode(cmd.OutOrStdout(), report); err != nil {
				return err
			}

			return rerr
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "edge", "failures to cover: edge, node or edge-then-node")
	cmd.Flags().IntVar(&workers, "workers", defaultWorkers(), "failures evaluated concurrently")
	cmd.Flags().StringVar(&source, "source", "", "route from this vertex")
	cmd.Flags().StringVar(&target, "target", "", "route to this vertex")
	cmd.Flags().StringVar(&fail, "fail", "", "failed element: node:ID or arc:FROM:TO")
	cmd.Flags().BoolVar(&covered, "covered", false, "also list every covered failure")

	return cmd
}

// parseFailure reads "node:ID" or "arc:FROM:TO"; "" means no failure.
func parseFailure(s string) (protection.Failure, error) {
	if s == "" {
		return protection.Failure{}, nil
	}
	parts := strings.Split(s, ":")
	switch {
	case parts[0] == "node" && len(parts) == 2 && parts[1] != "":
		return protection.NodeDown(parts[1]), nil
	case parts[0] == "arc" && len(parts) == 3 && parts[1] != "" && parts[2] != "":
		return protection.ArcDown(parts[1], parts[2]), nil
	default:
		return protection.Failure{}, fmt.Errorf("--fail: want node:ID or arc:FROM:TO, got %q", s)
	}
}

func isInfeasible(err error) bool {
	return errors.Is(err, disjoint.ErrInfeasible)
}
