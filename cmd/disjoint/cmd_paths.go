// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/disjoint/disjoint"
	"github.com/katalvlaran/disjoint/graphio"
)

func (a *app) newPathsCmd() *cobra.Command {
	var q graphio.Query

	cmd := &cobra.Command{
		Use:   "paths GRAPH SOURCE TARGET",
		Short: "Find k disjoint shortest paths between two vertices",
		Long: `Find k mutually disjoint paths of minimum total distance.

Modes:
  edge  - paths share no edge (default)
  node  - paths share no interior vertex (directed graphs)

When fewer than k paths exist the answer reports how many were found
and the command exits with an error.

Examples:
  disjoint paths net.yaml A D
  disjoint paths net.yaml A D --k 3 --mode node --algorithm simple`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			q.Source, q.Target = args[1], args[2]

			res, err := q.Solve(g, disjoint.WithLogger(a.logger))
			if err != nil && !isInfeasible(err) {
				return err
			}
			if werr := graphio.Encode(cmd.OutOrStdout(), graphio.NewAnswer(q, res, err)); werr != nil {
				return werr
			}

			return err
		},
	}
	cmd.Flags().IntVarP(&q.K, "k", "k", 2, "number of disjoint paths")
	cmd.Flags().StringVar(&q.Mode, "mode", "edge", "disjointness: edge or node")
	cmd.Flags().StringVar(&q.Algorithm, "algorithm", graphio.AlgorithmBhandari, "bhandari (exact) or simple (delete and retry)")
	cmd.Flags().BoolVar(&q.Unsorted, "unsorted", false, "keep discovery order instead of sorting by distance")

	return cmd
}
