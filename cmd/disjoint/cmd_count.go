// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/disjoint/disjoint"
	"github.com/katalvlaran/disjoint/graphio"
)

func (a *app) newCountCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "count GRAPH SOURCE TARGET",
		Short: "Count the disjoint paths between two vertices",
		Long: `Report the largest k for which "paths" can succeed, together with a
minimum set of vertices and edges whose loss separates the two vertices.

Examples:
  disjoint count net.yaml A D
  disjoint count net.yaml A D --mode node`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := disjoint.ParseMode(mode)
			if err != nil {
				return err
			}
			g, err := a.readGraph(args[0])
			if err != nil {
				return err
			}
			c, err := disjoint.MaxDisjoint(cmd.Context(), g, args[1], args[2],
				disjoint.WithMode(m),
				disjoint.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			return graphio.Encode(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "edge", "disjointness: edge or node")

	return cmd
}
