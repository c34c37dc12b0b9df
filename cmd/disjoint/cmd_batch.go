// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/disjoint/disjoint"
	"github.com/katalvlaran/disjoint/graphio"
)

// batchReport is the document written by "batch".
type batchReport struct {
	Answers []graphio.Answer `yaml:"answers" json:"answers"`
	Failed  int              `yaml:"failed" json:"failed"`
}

func defaultWorkers() int { return runtime.GOMAXPROCS(0) }

func (a *app) newBatchCmd() *cobra.Command {
	var (
		workers int
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run every query of a batch document",
		Long: `Run the queries of a batch document concurrently over one graph.

A batch names its graph inline (graph:) or by path (graph_file:, relative
to the batch file) and lists the queries:

  graph_file: net.yaml
  queries:
    - {name: a-d, source: A, target: D, k: 2, mode: node}
    - {name: b-e, source: B, target: E, algorithm: simple}

Answers keep query order. A failed query is reported in its answer; with
--strict any failure also makes the command exit with an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}
			b, err := graphio.ReadBatchFile(args[0])
			if err != nil {
				return err
			}
			g, err := b.LoadGraph()
			if err != nil {
				return err
			}
			g = a.prepare(g)

			report := batchReport{Answers: make([]graphio.Answer, len(b.Queries))}
			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(workers)
			for i, q := range b.Queries {
				i, q := i, q
				eg.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					log := a.logger.With("query", i, "name", q.Name)
					res, err := q.Solve(g, disjoint.WithLogger(log))
					if err != nil {
						log.Warn("query failed", "err", err)
					}
					report.Answers[i] = graphio.NewAnswer(q, res, err)

					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			for _, ans := range report.Answers {
				if ans.Error != "" {
					report.Failed++
				}
			}
			if err := graphio.Encode(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if strict && report.Failed > 0 {
				return fmt.Errorf("%d of %d queries failed", report.Failed, len(report.Answers))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", defaultWorkers(), "queries run concurrently")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any query fails")

	return cmd
}
