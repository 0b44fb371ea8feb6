package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	var queries []string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve many route queries concurrently",
		Example: `  skyroute batch --network routes.yaml --query JFK:CDG --query LHR:JFK --workers 4
  skyroute batch --network routes.yaml JFK:CDG LHR:JFK`,
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := parseQueries(append(queries, args...))
			if err != nil {
				return err
			}
			g, err := a.network()
			if err != nil {
				return err
			}
			s, err := batch.NewSolver(g,
				batch.WithWorkers(a.cfg.Workers),
				batch.WithEngineOptions(a.engineOptions()...),
				batch.WithLogger(a.log.WithName("batch")),
			)
			if err != nil {
				return err
			}
			results, err := s.Solve(cmd.Context(), qs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(out, "%s\tERROR\t%v\n", r.Query, r.Err)
					continue
				}
				fmt.Fprintf(out, "%s\t%d\t%s\n", r.Query, r.Distance, formatRoute(r.Path))
			}
			a.log.Info("batch finished", "queries", len(results), "failed", failed)

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "FROM:TO query (repeatable)")

	return cmd
}

// parseQueries turns "FROM:TO" strings into batch queries.
func parseQueries(raw []string) ([]batch.Query, error) {
	if len(raw) == 0 {
		return nil, batch.ErrNoQueries
	}
	qs := make([]batch.Query, 0, len(raw))
	for _, s := range raw {
		from, to, ok := strings.Cut(s, ":")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("query %q: want FROM:TO", s)
		}
		qs = append(qs, batch.Query{From: from, To: to})
	}

	return qs, nil
}
