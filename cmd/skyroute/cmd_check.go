package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/dfs"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   "Validate a route network and report its shape",
		Example: `  skyroute check --network routes.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.network()
			if err != nil {
				return err
			}
			if err := g.Validate(); err != nil {
				return err
			}

			var deadEnds []string
			for _, n := range g.Nodes() {
				if len(g.Outgoing(n.ID)) == 0 {
					deadEnds = append(deadEnds, n.ID)
				}
			}
			cycle, hasCycle, err := dfs.FindCycle(g, dfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "airports:   %d\n", g.NodeCount())
			fmt.Fprintf(out, "routes:     %d\n", g.EdgeCount())
			fmt.Fprintf(out, "dead ends:  %s\n", listOrNone(deadEnds))
			if hasCycle {
				fmt.Fprintf(out, "round trip: %s\n", strings.Join(cycle, " → "))
			} else {
				fmt.Fprintln(out, "round trip: none")
			}

			return nil
		},
	}
}

func listOrNone(ids []string) string {
	if len(ids) == 0 {
		return "none"
	}

	return strings.Join(ids, ", ")
}
