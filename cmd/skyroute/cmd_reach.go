package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/bfs"
)

func newReachCmd(a *app) *cobra.Command {
	var (
		from    string
		maxLegs int
	)
	cmd := &cobra.Command{
		Use:     "reach",
		Short:   "List airports reachable from an airport with their leg counts",
		Example: `  skyroute reach --network routes.yaml --from JFK --max-legs 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.network()
			if err != nil {
				return err
			}
			opts := []bfs.Option{bfs.WithContext(cmd.Context())}
			if maxLegs > 0 {
				opts = append(opts, bfs.WithMaxDepth(maxLegs))
			}
			res, err := bfs.BFS(g, from, opts...)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "AIRPORT\tLEGS")
			for _, id := range res.Order {
				fmt.Fprintf(tw, "%s\t%d\n", id, res.Depth[id])
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "departure airport ID")
	cmd.Flags().IntVar(&maxLegs, "max-legs", 0, "stop after this many legs (0 = unlimited)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
