package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dijkstra"
)

// routeOutput is the --json shape of a resolved route.
type routeOutput struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Airports []string `json:"airports"`
	Cost     int64    `json:"cost"`
}

func newRouteCmd(a *app) *cobra.Command {
	var (
		from, to string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the cheapest route between two airports",
		Example: `  skyroute route --network routes.yaml --from JFK --to CDG
  skyroute route --network routes.yaml --from JFK --to JFK --self-path --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.network()
			if err != nil {
				return err
			}
			e, err := dijkstra.NewEngine(g, a.engineOptions()...)
			if err != nil {
				return err
			}
			if err := e.Execute(core.Node{ID: from}); err != nil {
				return err
			}
			target := core.Node{ID: to}
			path, err := e.Path(target)
			if err != nil {
				return fmt.Errorf("no route from %s to %s: %w", from, to, err)
			}
			cost, _ := e.Distance(target)

			out := cmd.OutOrStdout()
			if asJSON {
				res := routeOutput{From: from, To: to, Cost: cost, Airports: make([]string, len(path))}
				for i, n := range path {
					res.Airports[i] = n.ID
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			_, err = fmt.Fprintf(out, "%s (cost %d)\n", formatRoute(path), cost)

			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "departure airport ID")
	cmd.Flags().StringVar(&to, "to", "", "arrival airport ID")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
