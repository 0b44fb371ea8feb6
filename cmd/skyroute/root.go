package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dijkstra"
	"github.com/katalvlaran/skyroute/internal/config"
	"github.com/katalvlaran/skyroute/internal/logging"
	"github.com/katalvlaran/skyroute/internal/metrics"
	"github.com/katalvlaran/skyroute/loader"
)

var errNetworkRequired = errors.New("--network (or SKYROUTE_NETWORK) is required")

// app carries state shared by all subcommands for one invocation.
type app struct {
	cfg     *config.Config
	zap     *zap.Logger
	log     logr.Logger
	metrics *metrics.Collector
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg, log: logr.Discard()}

	root := &cobra.Command{
		Use:   "skyroute",
		Short: "Cheapest flight routes over a directed route network",
		Long: `skyroute loads a route network (airports and weighted one-way legs)
from YAML or JSON and answers cheapest-route queries with Dijkstra's algorithm.

Subcommands:
  route     cheapest route between two airports
  reach     airports reachable from one airport, by leg count
  batch     many route queries solved concurrently
  check     validate a network, list dead ends and round trips
  generate  emit a synthetic route network`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd)
		},
	}
	cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newRouteCmd(a),
		newReachCmd(a),
		newBatchCmd(a),
		newCheckCmd(a),
		newGenerateCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	z, err := logging.NewLogger(a.cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.zap = z
	a.log = logging.Logr(z).WithName("skyroute")
	if a.cfg.Metrics {
		a.metrics = metrics.NewCollector()
	}
	a.log.V(1).Info("configured", "command", cmd.Name(), "network", a.cfg.Network, "workers", a.cfg.Workers)

	return nil
}

func (a *app) teardown(cmd *cobra.Command) error {
	if a.zap != nil {
		_ = a.zap.Sync()
	}
	if a.metrics == nil {
		return nil
	}

	// Stderr keeps stdout parseable for --json and generate output.
	return a.metrics.WriteText(cmd.ErrOrStderr())
}

// network loads the configured route network.
func (a *app) network() (*core.Graph, error) {
	if a.cfg.Network == "" {
		return nil, errNetworkRequired
	}
	g, err := loader.LoadFile(a.cfg.Network)
	if err != nil {
		return nil, err
	}
	a.log.V(1).Info("network loaded", "path", a.cfg.Network, "airports", g.NodeCount(), "routes", g.EdgeCount())

	return g, nil
}

// engineOptions translates configuration into engine options.
func (a *app) engineOptions() []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithLogger(a.log.WithName("dijkstra"))}
	if a.cfg.SelfPath {
		opts = append(opts, dijkstra.WithSelfPath())
	}
	if a.metrics != nil {
		opts = append(opts, dijkstra.WithHooks(a.metrics.Hooks()))
	}

	return opts
}

// formatRoute renders a path as "A → B → C".
func formatRoute(path []core.Node) string {
	names := make([]string, len(path))
	for i, n := range path {
		names[i] = n.String()
	}

	return strings.Join(names, " → ")
}
