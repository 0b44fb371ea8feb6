// Package metrics exposes engine activity as Prometheus metrics.
//
// A Collector owns its registry, so several can coexist in one process
// (tests, embedded use). Feed it by installing Hooks on an engine.
package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dijkstra"
)

// Path query outcomes used as the "outcome" label.
const (
	OutcomeOK          = "ok"
	OutcomeNoPath      = "no_path"
	OutcomeNotExecuted = "not_executed"
	OutcomeError       = "error"
)

// Collector records searches and path queries.
type Collector struct {
	registry *prometheus.Registry

	searchesTotal  prometheus.Counter
	settledNodes   prometheus.Histogram
	searchDuration prometheus.Histogram
	relaxations    prometheus.Counter
	pathQueries    *prometheus.CounterVec
	pathAirports   prometheus.Histogram
}

// NewCollector registers all skyroute metrics on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		searchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "skyroute_searches_total",
			Help: "Completed shortest-path searches",
		}),
		settledNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "skyroute_search_settled_nodes",
			Help:    "Airports settled per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 to ~16k
		}),
		searchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "skyroute_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		relaxations: factory.NewCounter(prometheus.CounterOpts{
			Name: "skyroute_relaxations_total",
			Help: "Tentative distance improvements across all searches",
		}),
		pathQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skyroute_path_queries_total",
			Help: "Path queries by outcome",
		}, []string{"outcome"}),
		pathAirports: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "skyroute_path_airports",
			Help:    "Airports on each resolved route, endpoints included",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16, 32},
		}),
	}
}

// Registry returns the collector's registry, e.g. for promhttp.HandlerFor.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Hooks returns engine hooks feeding this collector. They are safe to share
// across engines running on different goroutines.
func (c *Collector) Hooks() dijkstra.Hooks {
	return dijkstra.Hooks{
		OnRelax: func(core.Node, core.Node, int64) {
			c.relaxations.Inc()
		},
		OnComplete: func(_ core.Node, settled int, elapsed time.Duration) {
			c.searchesTotal.Inc()
			c.settledNodes.Observe(float64(settled))
			c.searchDuration.Observe(elapsed.Seconds())
		},
		OnPath: func(_ core.Node, nodes int, err error) {
			outcome := Outcome(err)
			c.pathQueries.WithLabelValues(outcome).Inc()
			if outcome == OutcomeOK {
				c.pathAirports.Observe(float64(nodes))
			}
		},
	}
}

// Outcome classifies a Path error into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, dijkstra.ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, dijkstra.ErrNotExecuted):
		return OutcomeNotExecuted
	default:
		return OutcomeError
	}
}

// WriteText writes all metrics in Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}
