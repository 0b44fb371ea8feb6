// Package dijkstra defines sentinel errors, hooks and functional options for
// the shortest-path engine.
package dijkstra

import (
	"errors"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/skyroute/core"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to NewEngine.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidGraph indicates that the graph failed structural validation.
	ErrInvalidGraph = errors.New("dijkstra: invalid graph")

	// ErrUnknownSource indicates that Execute received a node absent from the graph.
	ErrUnknownSource = errors.New("dijkstra: unknown source node")

	// ErrNotExecuted indicates a query issued before any successful Execute.
	ErrNotExecuted = errors.New("dijkstra: search not yet run")

	// ErrDistanceOverflow indicates that a route cost exceeds math.MaxInt64.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows int64")

	// ErrNoPath indicates that the target was never reached from the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrInvariant indicates an internal consistency failure, such as an
	// adjacency pair without a matching edge. It never occurs on a correct build.
	ErrInvariant = errors.New("dijkstra: invariant violated")
)

// Hooks observe engine progress. Every field is optional; nil hooks are
// replaced with no-ops by DefaultOptions and WithHooks.
type Hooks struct {
	// OnSettle is called when node's distance becomes final.
	OnSettle func(node core.Node, dist int64)

	// OnRelax is called when dist[to] improves through from.
	OnRelax func(from, to core.Node, dist int64)

	// OnComplete is called once Execute finishes successfully.
	OnComplete func(source core.Node, settled int, elapsed time.Duration)

	// OnPath is called after each Path query with the number of airports on
	// the route, endpoints included (0 on error).
	OnPath func(target core.Node, nodes int, err error)
}

// Options configures an Engine.
type Options struct {
	// Logger receives debug-level progress records. Defaults to logr.Discard().
	Logger logr.Logger

	// Hooks observe search and query progress.
	Hooks Hooks

	// SelfPath makes Path(source) return [source] instead of ErrNoPath.
	SelfPath bool
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger, no-op hooks and
// the original source-as-target behavior (ErrNoPath).
func DefaultOptions() Options {
	return Options{
		Logger: logr.Discard(),
		Hooks:  fillHooks(Hooks{}),
	}
}

// WithLogger routes engine logs to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithHooks installs progress callbacks. Nil fields stay no-ops.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		o.Hooks = fillHooks(h)
	}
}

// WithSelfPath makes Path(source) return the single-node route [source].
func WithSelfPath() Option {
	return func(o *Options) {
		o.SelfPath = true
	}
}

// fillHooks replaces nil callbacks with no-ops so the hot loop never branches on nil.
func fillHooks(h Hooks) Hooks {
	if h.OnSettle == nil {
		h.OnSettle = func(core.Node, int64) {}
	}
	if h.OnRelax == nil {
		h.OnRelax = func(core.Node, core.Node, int64) {}
	}
	if h.OnComplete == nil {
		h.OnComplete = func(core.Node, int, time.Duration) {}
	}
	if h.OnPath == nil {
		h.OnPath = func(core.Node, int, error) {}
	}

	return h
}
