package dijkstra

import (
	"fmt"
	"time"

	"github.com/katalvlaran/skyroute/core"
)

// Engine computes single-source shortest routes over a private copy of a
// route network. Results of the last successful Execute are queried with
// Path, Distance and Settled.
type Engine struct {
	graph   *core.Graph // private copy; never mutated
	options Options
	sess    *session // nil until the first successful Execute
}

// NewEngine validates g and captures independent copies of its node and edge
// lists. No search is performed yet.
//
// Returns ErrNilGraph for a nil graph and ErrInvalidGraph, wrapping every
// violation reported by core.Graph.Validate, for a malformed one.
//
// Complexity: O(V + E).
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		graph:   core.NewGraph(g.Nodes(), g.Edges()),
		options: cfg,
	}, nil
}

// Execute runs the full search from source, discarding any previous results.
// source is matched by ID; the graph's own node value becomes the source.
//
// On error the engine is left without results and queries return
// ErrNotExecuted.
func (e *Engine) Execute(source core.Node) error {
	e.sess = nil

	src, err := e.graph.Node(source.ID)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownSource, source.ID)
	}

	start := time.Now()
	s := newSession(src, e.graph.NodeCount())
	if err = s.run(e.graph, e.options.Hooks); err != nil {
		e.options.Logger.Error(err, "search aborted", "source", src.ID)
		return err
	}
	elapsed := time.Since(start)

	e.sess = s
	e.options.Hooks.OnComplete(src, len(s.order), elapsed)
	e.options.Logger.V(1).Info("search completed",
		"source", src.ID,
		"settled", len(s.order),
		"nodes", e.graph.NodeCount(),
		"elapsed", elapsed,
	)

	return nil
}

// Source returns the source of the last successful Execute.
func (e *Engine) Source() (core.Node, bool) {
	if e.sess == nil {
		return core.Node{}, false
	}

	return e.sess.source, true
}

// Distance returns the optimal distance from the current source to target.
// ok is false before Execute or when target was never reached.
func (e *Engine) Distance(target core.Node) (dist int64, ok bool) {
	if e.sess == nil {
		return 0, false
	}
	dist, ok = e.sess.dist[target.ID]

	return dist, ok
}

// Settled returns every node reached by the last Execute, in the order their
// distances became final. The source comes first.
func (e *Engine) Settled() []core.Node {
	if e.sess == nil {
		return nil
	}
	out := make([]core.Node, len(e.sess.order))
	copy(out, e.sess.order)

	return out
}

// Graph returns the engine's private graph copy.
func (e *Engine) Graph() *core.Graph { return e.graph }
