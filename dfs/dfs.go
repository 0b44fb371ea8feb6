package dfs

import (
	"slices"

	"github.com/katalvlaran/skyroute/core"
)

// walker holds per-traversal state.
type walker struct {
	graph *core.Graph
	opts  options
	state map[string]int
	stack []string // current recursion path, for cycle reconstruction
	order []string // post-order
	cycle []string // first cycle found, closed (first == last)
}

func newWalker(g *core.Graph, opts []Option) *walker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NodeCount()

	return &walker{
		graph: g,
		opts:  o,
		state: make(map[string]int, n),
		stack: make([]string, 0, n),
		order: make([]string, 0, n),
	}
}

// forest visits every airport in graph order and stops at the first cycle.
func (w *walker) forest() error {
	for _, n := range w.graph.Nodes() {
		if w.state[n.ID] != White {
			continue
		}
		if err := w.visit(n.ID); err != nil {
			return err
		}
		if w.cycle != nil {
			return nil
		}
	}

	return nil
}

func (w *walker) visit(id string) error {
	if err := w.opts.ctx.Err(); err != nil {
		return err
	}
	w.state[id] = Gray
	w.stack = append(w.stack, id)

	for _, e := range w.graph.Outgoing(id) {
		nbr := e.To.ID
		switch w.state[nbr] {
		case White:
			if err := w.visit(nbr); err != nil {
				return err
			}
			if w.cycle != nil {
				return nil
			}
		case Gray:
			w.recordCycle(nbr)
			return nil
		}
	}

	w.stack = w.stack[:len(w.stack)-1]
	w.state[id] = Black
	w.order = append(w.order, id)

	return nil
}

// recordCycle closes the stack segment starting at start.
func (w *walker) recordCycle(start string) {
	idx := slices.Index(w.stack, start)
	cycle := append([]string(nil), w.stack[idx:]...)
	w.cycle = append(cycle, start)
}

// FindCycle returns one round trip as a closed airport ID sequence
// ([A, B, C, A]; a self-loop yields [A, A]) and true, or nil and false when
// the network is acyclic.
func FindCycle(g *core.Graph, opts ...Option) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	w := newWalker(g, opts)
	if err := w.forest(); err != nil {
		return nil, false, err
	}

	return w.cycle, w.cycle != nil, nil
}

// TopologicalSort orders airport IDs so that for every leg u→v, u precedes
// v. Returns ErrCycleDetected when the network has a round trip.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g, opts)
	if err := w.forest(); err != nil {
		return nil, err
	}
	if w.cycle != nil {
		return nil, ErrCycleDetected
	}
	slices.Reverse(w.order)

	return w.order, nil
}
