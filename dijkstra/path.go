package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/skyroute/core"
)

// Path returns the route from the current source to target, both inclusive.
//
// Returns ErrNotExecuted before any successful Execute, and ErrNoPath when
// target has no predecessor link. The source itself has no predecessor, so
// Path(source) yields ErrNoPath unless the engine was built WithSelfPath().
//
// Repeated calls for the same target return equal, independent slices.
//
// Complexity: O(L) for a route of L nodes.
func (e *Engine) Path(target core.Node) (path []core.Node, err error) {
	defer func() {
		e.options.Hooks.OnPath(target, len(path), err)
	}()

	if e.sess == nil {
		return nil, ErrNotExecuted
	}
	s := e.sess

	step, err := e.graph.Node(target.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPath, err)
	}

	// Missing predecessor means "no path"; the source is the flagged exception.
	if _, ok := s.prev[step.ID]; !ok {
		if e.options.SelfPath && step.Equal(s.source) {
			return []core.Node{s.source}, nil
		}
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, s.source.ID, step.ID)
	}

	// Walk backwards; chains are acyclic so at most V links are followed.
	path = append(path, step)
	for limit := len(s.order); ; limit-- {
		p, ok := s.prev[step.ID]
		if !ok {
			break
		}
		if limit == 0 {
			return nil, fmt.Errorf("%w: predecessor cycle at %s", ErrInvariant, step.ID)
		}
		path = append(path, p)
		step = p
	}
	slices.Reverse(path)

	e.options.Logger.V(2).Info("path resolved", "source", s.source.ID, "target", target.ID, "hops", len(path)-1)

	return path, nil
}

// PathCost sums the first-match weight of every consecutive pair in path.
// An empty or single-node path costs 0. A sum beyond math.MaxInt64 returns
// ErrDistanceOverflow.
func PathCost(g *core.Graph, path []core.Node) (int64, error) {
	var total int64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		if w > 0 && total > math.MaxInt64-w {
			return 0, fmt.Errorf("%w: at %s→%s", ErrDistanceOverflow, path[i-1].ID, path[i].ID)
		}
		total += w
	}

	return total, nil
}
