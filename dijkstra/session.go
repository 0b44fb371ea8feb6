package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skyroute/core"
)

// session holds the mutable state of one Execute call. It is created fresh
// per call and never shared, so results from different sources cannot mix.
//
// Invariants:
//   - settled and unsettled are disjoint; a node leaves unsettled exactly
//     when it enters settled and never re-enters either.
//   - dist and prev have no entry for unreached nodes.
//   - prev has no entry for the source.
type session struct {
	source    core.Node
	settled   map[string]struct{}
	order     []core.Node // settlement order
	unsettled *unsettledSet
	dist      map[string]int64
	prev      map[string]core.Node
}

func newSession(source core.Node, capacity int) *session {
	return &session{
		source:    source,
		settled:   make(map[string]struct{}, capacity),
		order:     make([]core.Node, 0, capacity),
		unsettled: newUnsettledSet(capacity),
		dist:      make(map[string]int64, capacity),
		prev:      make(map[string]core.Node, capacity),
	}
}

// isSettled reports whether id's distance is final.
func (s *session) isSettled(id string) bool {
	_, ok := s.settled[id]

	return ok
}

// run executes the label-setting loop over g until no unsettled node remains.
func (s *session) run(g *core.Graph, hooks Hooks) error {
	// 1) Seed: distance 0 at the source, which is the only unsettled node.
	s.dist[s.source.ID] = 0
	s.unsettled.Upsert(s.source, 0)

	// 2) Settle the closest unsettled node and relax its outgoing legs.
	for s.unsettled.Len() > 0 {
		u, d := s.unsettled.PopMin()
		s.settled[u.ID] = struct{}{}
		s.order = append(s.order, u)
		hooks.OnSettle(u, d)

		if err := s.relax(g, u, hooks); err != nil {
			return err
		}
	}

	return nil
}

// relax evaluates every leg u→v whose destination is still unsettled.
func (s *session) relax(g *core.Graph, u core.Node, hooks Hooks) error {
	du := s.dist[u.ID]

	for _, e := range g.Outgoing(u.ID) {
		if s.isSettled(e.To.ID) {
			continue
		}

		// Canonical node value from the graph's node list, not the copy
		// embedded in the edge.
		v, err := g.Node(e.To.ID)
		if err != nil {
			return fmt.Errorf("%w: leg %s→%s: %v", ErrInvariant, u.ID, e.To.ID, err)
		}

		// First edge u→v in list order defines the leg cost.
		w, err := g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("%w: no edge between adjacency pair: %v", ErrInvariant, err)
		}

		if w > math.MaxInt64-du {
			return fmt.Errorf("%w: %s→%s (%d + %d)", ErrDistanceOverflow, u.ID, v.ID, du, w)
		}
		candidate := du + w

		if cur, ok := s.dist[v.ID]; ok && candidate >= cur {
			continue
		}

		s.dist[v.ID] = candidate
		s.prev[v.ID] = u
		s.unsettled.Upsert(v, candidate)
		hooks.OnRelax(u, v, candidate)
	}

	return nil
}
