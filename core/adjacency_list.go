// File: adjacency_list.go
// Role: Lazily derived adjacency index and edge lookups.
// Determinism:
//   - Outgoing preserves edge-list order; Weight returns the first match.

package core

import "fmt"

// buildIndex derives byID and outgoing exactly once.
// Edges whose From is not a known node are still indexed by the From ID so
// that lookups behave like a plain linear scan over the edge list.
func (g *Graph) buildIndex() {
	g.indexOnce.Do(func() {
		g.byID = make(map[string]int, len(g.nodes))
		for i, n := range g.nodes {
			if _, seen := g.byID[n.ID]; !seen {
				g.byID[n.ID] = i
			}
		}

		g.outgoing = make(map[string][]int, len(g.nodes))
		for i, e := range g.edges {
			g.outgoing[e.From.ID] = append(g.outgoing[e.From.ID], i)
		}
	})
}

// Outgoing returns the edges leaving the node with the given ID, in
// edge-list order. Unknown IDs yield an empty slice.
//
// Complexity: O(deg⁺(v)) after the one-time O(V + E) index build.
func (g *Graph) Outgoing(id string) []Edge {
	g.buildIndex()
	idx := g.outgoing[id]
	out := make([]Edge, len(idx))
	for k, i := range idx {
		out[k] = g.edges[i]
	}

	return out
}

// Weight returns the weight of the first edge from → to in edge-list order.
// Later parallel edges are ignored even when cheaper.
//
// Complexity: O(deg⁺(from)).
func (g *Graph) Weight(from, to Node) (int64, error) {
	g.buildIndex()
	for _, i := range g.outgoing[from.ID] {
		if g.edges[i].To.ID == to.ID {
			return g.edges[i].Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %s → %s", ErrEdgeNotFound, from.ID, to.ID)
}
