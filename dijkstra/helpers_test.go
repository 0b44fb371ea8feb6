package dijkstra_test

import (
	"math"

	"github.com/katalvlaran/skyroute/core"
)

// node returns the node with id from g; test fixtures always contain it.
func node(g *core.Graph, id string) core.Node {
	n, err := g.Node(id)
	if err != nil {
		panic(err)
	}

	return n
}

// bellmanFord is an independent oracle: optimal first-match distances from
// source, computed by |V|-1 rounds of full relaxation. Unreached nodes are absent.
func bellmanFord(g *core.Graph, source string) map[string]int64 {
	dist := map[string]int64{source: 0}
	for i := 1; i < g.NodeCount(); i++ {
		changed := false
		for _, e := range g.Edges() {
			du, ok := dist[e.From.ID]
			if !ok {
				continue
			}
			w, _ := g.Weight(e.From, e.To)
			if w > math.MaxInt64-du {
				continue
			}
			if dv, ok := dist[e.To.ID]; !ok || du+w < dv {
				dist[e.To.ID] = du + w
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// diamond builds A→B(1), A→C(1), B→D(1), C→D(1) with C listed before B.
func diamond() *core.Graph {
	a, b, c, d := core.NewNode("A", ""), core.NewNode("B", ""), core.NewNode("C", ""), core.NewNode("D", "")

	return core.NewGraph(
		[]core.Node{a, c, b, d},
		[]core.Edge{
			core.NewEdge("ac", a, c, 1),
			core.NewEdge("ab", a, b, 1),
			core.NewEdge("cd", c, d, 1),
			core.NewEdge("bd", b, d, 1),
		},
	)
}
