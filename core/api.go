// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Graph constructor and read-only getters.
// Policy:
//   - No validation here; see validate.go.
//   - Every getter returns a copy; callers can never mutate graph storage.

package core

// NewGraph builds a Graph from the given nodes and edges, preserving order.
// Both slices are copied; later changes by the caller are not observed.
//
// Complexity: O(V + E).
func NewGraph(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		nodes: make([]Node, len(nodes)),
		edges: make([]Edge, len(edges)),
	}
	copy(g.nodes, nodes)
	copy(g.edges, edges)

	return g
}

// Nodes returns a copy of the node collection in construction order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge collection in construction order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	g.buildIndex()
	_, ok := g.byID[id]

	return ok
}

// Node returns the node registered under id. When IDs are duplicated the
// first occurrence wins.
func (g *Graph) Node(id string) (Node, error) {
	g.buildIndex()
	i, ok := g.byID[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return g.nodes[i], nil
}
