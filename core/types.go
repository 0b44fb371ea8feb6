// File: types.go
// Role: Node, Edge, Graph declarations and sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node carries an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a node absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates that no edge connects the requested ordered pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDanglingEdge indicates an edge endpoint that is not in the node collection.
	ErrDanglingEdge = errors.New("core: dangling edge reference")

	// ErrDuplicateNode indicates two nodes sharing one ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Node is a location in the route network (typically an airport).
//
// Equality is defined by ID alone; see Equal.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string `json:"id" yaml:"id"`

	// Name is a human-readable label. It plays no part in identity.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// NewNode returns a Node with the given identifier and display name.
func NewNode(id, name string) Node {
	return Node{ID: id, Name: name}
}

// Equal reports whether n and other denote the same node.
func (n Node) Equal(other Node) bool { return n.ID == other.ID }

// String returns the display name, falling back to the ID.
func (n Node) String() string {
	if n.Name == "" {
		return n.ID
	}

	return n.Name
}

// Edge is a directed, weighted connection From → To.
type Edge struct {
	// ID labels the edge; it is not required to be unique.
	ID string `json:"id" yaml:"id"`

	// From is the departure node.
	From Node `json:"from" yaml:"from"`

	// To is the arrival node.
	To Node `json:"to" yaml:"to"`

	// Weight is the traversal cost (flight duration, distance, fare...).
	// Must be non-negative for shortest-path search.
	Weight int64 `json:"weight" yaml:"weight"`
}

// NewEdge returns an Edge from → to carrying weight.
func NewEdge(id string, from, to Node, weight int64) Edge {
	return Edge{ID: id, From: from, To: to, Weight: weight}
}

// String renders the edge as "from → to".
func (e Edge) String() string {
	return e.From.String() + " → " + e.To.String()
}

// Graph is an immutable aggregate of an ordered node collection and an ordered
// edge collection.
//
// The adjacency index is derived lazily on first use and guarded by a
// sync.Once, so concurrent readers never race on it.
type Graph struct {
	nodes []Node
	edges []Edge

	indexOnce sync.Once
	byID      map[string]int   // node ID → first position in nodes
	outgoing  map[string][]int // node ID → positions in edges, edge-list order
}
