// Package core defines the immutable route-network model shared by every
// skyroute package: Node (an airport), Edge (a directed, weighted flight leg)
// and Graph (the aggregate of both).
//
// A Graph is built once from ordered node and edge slices and never mutated
// afterwards, so one instance may be handed to any number of search engines
// running on different goroutines.
//
// Identity:
//
//   - Two nodes are the same node iff their IDs match; Name is display-only.
//   - Edge identity is its position in the edge list. Parallel edges between
//     the same ordered pair are allowed; Weight reports the first one.
//
// Construction never validates. Call Validate to collect every structural
// problem at once (dangling endpoints, duplicate or empty IDs, negative
// weights); the dijkstra engine does this for you and refuses bad graphs.
//
// Complexity:
//
//   - NewGraph:  O(V + E) copy.
//   - Index:     O(V + E) once, built lazily on first lookup.
//   - Outgoing:  O(deg⁺(v)) after the index build; returns a copy.
//   - Weight:    O(deg⁺(from)) scan of from's legs, first match wins.
//   - Validate:  O(V + E).
package core
