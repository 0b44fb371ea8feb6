// Package dfs implements depth-first analysis of a route network:
// round-trip (cycle) detection and topological ordering.
//
// What:
//
//   - FindCycle: returns one directed cycle (a round trip A → … → A) if the
//     network has any. Self-loops count as cycles of one leg.
//   - TopologicalSort: orders airports so every leg u→v has u before v.
//     Fails with ErrCycleDetected when a round trip exists.
//
// Both walk legs in core.Graph.Outgoing order and start from airports in
// core.Graph.Nodes order, so output is deterministic for a given graph.
//
// Vertex states follow the classic three-color scheme: White (unvisited),
// Gray (on the recursion stack), Black (finished). A leg into a Gray
// airport is a back edge and closes a cycle.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (recursion stack + state map)
package dfs
