// Package bfs provides breadth-first traversal over a core.Graph, following
// directed legs and ignoring weights.
//
// BFS answers "which airports can be reached from here, and in how few
// legs?". It complements the weighted dijkstra engine: a node is reachable in
// BFS exactly when dijkstra can produce a path to it.
//
// Features:
//
//   - Depth (number of legs) and BFS-tree parent for every reached node.
//   - Visit order, deterministic for a fixed edge list.
//   - Optional MaxDepth, neighbor filter, context cancellation and hooks
//     (OnEnqueue, OnDequeue, OnVisit).
//
// Complexity: O(V + E) time, O(V) space.
package bfs
