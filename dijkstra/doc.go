// Package dijkstra provides a label-setting single-source shortest-path engine
// over an immutable core.Graph of non-negative, integer-weighted flight legs.
//
// Overview:
//
//   - NewEngine captures private copies of a graph's nodes and edges and
//     rejects graphs that fail core.Graph.Validate.
//   - Execute(source) partitions nodes into settled and unsettled sets,
//     repeatedly settling the unsettled node with the smallest tentative
//     distance and relaxing its outgoing legs.
//   - Path(target) walks predecessor links back from target and returns the
//     route in source → target order, or ErrNoPath.
//
// Each Execute builds a fresh search session and replaces the previous one;
// nothing from an earlier source is visible afterwards.
//
// Relaxation rules:
//
//   - A leg u→v is considered only while v is unsettled.
//   - The leg cost is the weight of the FIRST edge u→v in edge-list order,
//     so cheaper parallel edges listed later are ignored.
//   - dist[v] is updated only on a strictly smaller candidate; equal-cost
//     alternatives keep the predecessor found first.
//
// Tie-break:
//
//   - Among unsettled nodes sharing the minimum distance, the node with the
//     lexicographically smallest ID is settled first. This makes predecessor
//     choice among equal-cost routes reproducible across runs.
//
// Source as target:
//
//   - By default Path(source) returns ErrNoPath: the source has no
//     predecessor, and the engine treats a missing predecessor as "no path".
//   - WithSelfPath() redefines this case to return the one-node route [source].
//
// Complexity:
//
//   - Time:  O((V + E) log V) using an indexed binary heap with decrease-key,
//     plus O(deg⁺) first-match weight lookups per settled node.
//   - Space: O(V) for the session maps and queue.
//
// Errors (sentinel):
//
//   - ErrNilGraph          nil graph passed to NewEngine.
//   - ErrInvalidGraph      graph failed validation (wraps every violation).
//   - ErrUnknownSource     Execute called with a node not in the graph.
//   - ErrNotExecuted       Path queried before any successful Execute.
//     Distance reports ok == false instead.
//   - ErrNoPath            target unreachable from the current source.
//   - ErrDistanceOverflow  a route cost exceeds math.MaxInt64; Execute aborts.
//   - ErrInvariant         internal consistency failure; indicates a bug.
//
// Thread safety:
//
//   - An Engine is NOT safe for concurrent use. Create one Engine per
//     goroutine; they may all share the same *core.Graph.
package dijkstra
