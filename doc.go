// Package skyroute finds cheapest flight routes over a directed, weighted
// route network.
//
// A network is a set of airports (core.Node) joined by one-way legs
// (core.Edge) whose non-negative weight is a cost such as flight minutes.
// The dijkstra.Engine runs a single-source search and answers route
// queries for any target; batch.Solver fans many queries out over a worker
// pool.
//
// Layout:
//
//	core/       Node, Edge, immutable Graph with an outgoing-leg index
//	dijkstra/   Engine (Execute, Path, Distance), search session, min-queue
//	bfs/        leg-count reachability
//	dfs/        round-trip detection, topological order
//	builder/    deterministic synthetic networks and the reference fixture
//	loader/     YAML/JSON route files ↔ Graph
//	batch/      concurrent multi-query solving
//	cmd/skyroute  CLI: route, reach, batch, check, generate
//
// Quick example:
//
//	g, _ := loader.LoadFile("routes.yaml")
//	e, _ := dijkstra.NewEngine(g)
//	_ = e.Execute(core.Node{ID: "JFK"})
//	path, err := e.Path(core.Node{ID: "CDG"})
//
// A target with no route (including the source itself, unless
// dijkstra.WithSelfPath is set) yields dijkstra.ErrNoPath.
package skyroute
