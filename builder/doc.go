// SPDX-License-Identifier: MIT

// Package builder generates deterministic route networks for tests,
// benchmarks, examples and the `skyroute generate` command.
//
// One orchestrator, BuildGraph, resolves BuilderOptions into an immutable
// config, runs Constructors in order against a mutable draft, and freezes the
// draft into a core.Graph.
//
// Constructors:
//
//	Path(n)            Node_0 → Node_1 → … → Node_{n-1}
//	Star(n)            hub → every spoke (hub-and-spoke carrier)
//	Complete(n)        every ordered pair u≠v
//	RandomSparse(n,p)  each ordered pair u≠v independently with probability p
//	Reference()        the 11-airport, 12-leg regression network
//
// Determinism: the same options, seed and constructor order always produce
// byte-identical node and edge lists.
//
// Errors are sentinels wrapped with "<Method>: ...: %w"; branch with errors.Is.
package builder
