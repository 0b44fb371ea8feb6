// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import "github.com/katalvlaran/skyroute/core"

// Common airport IDs used across core tests.
const (
	IDJFK   = "JFK"
	IDLHR   = "LHR"
	IDCDG   = "CDG"
	IDGhost = "XXX"
)

// Common weights (minutes) used across core tests.
const (
	Weight0   = 0
	Weight90  = 90
	Weight420 = 420
	Weight480 = 480
)

// airports returns a fresh node slice JFK, LHR, CDG.
func airports() []core.Node {
	return []core.Node{
		core.NewNode(IDJFK, "New York JFK"),
		core.NewNode(IDLHR, "London Heathrow"),
		core.NewNode(IDCDG, "Paris Charles de Gaulle"),
	}
}

// transatlantic builds JFK→LHR(420), LHR→CDG(90), JFK→CDG(480).
func transatlantic() *core.Graph {
	n := airports()
	return core.NewGraph(n, []core.Edge{
		core.NewEdge("e1", n[0], n[1], Weight420),
		core.NewEdge("e2", n[1], n[2], Weight90),
		core.NewEdge("e3", n[0], n[2], Weight480),
	})
}
