// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates a draft, resolves cfg, runs cons in order.
//   - Constructors mutate the draft only; the result is frozen with core.NewGraph.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
)

// Constructor applies a deterministic mutation to the draft using the
// resolved builderConfig. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildGraph resolves bopts, applies every constructor in order and returns
// the frozen graph. Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return d.Graph(), nil
}

// Draft is the mutable staging area constructors write into.
// Nodes are deduplicated by ID; edges are appended in emission order.
type Draft struct {
	nodes []core.Node
	byID  map[string]core.Node
	edges []core.Edge
}

func newDraft() *Draft {
	return &Draft{byID: make(map[string]core.Node)}
}

// AddNode inserts a node with the given ID and name. Re-adding an existing
// ID is a no-op and returns the stored node.
func (d *Draft) AddNode(id, name string) core.Node {
	if n, ok := d.byID[id]; ok {
		return n
	}
	n := core.NewNode(id, name)
	d.byID[id] = n
	d.nodes = append(d.nodes, n)

	return n
}

// AddEdge appends a directed edge between two previously added nodes.
// The edge ID is produced by cfg.edgeIDFn from the emission index.
func (d *Draft) AddEdge(cfg builderConfig, fromID, toID string, weight int64) error {
	from, ok := d.byID[fromID]
	if !ok {
		return fmt.Errorf("AddEdge(%s→%s): unknown source: %w", fromID, toID, ErrConstructFailed)
	}
	to, ok := d.byID[toID]
	if !ok {
		return fmt.Errorf("AddEdge(%s→%s): unknown destination: %w", fromID, toID, ErrConstructFailed)
	}
	d.edges = append(d.edges, core.NewEdge(cfg.edgeIDFn(len(d.edges)), from, to, weight))

	return nil
}

// Graph freezes the draft into an immutable core.Graph.
func (d *Draft) Graph() *core.Graph {
	return core.NewGraph(d.nodes, d.edges)
}

// addIndexedNodes inserts n nodes via cfg.idFn in ascending index order and
// returns their IDs.
func addIndexedNodes(d *Draft, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		d.AddNode(ids[i], ids[i])
	}

	return ids
}
