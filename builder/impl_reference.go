// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// impl_reference.go - the 11-airport, 12-leg regression network.
//
// Layout (weights in minutes):
//
//	Node_0→Node_1 (85)   Node_0→Node_2 (217)  Node_0→Node_4 (173)
//	Node_2→Node_6 (186)  Node_2→Node_7 (103)  Node_3→Node_7 (183)
//	Node_5→Node_8 (250)  Node_8→Node_9 (84)   Node_7→Node_9 (167)
//	Node_4→Node_9 (502)  Node_9→Node_10 (40)  Node_1→Node_10 (600)
//
// From Node_0 the cheapest route to Node_10 is 0→2→7→9→10 (527); Node_3,
// Node_5 and Node_8 are unreachable.

package builder

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
)

const (
	methodReference = "Reference"
	referenceNodes  = 11
)

// referenceLegs lists (from, to, weight) by node index in emission order.
var referenceLegs = [...]struct {
	from, to int
	weight   int64
}{
	{0, 1, 85},
	{0, 2, 217},
	{0, 4, 173},
	{2, 6, 186},
	{2, 7, 103},
	{3, 7, 183},
	{5, 8, 250},
	{8, 9, 84},
	{7, 9, 167},
	{4, 9, 502},
	{9, 10, 40},
	{1, 10, 600},
}

// Reference returns a Constructor emitting the regression network. Weights
// are fixed; cfg.weightFn is ignored, cfg.idFn and cfg.edgeIDFn are honored.
func Reference() Constructor {
	return func(d *Draft, cfg builderConfig) error {
		ids := addIndexedNodes(d, cfg, referenceNodes)
		for _, leg := range referenceLegs {
			if err := d.AddEdge(cfg, ids[leg.from], ids[leg.to], leg.weight); err != nil {
				return fmt.Errorf("%s: %w", methodReference, err)
			}
		}

		return nil
	}
}

// ReferenceNetwork builds the regression network with default naming
// (Node_0…Node_10, Edge_0…Edge_11).
func ReferenceNetwork() *core.Graph {
	g, err := BuildGraph(nil, Reference())
	if err != nil {
		// Fixed input; unreachable.
		panic(err)
	}

	return g
}
