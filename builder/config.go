// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = NodeIDFn        ("Node_0","Node_1",...)
//   • edgeIDFn = EdgeIDFn        ("Edge_0","Edge_1",...)
//   • rng      = nil              (pure/deterministic unless seeded)
//   • weightFn = constant DefaultEdgeWeight

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	edgeIDFn IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts over the defaults, last option wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     NodeIDFn,
		edgeIDFn: EdgeIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
