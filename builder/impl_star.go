// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// impl_star.go - Star(n): one hub with outbound legs to n-1 spokes.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the hub; edges hub → i are emitted in ascending i.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a hub-and-spoke network.
func Star(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		ids := addIndexedNodes(d, cfg, n)
		for i := 1; i < n; i++ {
			if err := d.AddEdge(cfg, ids[0], ids[i], cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
