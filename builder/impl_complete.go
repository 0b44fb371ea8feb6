// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// impl_complete.go - Complete(n): a leg for every ordered pair u≠v.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emission order: for i asc, for j asc, skip i==j.
// Complexity: O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete directed network on n airports.
func Complete(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := addIndexedNodes(d, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := d.AddEdge(cfg, ids[i], ids[j], cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
