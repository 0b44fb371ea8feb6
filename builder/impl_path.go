// SPDX-License-Identifier: MIT
// Package: skyroute/builder
//
// impl_path.go - Path(n): a one-way chain of n airports.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits n-1 edges i → i+1 in ascending i.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the chain 0 → 1 → … → n-1.
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids := addIndexedNodes(d, cfg, n)
		for i := 1; i < n; i++ {
			if err := d.AddEdge(cfg, ids[i-1], ids[i], cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
