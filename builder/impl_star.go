// SPDX-License-Identifier: MIT
// Package: netanalyzer/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first row of the block is the hub; the remaining n-1 rows are
//     leaves linked to it in increasing order.
//
// Complexity:
//   - Time: O(n) rows + O(n-1) links.

package builder

import "fmt"

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
// The hub is the block's only connector when n ≥ 3.
func Star(n int) Constructor {
	return func(rs *rowSet, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		hub := rs.addBlock(MethodStar, n, cfg)
		for i := 1; i < n; i++ {
			rs.link(hub, hub+i)
		}

		return nil
	}
}
