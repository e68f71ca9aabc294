// SPDX-License-Identifier: MIT
// Package: netanalyzer/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): a ring of n-1 plus a hub.
//   - The ring occupies the first n-1 rows of the block, the hub the last.
//   - Emits the ring links first, then spokes hub–rim in increasing rim order.
//
// Complexity:
//   - Time: O(n) rows + O(2n-2) links.

package builder

import "fmt"

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(rs *rowSet, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		base := rs.addBlock(MethodWheel, n, cfg)
		rs.linkRing(base, n-1)
		hub := base + n - 1
		for i := 0; i < n-1; i++ {
			rs.link(hub, base+i)
		}

		return nil
	}
}
