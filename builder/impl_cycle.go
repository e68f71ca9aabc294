// SPDX-License-Identifier: MIT
// Package: netanalyzer/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits ring links i–(i+1) for i=0..n-2, then the closing link (n-1)–0.
//
// Complexity:
//   - Time: O(n) rows + O(n) links.

package builder

import "fmt"

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(rs *rowSet, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		base := rs.addBlock(MethodCycle, n, cfg)
		rs.linkRing(base, n)

		return nil
	}
}
