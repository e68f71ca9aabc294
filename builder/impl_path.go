// SPDX-License-Identifier: MIT
// Package: netanalyzer/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits links (i-1)–i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) rows + O(n-1) links.

package builder

import "fmt"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(rs *rowSet, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		base := rs.addBlock(MethodPath, n, cfg)
		for i := 1; i < n; i++ {
			rs.link(base+i-1, base+i)
		}

		return nil
	}
}
