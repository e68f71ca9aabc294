// SPDX-License-Identifier: MIT
// Package: netanalyzer/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated row.
//   - Emits links for every unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity:
//   - Time: O(n) rows + O(n²) links.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(rs *rowSet, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		base := rs.addBlock(MethodComplete, n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				rs.link(base+i, base+j)
			}
		}

		return nil
	}
}
