// SPDX-License-Identifier: MIT
// Package: netanalyzer/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Rows are laid out row-major: cell (r,c) has block offset r*cols+c.
//   - For each cell emits the Right link, then the Bottom link, when present.
//
// Complexity:
//   - Time: O(rows*cols) rows + O(2*rows*cols) links.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(rs *rowSet, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		base := rs.addBlock(MethodGrid, rows*cols, cfg)
		cell := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					rs.link(cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					rs.link(cell(r, c), cell(r+1, c))
				}
			}
		}

		return nil
	}
}
