// SPDX-License-Identifier: MIT
// Package: netanalyzer/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n) rows + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j>i.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like block
// over n vertices with independent link probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(rs *rowSet, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		base := rs.addBlock(MethodRandomSparse, n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1.0
				if cfg.rng != nil && p > 0.0 && p < 1.0 {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					rs.link(base+i, base+j)
				}
			}
		}

		return nil
	}
}
