// SPDX-License-Identifier: MIT
// Package: netanalyzer/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildRows(bopts, cons...). Resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go, one per file.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options, seed and constructor order ⇒ identical rows.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/loader"
)

// Constructor appends one block of rows using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(rs *rowSet, cfg builderConfig) error

// BuildRows resolves the builder configuration from bopts and applies all
// constructors in order. Each constructor contributes a separate connected
// block; ids and names continue across blocks.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildRows(bopts []BuilderOption, cons ...Constructor) ([]loader.Row, error) {
	cfg := newBuilderConfig(bopts...)
	rs := &rowSet{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildRows: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(rs, cfg); err != nil {
			return nil, fmt.Errorf("BuildRows: %w", err)
		}
	}

	return rs.rows, nil
}

// BuildGraph runs BuildRows and feeds the rows through loader.Build, the same
// two-pass construction used for roster files.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, loader.Stats, error) {
	rows, err := BuildRows(bopts, cons...)
	if err != nil {
		return nil, loader.Stats{}, err
	}
	g, stats := loader.Build(rows)

	return g, stats, nil
}
