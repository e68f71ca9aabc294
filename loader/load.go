// SPDX-License-Identifier: MIT
package loader

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/netanalyzer/core"
)

// Load reads a roster from r and builds the graph. On error no graph is
// returned.
func Load(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows, stats, err := ReadRows(r)
	if err != nil {
		o.logger.Debug("roster load failed", slog.Any("error", err))
		return nil, Stats{}, err
	}
	if o.strict {
		for _, row := range rows {
			if verr := row.Entity.Validate(); verr != nil {
				return nil, Stats{}, fmt.Errorf("%w: %w", ErrInvalidRow, verr)
			}
		}
	}

	g, built := Build(rows)
	stats.merge(built)

	o.logger.Debug("roster loaded",
		slog.Int("rows", stats.Rows),
		slog.Int("skipped", stats.Skipped),
		slog.Int("duplicates", stats.Duplicates),
		slog.Int("pending", stats.Pending),
		slog.Int("linked", stats.Linked),
		slog.Int("self_refs", stats.SelfRefs),
		slog.Int("mirrored", stats.Mirrored),
		slog.Int("dangling", stats.Dangling),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
	)

	return g, stats, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	return Load(f, opts...)
}
