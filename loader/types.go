// SPDX-License-Identifier: MIT
package loader

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/logging"
)

// MinFields is the minimum column count of a data row.
const MinFields = 6

// Header is the first line written by WriteRows (without the trailing
// connectionID columns, which are numbered per file).
const Header = "id\tnodeName\tgroup\tunit\tcontact\tconnectionCount"

// Sentinel errors returned by the loader.
var (
	// ErrRead indicates the underlying reader or file failed.
	ErrRead = errors.New("loader: read failed")

	// ErrMalformedField indicates a numeric column that does not parse.
	ErrMalformedField = errors.New("loader: malformed numeric field")

	// ErrInvalidRow indicates an entity rejected by validation in strict mode.
	ErrInvalidRow = errors.New("loader: invalid row")
)

// Row is one parsed roster line: the entity plus the ids it declares as
// connections, in column order.
type Row struct {
	Entity      entity.Entity
	NeighborIDs []int64
}

// Stats counts what happened during a load.
type Stats struct {
	// Rows is the number of data rows parsed.
	Rows int
	// Skipped counts rows with fewer than MinFields columns.
	Skipped int
	// Blank counts empty or whitespace-only lines.
	Blank int
	// Duplicates counts rows whose id was already taken.
	Duplicates int
	// Pending is the number of (owner, neighbor) pairs queued for pass two.
	Pending int
	// Linked is the number of edges created.
	Linked int
	// SelfRefs counts pending pairs with owner == neighbor.
	SelfRefs int
	// Mirrored counts pending pairs with owner > neighbor.
	Mirrored int
	// Dangling counts owner < neighbor pairs naming an unknown id.
	Dangling int
}

// merge folds the construction counters of b into s.
func (s *Stats) merge(b Stats) {
	s.Duplicates += b.Duplicates
	s.Pending += b.Pending
	s.Linked += b.Linked
	s.SelfRefs += b.SelfRefs
	s.Mirrored += b.Mirrored
	s.Dangling += b.Dangling
}

// Option configures Load and LoadFile.
type Option func(*options)

type options struct {
	logger *slog.Logger
	strict bool
}

func defaultOptions() options {
	return options{logger: logging.Discard()}
}

// WithLogger routes load diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrict validates every entity (see entity.Validate) and fails the load
// with ErrInvalidRow on the first violation. By default rows are accepted as is.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}
