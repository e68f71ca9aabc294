// SPDX-License-Identifier: MIT
package network

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/loader"
	"github.com/katalvlaran/netanalyzer/logging"
	"github.com/katalvlaran/netanalyzer/metrics"
)

// Operation names used in logs and metric labels.
const (
	OpLoad             = "load"
	OpFind             = "find"
	OpConnections      = "connections"
	OpRemoveConnection = "remove_connection"
	OpDeleteNode       = "delete_node"
	OpGroups           = "connection_groups"
	OpCloseness        = "closeness"
	OpConnectors       = "connectors"
	OpImpact           = "impact"
)

// ErrNoGraph is returned by New when given a nil graph.
var ErrNoGraph = errors.New("network: graph is nil")

// NotFoundError lists every name of a request that matched no vertex.
// It unwraps to core.ErrVertexNotFound.
type NotFoundError struct {
	Names []string
}

func (e *NotFoundError) Error() string {
	return "network: not found: " + strings.Join(e.Names, ", ")
}

func (e *NotFoundError) Unwrap() error { return core.ErrVertexNotFound }

// Summary is the size of the graph at one instant.
type Summary struct {
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
}

// Removal is the outcome of RemoveConnection: the two resolved entities and
// whether an edge between them was removed.
type Removal struct {
	A, B    entity.Entity
	Removed bool
}

// ImpactReport describes what deleting one vertex would do, computed on a
// copy of the graph.
type ImpactReport struct {
	Node entity.Entity
	// ComponentsBefore and ComponentsAfter count connected components.
	ComponentsBefore int
	ComponentsAfter  int
	// EdgesRemoved is the degree of Node.
	EdgesRemoved int
	// Fragments holds the size of each component that contained a former
	// neighbor of Node, in neighbor order.
	Fragments []int
}

// Splits reports whether deleting Node would disconnect its component.
func (r ImpactReport) Splits() bool { return len(r.Fragments) > 1 }

// Option configures a Network.
type Option func(*Network)

// WithLogger routes operation logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithMetrics records every operation on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(n *Network) { n.rec = r }
}

// WithLoadOptions passes extra options to the loader used by Open and Reload.
func WithLoadOptions(opts ...loader.Option) Option {
	return func(n *Network) { n.loadOpts = append(n.loadOpts, opts...) }
}

func defaultNetwork() *Network {
	return &Network{log: logging.Discard()}
}
