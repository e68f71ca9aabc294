package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/netanalyzer/core"
)

var (
	// ErrGraphNil is returned by DFS, Connectors and Analyze for a nil graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound means a single-tree walk was seeded with an unknown id.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option adjusts one DFS call.
type Option func(*DFSOptions)

// DFSOptions is the resolved configuration of a walk. Hooks and filters are
// called once per vertex or edge, so cheap callbacks keep the walk linear.
type DFSOptions struct {
	// Ctx is checked on entry to every vertex.
	Ctx context.Context

	// OnVisit runs when a vertex is entered, before any of its neighbors.
	OnVisit func(id int64) error

	// OnExit runs once the subtree below a vertex is finished. Either hook
	// failing ends the walk and clears Order.
	OnExit func(id int64) error

	// MaxDepth is the deepest level entered; -1 lifts the bound and 0 keeps
	// the walk on the start vertex.
	MaxDepth int

	// FilterNeighbor returning false hides a neighbor from the walk.
	FilterNeighbor func(id int64) bool

	// FullTraversal reseeds the walk at every unvisited vertex so that all
	// components are covered.
	FullTraversal bool

	// SkippedNeighbors counts FilterNeighbor vetoes.
	SkippedNeighbors int
}

// DefaultOptions is a single-tree walk with no bound, no filter and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext aborts the walk with ctx.Err() once ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the entry hook.
func WithOnVisit(fn func(id int64) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit sets the exit hook.
func WithOnExit(fn func(id int64) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth bounds the walk to limit levels below the start.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor hides every neighbor for which fn is false.
func WithFilterNeighbor(fn func(id int64) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal walks every component, seeding in vertex insertion order.
// The startID passed to DFS is then ignored.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult is what a walk reached.
type DFSResult struct {
	// Order lists vertices as they finished, children before parents.
	Order []int64

	// Depth is the tree level at which each vertex was entered.
	Depth map[int64]int

	// Parent holds the tree edge into every entered vertex except the roots.
	Parent map[int64]int64

	// Visited is the set of entered vertices.
	Visited map[int64]bool

	// SkippedNeighbors copies the filter veto count of the whole walk.
	SkippedNeighbors int
}

// ArticulationResult is the outcome of Analyze.
type ArticulationResult struct {
	// Points lists connector vertices, deduplicated, in first-marked order.
	Points []int64

	// Bridges lists edges whose removal disconnects their component,
	// normalized so that From < To, in discovery order.
	Bridges []core.Edge

	// Roots lists the root of every DFS tree, one per connected component,
	// in graph insertion order.
	Roots []int64

	// VisitOrder maps each vertex to its 1-based discovery number. The
	// counter is shared by all trees of the run.
	VisitOrder map[int64]int

	// Low maps each vertex to its low-link value.
	Low map[int64]int
}

// IsPoint reports whether id was marked as a connector.
func (r *ArticulationResult) IsPoint(id int64) bool {
	for _, p := range r.Points {
		if p == id {
			return true
		}
	}

	return false
}
