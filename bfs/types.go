package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound means the search was seeded with an id the graph does not hold.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation wraps every rejected Option.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes a single search. A bad value does not panic; it is kept
// and reported as ErrOptionViolation before any vertex is touched.
type Option func(*BFSOptions)

// BFSOptions is the resolved set of knobs for one search.
type BFSOptions struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// OnEnqueue sees every vertex at the moment it is discovered, with the
	// number of hops from the start.
	OnEnqueue func(id int64, depth int)

	// OnDequeue sees a vertex as it leaves the frontier.
	OnDequeue func(id int64, depth int)

	// OnVisit runs after OnDequeue. A non-nil error ends the search and is
	// returned wrapped.
	OnVisit func(id int64, depth int) error

	// MaxDepth bounds discovery to that many hops; zero means unbounded.
	MaxDepth int

	// FilterNeighbor decides per edge (curr, neighbor) whether the walk may cross it.
	FilterNeighbor func(curr, neighbor int64) bool

	err error
}

// DefaultOptions is an unbounded, unfiltered search under
// context.Background with hooks that do nothing.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int64, int) {},
		OnDequeue:      func(int64, int) {},
		OnVisit:        func(int64, int) error { return nil },
		FilterNeighbor: func(_, _ int64) bool { return true },
	}
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs the discovery hook. nil keeps the no-op.
func WithOnEnqueue(fn func(id int64, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs the frontier-exit hook.
func WithOnDequeue(fn func(id int64, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs the visit hook; its error aborts the search.
func WithOnVisit(fn func(id int64, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovery past d hops. Zero lifts the bound and a
// negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth bound %d is negative", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor lets fn veto edges; a false return leaves neighbor
// undiscovered from curr.
func WithFilterNeighbor(fn func(curr, neighbor int64) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is what one search saw. Order lists vertices as they left the
// frontier, Depth holds hop counts from the start and Parent links every
// reached vertex except the start back toward it.
type BFSResult struct {
	Order  []int64
	Depth  map[int64]int
	Parent map[int64]int64
}

// PathTo walks Parent links back from dest and returns the hops start..dest.
func (r *BFSResult) PathTo(dest int64) ([]int64, error) {
	hops, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int64, hops+1)
	cur := dest
	for i := hops; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
