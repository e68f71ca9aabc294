package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netanalyzer/core"
)

// ErrNeighbors wraps a failed neighbor lookup during the walk.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

type queueItem struct {
	id        int64
	depth     int
	parent    int64
	hasParent bool // false for the root
}

// walker holds one search's frontier. visited may be shared between
// walkers so that a component sweep never revisits a vertex.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	head    int
	visited map[int64]bool
	res     *BFSResult
}

// BFS searches g outward from startID. Input problems surface as
// ErrGraphNil, ErrStartVertexNotFound or ErrOptionViolation; a walk that
// starts may still end with ErrNeighbors, the context error or the
// OnVisit error.
func BFS(g *core.Graph, startID int64, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := newWalker(g, o, make(map[int64]bool, n), n)
	w.enqueue(queueItem{id: startID})

	return w.res, w.loop()
}

func newWalker(g *core.Graph, o BFSOptions, visited map[int64]bool, capacity int) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, capacity),
		visited: visited,
		res: &BFSResult{
			Order:  make([]int64, 0, capacity),
			Depth:  make(map[int64]int, capacity),
			Parent: make(map[int64]int64, capacity),
		},
	}
}

// enqueue discovers item: it is marked before it is processed so that no
// vertex enters the frontier twice.
func (w *walker) enqueue(item queueItem) {
	w.visited[item.id] = true
	w.res.Depth[item.id] = item.depth
	if item.hasParent {
		w.res.Parent[item.id] = item.parent
	}
	w.opts.OnEnqueue(item.id, item.depth)
	w.queue = append(w.queue, item)
}

func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[w.head]
		w.head++
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: visiting %d: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand discovers the unseen neighbors of item in adjacency order,
// honoring MaxDepth and FilterNeighbor.
func (w *walker) expand(item queueItem) error {
	nbrs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, item.id, err)
	}
	depth := item.depth + 1
	if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
		return nil
	}
	for _, v := range nbrs {
		if w.visited[v] || !w.opts.FilterNeighbor(item.id, v) {
			continue
		}
		w.enqueue(queueItem{id: v, depth: depth, parent: item.id, hasParent: true})
	}

	return nil
}
