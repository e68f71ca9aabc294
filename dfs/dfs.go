package dfs

import (
	"fmt"

	"github.com/katalvlaran/netanalyzer/core"
)

type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS walks g depth first from startID, or from every component with
// WithFullTraversal. Neighbors are taken in adjacency order. On a hook or
// context error the partial result comes back alongside the error.
func DFS(g *core.Graph, startID int64, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &dfsWalker{graph: g, opts: o, res: &DFSResult{
		Order:   make([]int64, 0, n),
		Depth:   make(map[int64]int, n),
		Parent:  make(map[int64]int64, n),
		Visited: make(map[int64]bool, n),
	}}

	roots := []int64{startID}
	if o.FullTraversal {
		roots = g.IDs()
	}
	for _, root := range roots {
		if w.res.Visited[root] {
			continue
		}
		if err := w.enter(root, 0); err != nil {
			return w.res, err
		}
	}
	w.res.SkippedNeighbors = w.opts.SkippedNeighbors

	return w.res, nil
}

// enter visits id at the given tree level and recurses into its unvisited
// neighbors. The caller guarantees depth is within MaxDepth.
func (w *dfsWalker) enter(id int64, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: entering %d: %w", id, err)
		}
	}

	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: neighbors of %d: %w", id, err)
	}
	deeper := w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth
	for _, v := range nbrs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[v] || !deeper {
			continue
		}
		w.res.Parent[v] = id
		if err := w.enter(v, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: leaving %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
