package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/netanalyzer/core"
)

// edgeCost is the weight of every roster edge.
const edgeCost = 1

// infinity marks a vertex not yet reached.
const infinity = math.MaxInt

// Dijkstra computes hop distances from the source vertex (Options.Source)
// to every vertex of g.
//
// Returns:
//
//   - dist: map from vertex ID to distance; Unreachable for vertices not reached.
//   - prev: predecessor map if ReturnPath was requested (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u. The source
//     and unreachable vertices have no entry.
//   - err:  ErrNilGraph, ErrVertexNotFound or ErrBadMaxDistance.
func Dijkstra(g *core.Graph, opts ...Option) (map[int64]int, map[int64]int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int64]int, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int64]int64, V)
	}

	r.seed()
	if err := r.drain(); err != nil {
		return nil, nil, err
	}

	for id, d := range r.dist {
		if d == infinity {
			r.dist[id] = Unreachable
		}
	}

	return r.dist, r.prev, nil
}

type runner struct {
	g       *core.Graph
	options Options
	dist    map[int64]int
	prev    map[int64]int64 // nil unless ReturnPath
	pq      nodePQ
}

func (r *runner) seed() {
	for _, id := range r.g.IDs() {
		r.dist[id] = infinity
	}
	r.dist[r.options.Source] = 0

	heap.Push(&r.pq, nodeItem{id: r.options.Source})
}

// drain settles vertices closest first. A popped entry carrying more than
// the best known distance was superseded and is dropped.
func (r *runner) drain() error {
	for len(r.pq) > 0 {
		next := heap.Pop(&r.pq).(nodeItem)
		if next.dist > r.dist[next.id] {
			continue
		}
		if err := r.relax(next.id); err != nil {
			return err
		}
	}

	return nil
}

// relax offers dist[u]+1 to every neighbor of u. Ties are not pushed.
func (r *runner) relax(u int64) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	d := r.dist[u] + edgeCost
	if d > r.options.MaxDistance {
		return nil
	}
	for _, v := range nbrs {
		if d >= r.dist[v] {
			continue
		}
		r.dist[v] = d
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, nodeItem{id: v, dist: d})
	}

	return nil
}

type nodeItem struct {
	id   int64
	dist int // distance when pushed
}

// nodePQ orders pending vertices by distance for container/heap. Superseded
// entries stay in place until popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	last := len(*pq) - 1
	item := (*pq)[last]
	*pq = (*pq)[:last]

	return item
}
