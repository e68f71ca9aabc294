// SPDX-License-Identifier: MIT
package network

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/netanalyzer/bfs"
	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/dfs"
	"github.com/katalvlaran/netanalyzer/dijkstra"
	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/loader"
	"github.com/katalvlaran/netanalyzer/metrics"
)

// Network guards one graph and exposes the analyzer operations by name.
type Network struct {
	mu sync.RWMutex
	g  *core.Graph

	log      *slog.Logger
	rec      *metrics.Recorder
	loadOpts []loader.Option
}

// New wraps an already built graph.
func New(g *core.Graph, opts ...Option) (*Network, error) {
	if g == nil {
		return nil, ErrNoGraph
	}
	n := defaultNetwork()
	for _, opt := range opts {
		opt(n)
	}
	n.g = g
	n.publishSize()

	return n, nil
}

// Open loads the roster at path and wraps the resulting graph.
func Open(path string, opts ...Option) (*Network, loader.Stats, error) {
	n := defaultNetwork()
	for _, opt := range opts {
		opt(n)
	}
	g, stats, err := n.load(path)
	if err != nil {
		return nil, stats, err
	}
	n.g = g
	n.publishSize()

	return n, stats, nil
}

// Reload replaces the graph with a fresh load of path. On error the current
// graph is kept.
func (n *Network) Reload(path string) (loader.Stats, error) {
	g, stats, err := n.load(path)
	if err != nil {
		return stats, err
	}
	n.mu.Lock()
	n.g = g
	n.publishSize()
	n.mu.Unlock()

	return stats, nil
}

func (n *Network) load(path string) (*core.Graph, loader.Stats, error) {
	start := time.Now()
	opts := append([]loader.Option{loader.WithLogger(n.log)}, n.loadOpts...)
	g, stats, err := loader.LoadFile(path, opts...)
	if err != nil {
		n.done(OpLoad, start, metrics.OutcomeError, slog.String("path", path), slog.Any("error", err))
		return nil, stats, err
	}
	n.rec.RecordLoad(metrics.LoadCounts{
		Accepted:   stats.Rows - stats.Duplicates,
		Skipped:    stats.Skipped,
		Blank:      stats.Blank,
		Duplicates: stats.Duplicates,
		Linked:     stats.Linked,
		SelfRefs:   stats.SelfRefs,
		Mirrored:   stats.Mirrored,
		Dangling:   stats.Dangling,
	})
	n.done(OpLoad, start, metrics.OutcomeOK, slog.String("path", path),
		slog.Int("vertices", g.VertexCount()), slog.Int("edges", g.EdgeCount()))

	return g, stats, nil
}

// done logs and records one finished operation.
func (n *Network) done(op string, start time.Time, outcome string, attrs ...any) {
	elapsed := time.Since(start)
	n.rec.RecordOperation(op, outcome, elapsed)
	attrs = append(attrs, slog.String("outcome", outcome), slog.Duration("elapsed", elapsed))
	n.log.Debug(op, attrs...)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, core.ErrVertexNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

// publishSize sets the size gauges. Mutators call it before releasing the
// write lock so that the gauges follow the order of the mutations.
func (n *Network) publishSize() {
	n.rec.SetGraphSize(n.g.VertexCount(), n.g.EdgeCount())
}

// Summary returns the current vertex and edge counts.
func (n *Network) Summary() Summary {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return Summary{Vertices: n.g.VertexCount(), Edges: n.g.EdgeCount()}
}

// VertexCount returns the number of vertices.
func (n *Network) VertexCount() int { return n.Summary().Vertices }

// EdgeCount returns the number of undirected edges.
func (n *Network) EdgeCount() int { return n.Summary().Edges }

// View runs fn with shared access to the graph. fn must not mutate g or
// retain it after returning.
func (n *Network) View(fn func(g *core.Graph) error) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return fn(n.g)
}

// resolve looks up every name, collecting the misses. Caller holds mu.
func (n *Network) resolve(names ...string) ([]*core.Vertex, error) {
	out := make([]*core.Vertex, len(names))
	var missing []string
	for i, name := range names {
		v, err := n.g.FindByName(name)
		if err != nil {
			missing = append(missing, name)
			continue
		}
		out[i] = v
	}
	if len(missing) > 0 {
		return nil, &NotFoundError{Names: missing}
	}

	return out, nil
}

// Find returns the first entity named name, ignoring case.
func (n *Network) Find(name string) (entity.Entity, error) {
	start := time.Now()
	n.mu.RLock()
	vs, err := n.resolve(name)
	n.mu.RUnlock()
	n.done(OpFind, start, outcomeOf(err), slog.String("name", name))
	if err != nil {
		return entity.Entity{}, err
	}

	return vs[0].Entity(), nil
}

// Ambiguous returns every entity sharing name when there is more than one.
func (n *Network) Ambiguous(name string) []entity.Entity {
	n.mu.RLock()
	defer n.mu.RUnlock()
	all := n.g.FindAllByName(name)
	if len(all) < 2 {
		return nil
	}

	return entities(all)
}

// Connections returns the entity named name and its neighbors in adjacency
// order.
func (n *Network) Connections(name string) (entity.Entity, []entity.Entity, error) {
	start := time.Now()
	n.mu.RLock()
	defer n.mu.RUnlock()

	vs, err := n.resolve(name)
	if err != nil {
		n.done(OpConnections, start, outcomeOf(err), slog.String("name", name))
		return entity.Entity{}, nil, err
	}
	v := vs[0]
	nbrs := make([]entity.Entity, 0, v.Degree())
	for _, id := range v.NeighborIDs() {
		nv, err := n.g.Vertex(id)
		if err != nil {
			continue
		}
		nbrs = append(nbrs, nv.Entity())
	}
	n.done(OpConnections, start, metrics.OutcomeOK, slog.String("name", name), slog.Int("degree", len(nbrs)))

	return v.Entity(), nbrs, nil
}

// RemoveConnection removes the edge between the entities named a and b.
// Removal.Removed is false with a nil error when both exist but are not
// adjacent.
func (n *Network) RemoveConnection(a, b string) (Removal, error) {
	start := time.Now()
	n.mu.Lock()
	vs, err := n.resolve(a, b)
	var r Removal
	if err == nil {
		r.A, r.B = vs[0].Entity(), vs[1].Entity()
		r.Removed = n.g.RemoveEdge(r.A.ID, r.B.ID)
		if r.Removed {
			n.publishSize()
		}
	}
	n.mu.Unlock()

	outcome := outcomeOf(err)
	if err == nil && !r.Removed {
		outcome = metrics.OutcomeNoop
	}
	n.done(OpRemoveConnection, start, outcome, slog.String("a", a), slog.String("b", b))

	return r, err
}

// DeleteNode deletes the entity named name with all its edges and returns
// the deleted entity and the number of edges removed.
func (n *Network) DeleteNode(name string) (entity.Entity, int, error) {
	start := time.Now()
	n.mu.Lock()
	vs, err := n.resolve(name)
	var (
		e       entity.Entity
		removed int
	)
	if err == nil {
		e = vs[0].Entity()
		removed, err = n.g.DeleteVertex(e.ID)
		if err == nil {
			n.publishSize()
		}
	}
	n.mu.Unlock()

	n.done(OpDeleteNode, start, outcomeOf(err), slog.String("name", name), slog.Int("edges_removed", removed))
	if err != nil {
		return entity.Entity{}, 0, err
	}

	return e, removed, nil
}

// ConnectionGroups returns, per connected component, the members whose attr
// equals value (case-insensitively), in BFS order. Empty groups are omitted.
func (n *Network) ConnectionGroups(attr entity.Attribute, value string) ([][]entity.Entity, error) {
	start := time.Now()
	n.mu.RLock()
	defer n.mu.RUnlock()

	groups, err := bfs.GroupByAttribute(n.g, attr, value)
	if err != nil {
		n.done(OpGroups, start, outcomeOf(err), slog.String("attr", attr.String()), slog.String("value", value))
		return nil, err
	}
	out := make([][]entity.Entity, 0, len(groups))
	for _, ids := range groups {
		out = append(out, n.entitiesOf(ids))
	}
	n.done(OpGroups, start, metrics.OutcomeOK,
		slog.String("attr", attr.String()), slog.String("value", value), slog.Int("groups", len(out)))

	return out, nil
}

// Closeness returns the entity named name and its closeness score.
func (n *Network) Closeness(name string) (entity.Entity, dijkstra.Score, error) {
	start := time.Now()
	n.mu.RLock()
	defer n.mu.RUnlock()

	vs, err := n.resolve(name)
	if err != nil {
		n.done(OpCloseness, start, outcomeOf(err), slog.String("name", name))
		return entity.Entity{}, dijkstra.Score{}, err
	}
	score, err := dijkstra.ClosenessOf(n.g, vs[0].ID())
	n.done(OpCloseness, start, outcomeOf(err), slog.String("name", name), slog.Float64("raw", score.Raw))
	if err != nil {
		return entity.Entity{}, dijkstra.Score{}, err
	}

	return vs[0].Entity(), score, nil
}

// Connectors returns every articulation vertex in first-discovered order.
func (n *Network) Connectors() ([]entity.Entity, error) {
	start := time.Now()
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids, err := dfs.Connectors(n.g)
	n.done(OpConnectors, start, outcomeOf(err), slog.Int("connectors", len(ids)))
	if err != nil {
		return nil, err
	}

	return n.entitiesOf(ids), nil
}

// ImpactOfRemoval reports what DeleteNode(name) would do without changing
// the graph.
func (n *Network) ImpactOfRemoval(name string) (ImpactReport, error) {
	start := time.Now()
	n.mu.RLock()
	vs, err := n.resolve(name)
	var c *core.Graph
	if err == nil {
		c = n.g.Clone()
	}
	n.mu.RUnlock()
	if err != nil {
		n.done(OpImpact, start, outcomeOf(err), slog.String("name", name))
		return ImpactReport{}, err
	}

	report, err := impact(c, vs[0].Entity())
	n.done(OpImpact, start, outcomeOf(err), slog.String("name", name), slog.Int("fragments", len(report.Fragments)))

	return report, err
}

// impact deletes e from c, a private copy, and measures the fragments left
// behind by walking from each former neighbor.
func impact(c *core.Graph, e entity.Entity) (ImpactReport, error) {
	r := ImpactReport{Node: e}
	before, err := bfs.Components(c)
	if err != nil {
		return r, err
	}
	r.ComponentsBefore = len(before)

	nbrs, err := c.Neighbors(e.ID)
	if err != nil {
		return r, err
	}
	if r.EdgesRemoved, err = c.DeleteVertex(e.ID); err != nil {
		return r, err
	}

	seen := make(map[int64]bool, c.VertexCount())
	for _, id := range nbrs {
		if seen[id] {
			continue
		}
		res, err := dfs.DFS(c, id)
		if err != nil {
			return r, fmt.Errorf("network: fragment walk from %d: %w", id, err)
		}
		for v := range res.Visited {
			seen[v] = true
		}
		r.Fragments = append(r.Fragments, len(res.Order))
	}

	after, err := bfs.Components(c)
	if err != nil {
		return r, err
	}
	r.ComponentsAfter = len(after)

	return r, nil
}

// entitiesOf maps ids to entities, skipping unknown ids. Caller holds mu.
func (n *Network) entitiesOf(ids []int64) []entity.Entity {
	out := make([]entity.Entity, 0, len(ids))
	for _, id := range ids {
		if v, err := n.g.Vertex(id); err == nil {
			out = append(out, v.Entity())
		}
	}

	return out
}

func entities(vs []*core.Vertex) []entity.Entity {
	out := make([]entity.Entity, len(vs))
	for i, v := range vs {
		out[i] = v.Entity()
	}

	return out
}
