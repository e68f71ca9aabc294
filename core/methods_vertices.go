// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and IDs() return insertion order (load order of the roster).
//
// Concurrency:
//   - None. Callers serialize access (see package doc).
package core

import (
	"fmt"

	"github.com/katalvlaran/netanalyzer/entity"
)

// AddVertex inserts a vertex for e if no vertex with e.ID exists yet.
//
// Behavior highlights:
//   - Idempotent per id: a later entity with a duplicate id neither overwrites
//     nor duplicates the existing vertex; the first one wins.
//
// Returns:
//   - bool: true iff a new vertex was created.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(e entity.Entity) bool {
	if _, exists := g.vertices[e.ID]; exists {
		return false // first row wins
	}
	g.vertices[e.ID] = &Vertex{entity: e, neighbors: make([]int64, 0)}
	g.order = append(g.order, e.ID)

	return true
}

// HasVertex reports whether a vertex with the given id exists.
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given id, or ErrVertexNotFound.
func (g *Graph) Vertex(id int64) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}

	return v, nil
}

// Vertices returns all vertices in insertion order.
//
// Complexity: O(V)
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.vertices[id])
	}

	return out
}

// IDs returns all vertex ids in insertion order.
func (g *Graph) IDs() []int64 {
	out := make([]int64, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Neighbors returns a copy of id's neighbor list in adjacency order.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
func (g *Graph) Neighbors(id int64) ([]int64, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return nil, err
	}

	return v.NeighborIDs(), nil
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id int64) (int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return 0, err
	}

	return v.Degree(), nil
}

// DeleteVertex removes the vertex and every incident edge.
//
// Implementation:
//   - Stage 1: Resolve the vertex (ErrVertexNotFound).
//   - Stage 2: For each current neighbor, drop the back-reference and
//     decrement edgeCount once per removed incident edge.
//   - Stage 3: Clear the vertex's own list, then remove it from the arena and
//     from the insertion order.
//
// Behavior highlights:
//   - Equivalent to RemoveEdge on every incident edge followed by removal of
//     an isolated vertex: EdgeCount drops by exactly deg(v).
//
// Returns:
//   - int: number of incident edges removed.
//   - error: ErrVertexNotFound if id is absent.
//
// Complexity:
//   - Time O(Σ deg(n) for n ∈ N(v) + V), Space O(1).
func (g *Graph) DeleteVertex(id int64) (int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, nid := range v.neighbors {
		n, ok := g.vertices[nid]
		if !ok {
			continue
		}
		if n.dropNeighbor(id) {
			g.edgeCount--
			removed++
		}
	}
	v.neighbors = v.neighbors[:0]

	delete(g.vertices, id)
	if i := indexOf(g.order, id); i >= 0 {
		g.order = append(g.order[:i], g.order[i+1:]...)
	}

	return removed, nil
}
