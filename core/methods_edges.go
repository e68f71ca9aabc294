// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount/Edges.
//
// Determinism:
//   - Neighbor lists keep edge-addition order; Edges() walks vertices in
//     insertion order and emits each unordered pair once.
package core

// AddEdge joins u and v with an undirected edge.
//
// Behavior highlights:
//   - No-op (false) if u == v, if either endpoint is missing, or if the edge
//     already exists (membership in u's neighbor list).
//   - Otherwise appends each endpoint to the other's list and increments
//     EdgeCount.
//
// Complexity: O(deg(u))
func (g *Graph) AddEdge(u, v int64) bool {
	if u == v {
		return false
	}
	a, okA := g.vertices[u]
	b, okB := g.vertices[v]
	if !okA || !okB {
		return false
	}
	if a.hasNeighbor(v) {
		return false
	}
	a.neighbors = append(a.neighbors, v)
	b.neighbors = append(b.neighbors, u)
	g.edgeCount++

	return true
}

// RemoveEdge removes the undirected edge between u and v.
//
// Behavior highlights:
//   - true (and EdgeCount decremented) only if both sides held the reference.
//   - If exactly one side held it, the stray reference is cleaned up and the
//     call reports false without touching EdgeCount.
//   - false if neither side held it or an endpoint is missing.
//
// Complexity: O(deg(u) + deg(v))
func (g *Graph) RemoveEdge(u, v int64) bool {
	a, okA := g.vertices[u]
	b, okB := g.vertices[v]
	if !okA || !okB {
		return false
	}
	removedA := a.dropNeighbor(v)
	removedB := b.dropNeighbor(u)
	if removedA && removedB {
		g.edgeCount--

		return true
	}
	// An asymmetric entry was dropped above; nothing was counted for it.
	return false
}

// HasEdge reports whether u and v are joined by an edge.
func (g *Graph) HasEdge(u, v int64) bool {
	a, ok := g.vertices[u]
	if !ok {
		return false
	}

	return a.hasNeighbor(v)
}

// EdgeCount returns the number of undirected edges. O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Edge is an unordered vertex pair reported by Edges, normalized so From < To.
type Edge struct {
	From int64
	To   int64
}

// Edges returns every undirected edge once, normalized so From < To,
// in vertex insertion order then adjacency order.
//
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, id := range g.order {
		for _, nid := range g.vertices[id].neighbors {
			if id < nid {
				out = append(out, Edge{From: id, To: nid})
			}
		}
	}

	return out
}
