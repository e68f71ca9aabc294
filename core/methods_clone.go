// File: methods_clone.go
// Role: Cloning and integrity checks.
package core

import "fmt"

// Clone returns a deep copy of the Graph: vertices, neighbor lists (same
// order), insertion order and EdgeCount. Entities are values and are copied.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		vertices:  make(map[int64]*Vertex, len(g.vertices)),
		order:     make([]int64, len(g.order)),
		edgeCount: g.edgeCount,
	}
	copy(clone.order, g.order)
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{entity: v.entity, neighbors: v.NeighborIDs()}
	}

	return clone
}

// Verify recounts the graph from scratch and checks every invariant:
// symmetry, no self-loops, no duplicate neighbor entries, no dangling ids,
// order/arena agreement, and EdgeCount equal to the number of symmetric pairs.
//
// Verify never repairs anything; it is a diagnostic for tests and debugging.
//
// Complexity: O(V + E·d̄)
func (g *Graph) Verify() error {
	if len(g.order) != len(g.vertices) {
		return fmt.Errorf("%w: order has %d ids, arena has %d", ErrInvariant, len(g.order), len(g.vertices))
	}
	pairs := 0
	for _, id := range g.order {
		v, ok := g.vertices[id]
		if !ok {
			return fmt.Errorf("%w: ordered id %d missing from arena", ErrInvariant, id)
		}
		seen := make(map[int64]struct{}, len(v.neighbors))
		for _, nid := range v.neighbors {
			if nid == id {
				return fmt.Errorf("%w: self-loop on %d", ErrInvariant, id)
			}
			if _, dup := seen[nid]; dup {
				return fmt.Errorf("%w: duplicate neighbor %d on %d", ErrInvariant, nid, id)
			}
			seen[nid] = struct{}{}
			n, ok := g.vertices[nid]
			if !ok {
				return fmt.Errorf("%w: dangling neighbor %d on %d", ErrInvariant, nid, id)
			}
			if !n.hasNeighbor(id) {
				return fmt.Errorf("%w: %d lists %d but not vice versa", ErrInvariant, id, nid)
			}
			if id < nid {
				pairs++
			}
		}
	}
	if pairs != g.edgeCount {
		return fmt.Errorf("%w: edgeCount=%d, symmetric pairs=%d", ErrInvariant, g.edgeCount, pairs)
	}

	return nil
}
