// SPDX-License-Identifier: MIT
// Package core defines the Graph and Vertex types, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"

	"github.com/katalvlaran/netanalyzer/entity"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates a nil *Graph was supplied.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrInvariant indicates that Verify found adjacency or counters out of sync.
	ErrInvariant = errors.New("core: graph invariant violated")
)

// Vertex wraps one Entity and its ordered neighbor list.
//
// A Vertex is owned by exactly one Graph. Callers may hold *Vertex references
// returned by lookups, but every mutation must go through Graph methods.
type Vertex struct {
	entity    entity.Entity
	neighbors []int64 // edge-addition order; ids resolved through Graph.vertices
}

// ID returns the entity identifier.
func (v *Vertex) ID() int64 { return v.entity.ID }

// Entity returns a copy of the immutable entity record.
func (v *Vertex) Entity() entity.Entity { return v.entity }

// Name is shorthand for Entity().Name.
func (v *Vertex) Name() string { return v.entity.Name }

// Degree returns the number of neighbors.
func (v *Vertex) Degree() int { return len(v.neighbors) }

// NeighborIDs returns a copy of the neighbor list in adjacency order.
func (v *Vertex) NeighborIDs() []int64 {
	out := make([]int64, len(v.neighbors))
	copy(out, v.neighbors)

	return out
}

// hasNeighbor reports whether id is present in the neighbor list.
func (v *Vertex) hasNeighbor(id int64) bool {
	return indexOf(v.neighbors, id) >= 0
}

// dropNeighbor removes the first occurrence of id, preserving order.
// It reports whether an entry was removed.
func (v *Vertex) dropNeighbor(id int64) bool {
	i := indexOf(v.neighbors, id)
	if i < 0 {
		return false
	}
	v.neighbors = append(v.neighbors[:i], v.neighbors[i+1:]...)

	return true
}

// Graph is the network graph engine.
//
// vertices maps id → Vertex; order keeps ids in insertion order so that every
// enumeration (components, lookups, connector discovery) is deterministic.
type Graph struct {
	vertices  map[int64]*Vertex
	order     []int64
	edgeCount int
}

// NewGraph constructs an empty Graph.
//
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[int64]*Vertex),
		order:    make([]int64, 0),
	}
}

// indexOf returns the first index of id in s, or -1 if absent.
func indexOf(s []int64, id int64) int {
	for i, x := range s {
		if x == id {
			return i
		}
	}

	return -1
}
