// Package core provides the in-memory network graph engine: an undirected,
// unweighted simple graph whose vertices carry an immutable entity.Entity.
//
// The Graph G = (V,E) is stored as an id-keyed arena:
//
//   - vertices: map[int64]*Vertex, plus an insertion-order slice of ids
//   - each Vertex owns an ordered neighbor list of ids (edge-addition order)
//   - edgeCount: number of unordered pairs joined by a live mutual edge
//
// Neighbor entries are ids resolved through the arena, never aliased vertex
// pointers, so deleting a vertex cannot leave a dangling reference behind.
//
// Invariants (held after every exported mutation):
//
//   - Symmetry: u lists v as a neighbor iff v lists u.
//   - Simplicity: no self-loops, no duplicate neighbor entries.
//   - Count: EdgeCount() equals the number of symmetric pairs. It is kept in
//     sync incrementally by AddEdge/RemoveEdge/DeleteVertex; Verify() recounts
//     from scratch and exists for tests and diagnostics only.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(e entity.Entity) bool           // O(1); false if the id already exists
//	DeleteVertex(id int64) (int, error)       // O(deg(v)·d̄ + V)
//	HasVertex(id int64) bool                  // O(1)
//	Vertex(id int64) (*Vertex, error)         // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int64) bool                  // O(deg(u)); false on loop/duplicate/missing endpoint
//	RemoveEdge(u, v int64) bool               // O(deg(u)+deg(v))
//	HasEdge(u, v int64) bool                  // O(deg(u))
//
//	// Query
//	Vertices() []*Vertex                      // insertion order
//	IDs() []int64                             // insertion order
//	Neighbors(id int64) ([]int64, error)      // adjacency order (copy)
//	FindByName(name string) (*Vertex, error)  // first case-insensitive match
//	VertexCount(), EdgeCount() int            // O(1)
//
// Concurrency:
//
//	A Graph is a single mutable resource without internal locking. It is
//	designed for one logical caller (an interactive session) performing one
//	operation at a time; concurrent use requires external synchronization.
//
// Errors:
//
//	ErrGraphNil        - nil *Graph passed to a package-level helper.
//	ErrVertexNotFound  - lookup by id or by name found nothing.
//	ErrInvariant       - Verify detected broken symmetry or a stale edge count.
package core
