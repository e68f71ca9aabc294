// Package bfs walks a core.Graph layer by layer. Hop distances, the
// connected-component sweep and the attribute-filtered connection groups
// all sit on the same walker.
//
// BFS returns a BFSResult with three views of one search:
//
//   - Order: vertices as they left the frontier
//   - Depth: hops from the start for every reached vertex
//   - Parent: the tree edge each reached vertex was discovered through
//
// Hooks observe a vertex when it is discovered (OnEnqueue), when it leaves
// the frontier (OnDequeue) and when it is processed (OnVisit, which may stop
// the search). WithFilterNeighbor vetoes single edges and WithMaxDepth caps
// the radius.
//
// Components partitions the graph, and GroupByAttribute keeps in each part
// only the members whose affiliation or category equals a value ignoring case.
//
// Ordering is reproducible: neighbors are discovered in edge-addition order
// and components are seeded in vertex insertion order.
//
// A full search costs O(V + E) time and O(V) memory.
//
//	res, err := bfs.BFS(g, startID, bfs.WithMaxDepth(3))
//	groups, err := bfs.GroupByAttribute(g, entity.AttrAffiliation, "North")
//
// Failures are ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, a context error or the wrapped OnVisit error.
package bfs
