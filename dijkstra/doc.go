// Package dijkstra provides single-source shortest paths over a core.Graph
// and the closeness centrality measure built on them.
//
// Overview:
//
//   - Every roster edge costs 1, so distances are hop counts.
//   - Dijkstra expands the next-closest vertex from a min-heap. Improved
//     distances are pushed as new heap entries; an entry whose recorded
//     distance exceeds the current best is stale and skipped when popped.
//   - Tie-breaking among equal distances is arbitrary. It never changes a
//     distance, so it never changes closeness.
//
// Closeness:
//
//   - Raw closeness of v is Σ 1/d(v, u) over every other vertex u at finite,
//     non-zero distance. Unreachable vertices contribute nothing, so an
//     isolated vertex scores 0.
//   - Normalized closeness is Raw/(n−1) for n > 1 vertices, else 0. Use
//     Normalize directly or ClosenessOf to get both values in a Score.
//
// Each vertex is settled once and each improving relaxation pushes one heap
// entry, so a run costs O((V + E) log V) time and O(V + E) memory.
//
// Bad input yields ErrNilGraph, ErrVertexNotFound (wrapped with the id) or
// ErrBadMaxDistance.
//
// Usage:
//
//	s, err := dijkstra.ClosenessOf(g, id)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%.2f (normalized %.2f)\n", s.Raw, s.Normalized)
package dijkstra
