// Package dfs implements depth‑first search traversal and connector
// (articulation point) detection on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre‑order and post‑order hooks, cancellation
//     via context.Context, depth limiting, neighbor filtering and forest
//     traversal over every component.
//   - Connectors: the vertices whose removal splits their connected
//     component, found with the low-link method in a single pass over
//     every component.
//   - Analyze: the same pass, also returning bridges, the DFS roots and the
//     visit/low numbering for diagnostics.
//
// Low-link walk:
//
//	The walk keeps an explicit stack of frames, each moving through four
//	phases (init, edges, post-child, finalize), instead of recursing. A path
//	of a few hundred thousand vertices therefore needs no deep call stack.
//	All scratch state (visit counter, visit and low maps, marked set) lives
//	in a per-call context and is discarded on return, so two calls never
//	observe each other.
//
// Ordering:
//
//	Components are entered in vertex insertion order and neighbors in
//	adjacency order. Connectors are reported in the order they are first
//	marked: a non-root vertex when one of its children returns with
//	low(child) >= visit(v), a root when its last neighbor is scanned.
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - Connectors: Time O(V+E), Memory O(V)
//
// DFS fails with ErrGraphNil or ErrStartVertexNotFound on bad input and
// otherwise only with the context error or a wrapped hook error.
// Connectors and Analyze fail only with ErrGraphNil.
package dfs
