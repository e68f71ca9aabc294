package dfs_test

import (
	"testing"

	"github.com/katalvlaran/netanalyzer/dfs"
)

// BenchmarkDFS_Path walks a 10,000-vertex path end to end.
func BenchmarkDFS_Path(b *testing.B) {
	g := pathOf(10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkConnectors_Chain10000 measures the iterative low-link walk on the
// same chain, where every interior vertex is a connector.
func BenchmarkConnectors_Chain10000(b *testing.B) {
	g := pathOf(10000)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.Connectors(g)
	}
}

// BenchmarkConnectors_BinaryTree measures the walk on a tree of depth 12 (4095 vertices).
func BenchmarkConnectors_BinaryTree(b *testing.B) {
	g := treeOf(12)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.Connectors(g)
	}
}
