package dfs_test

import (
	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/entity"
)

// graphOf builds vertices 1..n and the given undirected edges, in order.
func graphOf(n int, edges ...[2]int64) *core.Graph {
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		g.AddVertex(entity.New(int64(i), "v", "g", "U", "c"))
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	return g
}

// pathOf links 0–1–…–(n-1).
func pathOf(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex(entity.New(int64(i), "n", "g", "U", "c"))
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(int64(i), int64(i+1))
	}

	return g
}

// treeOf is the heap-numbered binary tree 1..2^depth-1.
func treeOf(depth int) *core.Graph {
	g := core.NewGraph()
	maxD := (1 << depth) - 1
	for i := 1; i <= maxD; i++ {
		g.AddVertex(entity.New(int64(i), "t", "g", "U", "c"))
		if i > 1 {
			g.AddEdge(int64(i/2), int64(i))
		}
	}

	return g
}
