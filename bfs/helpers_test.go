package bfs_test

import (
	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/entity"
)

// newGraph registers vertices 1..len(names), all in affiliation "U", with no edges.
func newGraph(names ...string) *core.Graph {
	g := core.NewGraph()
	for i, name := range names {
		g.AddVertex(entity.New(int64(i+1), name, "g", "U", "c"))
	}

	return g
}

// chain is the path 0–1–…–n.
func chain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i <= n; i++ {
		g.AddVertex(entity.New(int64(i), "v", "g", "U", "c"))
	}
	for i := 0; i < n; i++ {
		g.AddEdge(int64(i), int64(i+1))
	}

	return g
}
