package bfs

import (
	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/entity"
)

// Components partitions g into connected components. Components appear in the
// order their first vertex occurs in g's insertion order; members of each
// component appear in BFS visit order from that vertex.
//
// Complexity: O(V + E)
func Components(g *core.Graph) ([][]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	visited := make(map[int64]bool, n)
	var comps [][]int64
	for _, id := range g.IDs() {
		if visited[id] {
			continue
		}
		w := newWalker(g, DefaultOptions(), visited, 0)
		w.enqueue(queueItem{id: id})
		if err := w.loop(); err != nil {
			return nil, err
		}
		comps = append(comps, w.res.Order)
	}

	return comps, nil
}

// GroupByAttribute returns, for every connected component, the members whose
// attr field equals value case-insensitively. Components without a match are
// dropped. Groups keep component discovery order; members keep BFS visit
// order.
//
// Complexity: O(V + E)
func GroupByAttribute(g *core.Graph, attr entity.Attribute, value string) ([][]int64, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}
	var groups [][]int64
	for _, comp := range comps {
		var group []int64
		for _, id := range comp {
			v, err := g.Vertex(id)
			if err != nil {
				return nil, err
			}
			if v.Entity().Matches(attr, value) {
				group = append(group, id)
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}

	return groups, nil
}
