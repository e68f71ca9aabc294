// SPDX-License-Identifier: MIT
package loader

import "github.com/katalvlaran/netanalyzer/core"

// pendingLink is a connection declared by owner that has not been applied yet.
type pendingLink struct {
	owner, neighbor int64
}

// Build constructs a graph from rows in two passes. It never fails: duplicate
// ids, self references, one-sided high-to-low declarations and unknown ids
// are counted in Stats and otherwise ignored.
//
// Complexity: O(R + P·d̄) for R rows and P pending pairs.
func Build(rows []Row) (*core.Graph, Stats) {
	var stats Stats
	g := core.NewGraph()

	// pass 1: vertices; every row's declarations are queued, duplicates included
	var pending []pendingLink
	for _, row := range rows {
		if !g.AddVertex(row.Entity) {
			stats.Duplicates++
		}
		for _, nid := range row.NeighborIDs {
			pending = append(pending, pendingLink{owner: row.Entity.ID, neighbor: nid})
		}
	}
	stats.Pending = len(pending)

	// pass 2: edges, canonicalised on owner < neighbor
	for _, p := range pending {
		switch {
		case p.owner == p.neighbor:
			stats.SelfRefs++
		case p.owner > p.neighbor:
			stats.Mirrored++
		case !g.HasVertex(p.owner) || !g.HasVertex(p.neighbor):
			stats.Dangling++
		default:
			if g.AddEdge(p.owner, p.neighbor) {
				stats.Linked++
			}
		}
	}

	return g, stats
}
