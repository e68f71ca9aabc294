// SPDX-License-Identifier: MIT
package export

import (
	"errors"
	"time"

	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/dfs"
)

// ErrGraphNil indicates a nil graph was passed to Snapshot.
var ErrGraphNil = errors.New("export: graph is nil")

// Node is one vertex of a Document.
type Node struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Group     string `json:"group"`
	Unit      string `json:"unit"`
	Contact   string `json:"contact,omitempty"`
	Degree    int    `json:"degree"`
	Connector bool   `json:"connector"`
}

// Edge is one undirected edge, From < To.
type Edge struct {
	From   int64 `json:"from"`
	To     int64 `json:"to"`
	Bridge bool  `json:"bridge,omitempty"`
}

// Document is a point-in-time view of a graph.
type Document struct {
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
	Nodes      []Node    `json:"nodes"`
	Edges      []Edge    `json:"edges"`
	Connectors []int64   `json:"connectors"`
}

// Snapshot copies g into a Document. Nodes keep insertion order; edges are
// listed once per pair in ascending From order of discovery.
//
// Complexity: O(V + E)
func Snapshot(g *core.Graph, title string) (Document, error) {
	if g == nil {
		return Document{}, ErrGraphNil
	}
	res, err := dfs.Analyze(g)
	if err != nil {
		return Document{}, err
	}

	bridges := make(map[core.Edge]bool, len(res.Bridges))
	for _, b := range res.Bridges {
		bridges[b] = true
	}

	doc := Document{
		Title:      title,
		CreatedAt:  time.Now().UTC(),
		Nodes:      make([]Node, 0, g.VertexCount()),
		Edges:      make([]Edge, 0, g.EdgeCount()),
		Connectors: append(make([]int64, 0, len(res.Points)), res.Points...),
	}
	for _, v := range g.Vertices() {
		e := v.Entity()
		doc.Nodes = append(doc.Nodes, Node{
			ID:        e.ID,
			Name:      e.Name,
			Group:     e.Category,
			Unit:      e.Affiliation,
			Contact:   e.Contact,
			Degree:    v.Degree(),
			Connector: res.IsPoint(e.ID),
		})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Bridge: bridges[e]})
	}

	return doc, nil
}
