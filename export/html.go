// SPDX-License-Identifier: MIT
package export

import (
	"fmt"
	"html/template"
	"io"
)

// Style controls the HTML rendering.
type Style struct {
	ConnectorColor string
	NodeColor      string
	// GroupColors overrides NodeColor per group value.
	GroupColors map[string]string
}

// DefaultStyle matches the default configuration colours.
func DefaultStyle() Style {
	return Style{ConnectorColor: "#e74c3c", NodeColor: "#3498db"}
}

// connectorPrefix marks connector labels in the rendered page.
const connectorPrefix = "CRITICAL: "

type visNode struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	Title       string `json:"title"`
	Color       string `json:"color"`
	BorderWidth int    `json:"borderWidth"`
}

type visEdge struct {
	From   int64 `json:"from"`
	To     int64 `json:"to"`
	Dashes bool  `json:"dashes,omitempty"`
}

type page struct {
	Title string
	Nodes []visNode
	Edges []visEdge
	Count int
	Conns int
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <script type="text/javascript" src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
  <style type="text/css">
    body { background-color: #222222; color: #ffffff; margin: 0; padding: 0; font-family: sans-serif; }
    header { padding: 8px 16px; }
    #network { width: 100%; height: 750px; }
  </style>
</head>
<body>
  <header>{{.Title}}: {{.Count}} nodes, {{.Conns}} connectors</header>
  <div id="network"></div>
  <script type="text/javascript">
    var nodes = new vis.DataSet({{.Nodes}});
    var edges = new vis.DataSet({{.Edges}});
    var container = document.getElementById('network');
    var options = {
      nodes: { shape: 'dot', font: { color: '#ffffff' }, size: 16 },
      edges: { color: '#aaaaaa', smooth: false },
      layout: { improvedLayout: true },
      physics: {
        enabled: true,
        forceAtlas2Based: { gravitationalConstant: -50, centralGravity: 0.01, springLength: 100, springConstant: 0.08 },
        solver: 'forceAtlas2Based',
        timestep: 0.5,
        stabilization: { iterations: 100 }
      },
      interaction: { hover: true, tooltipDelay: 200 }
    };
    new vis.Network(container, { nodes: nodes, edges: edges }, options);
  </script>
</body>
</html>
`))

// WriteHTML renders doc as a standalone page. Connectors are labelled
// "CRITICAL: <name>" with a thick border; bridges are drawn dashed.
func WriteHTML(w io.Writer, doc Document, style Style) error {
	p := page{
		Title: doc.Title,
		Nodes: make([]visNode, 0, len(doc.Nodes)),
		Edges: make([]visEdge, 0, len(doc.Edges)),
		Count: len(doc.Nodes),
		Conns: len(doc.Connectors),
	}
	for _, n := range doc.Nodes {
		vn := visNode{
			ID:          n.ID,
			Label:       n.Name,
			Title:       fmt.Sprintf("Unit: %s\nContact: %s", n.Unit, n.Contact),
			Color:       style.NodeColor,
			BorderWidth: 1,
		}
		if c, ok := style.GroupColors[n.Group]; ok {
			vn.Color = c
		}
		if n.Connector {
			vn.Label = connectorPrefix + n.Name
			vn.Color = style.ConnectorColor
			vn.BorderWidth = 3
		}
		p.Nodes = append(p.Nodes, vn)
	}
	for _, e := range doc.Edges {
		p.Edges = append(p.Edges, visEdge{From: e.From, To: e.To, Dashes: e.Bridge})
	}

	if err := pageTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("export: render html: %w", err)
	}

	return nil
}
