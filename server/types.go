// SPDX-License-Identifier: MIT
package server

import (
	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/network"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeBadRequest     = "INVALID_REQUEST"
	CodeUnknownAttr    = "UNKNOWN_ATTRIBUTE"
	CodeInternal       = "INTERNAL"
	CodeExportFailed   = "EXPORT_FAILED"
	CodeMissingValue   = "MISSING_VALUE"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string   `json:"error"`
	Code  string   `json:"code"`
	Names []string `json:"names,omitempty"`
}

// NodeView is the wire form of an entity.
type NodeView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Group   string `json:"group"`
	Unit    string `json:"unit"`
	Contact string `json:"contact,omitempty"`
}

func viewOf(e entity.Entity) NodeView {
	return NodeView{ID: e.ID, Name: e.Name, Group: e.Category, Unit: e.Affiliation, Contact: e.Contact}
}

func viewsOf(es []entity.Entity) []NodeView {
	out := make([]NodeView, len(es))
	for i, e := range es {
		out[i] = viewOf(e)
	}

	return out
}

// HealthResponse answers /healthz.
type HealthResponse struct {
	Status  string          `json:"status"`
	Summary network.Summary `json:"summary"`
}

// ConnectionsResponse answers GET /api/connections/:name.
type ConnectionsResponse struct {
	Node        NodeView   `json:"node"`
	Count       int        `json:"count"`
	Connections []NodeView `json:"connections"`
	// Alternatives lists the other vertices sharing the name; the first
	// match in roster order is the one reported.
	Alternatives []NodeView `json:"alternatives,omitempty"`
}

// RemovalResponse answers DELETE /api/connections.
type RemovalResponse struct {
	A       NodeView        `json:"a"`
	B       NodeView        `json:"b"`
	Removed bool            `json:"removed"`
	Summary network.Summary `json:"summary"`
}

// DeleteResponse answers DELETE /api/nodes/:name.
type DeleteResponse struct {
	Node         NodeView        `json:"node"`
	EdgesRemoved int             `json:"edges_removed"`
	Summary      network.Summary `json:"summary"`
}

// GroupsResponse answers GET /api/groups.
type GroupsResponse struct {
	Attribute string       `json:"attribute"`
	Value     string       `json:"value"`
	Groups    [][]NodeView `json:"groups"`
}

// ClosenessResponse answers GET /api/closeness/:name.
type ClosenessResponse struct {
	Node       NodeView `json:"node"`
	Raw        float64  `json:"raw"`
	Normalized float64  `json:"normalized"`
	Reachable  int      `json:"reachable"`
}

// ConnectorsResponse answers GET /api/connectors.
type ConnectorsResponse struct {
	Connectors []NodeView `json:"connectors"`
}

// ImpactResponse answers GET /api/impact/:name.
type ImpactResponse struct {
	Node             NodeView `json:"node"`
	ComponentsBefore int      `json:"components_before"`
	ComponentsAfter  int      `json:"components_after"`
	EdgesRemoved     int      `json:"edges_removed"`
	Fragments        []int    `json:"fragments"`
	Splits           bool     `json:"splits"`
}
