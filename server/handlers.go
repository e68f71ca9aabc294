// SPDX-License-Identifier: MIT
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/export"
	"github.com/katalvlaran/netanalyzer/logging"
	"github.com/katalvlaran/netanalyzer/network"
)

// Handlers serves the analyzer operations of one network over HTTP.
type Handlers struct {
	net   *network.Network
	attr  entity.Attribute
	title string
	style export.Style
	log   *slog.Logger
}

// HandlerOption configures Handlers.
type HandlerOption func(*Handlers)

// WithGroupAttribute sets the attribute /api/groups matches when the request
// names none.
func WithGroupAttribute(a entity.Attribute) HandlerOption {
	return func(h *Handlers) { h.attr = a }
}

// WithExport sets the title and colors of /graph.json and /graph.html.
func WithExport(title string, style export.Style) HandlerOption {
	return func(h *Handlers) {
		h.title = title
		h.style = style
	}
}

// WithLogger routes request logs to l.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handlers) { h.log = logging.OrDiscard(l) }
}

// NewHandlers creates the handlers over net.
func NewHandlers(net *network.Network, opts ...HandlerOption) *Handlers {
	h := &Handlers{
		net:   net,
		attr:  entity.AttrAffiliation,
		title: "Network",
		style: export.DefaultStyle(),
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// fail writes the error response matching err.
func (h *Handlers) fail(c *gin.Context, err error) {
	var nf *network.NotFoundError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "node not found", Code: CodeNotFound, Names: nf.Names})
	case errors.Is(err, core.ErrVertexNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: CodeNotFound})
	case errors.Is(err, entity.ErrUnknownAttribute):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeUnknownAttr})
	default:
		h.log.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeInternal})
	}
}

// HandleHealth reports liveness and the current graph size.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Summary: h.net.Summary()})
}

// HandleStats returns the vertex and edge totals.
func (h *Handlers) HandleStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.net.Summary())
}

// HandleConnections lists the neighbors of :name.
func (h *Handlers) HandleConnections(c *gin.Context) {
	name := c.Param("name")
	e, nbrs, err := h.net.Connections(name)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := ConnectionsResponse{Node: viewOf(e), Count: len(nbrs), Connections: viewsOf(nbrs)}
	for _, alt := range h.net.Ambiguous(name) {
		if alt.ID != e.ID {
			resp.Alternatives = append(resp.Alternatives, viewOf(alt))
		}
	}
	c.JSON(http.StatusOK, resp)
}

// HandleRemoveConnection removes the edge between ?a= and ?b=.
func (h *Handlers) HandleRemoveConnection(c *gin.Context) {
	a, b := strings.TrimSpace(c.Query("a")), strings.TrimSpace(c.Query("b"))
	if a == "" || b == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameters a and b are required", Code: CodeMissingValue})
		return
	}
	r, err := h.net.RemoveConnection(a, b)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, RemovalResponse{A: viewOf(r.A), B: viewOf(r.B), Removed: r.Removed, Summary: h.net.Summary()})
}

// HandleDeleteNode deletes :name and its edges.
func (h *Handlers) HandleDeleteNode(c *gin.Context) {
	e, removed, err := h.net.DeleteNode(c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Node: viewOf(e), EdgesRemoved: removed, Summary: h.net.Summary()})
}

// HandleGroups returns the connection groups for ?value=, matched against
// ?attr= or the configured attribute.
func (h *Handlers) HandleGroups(c *gin.Context) {
	value := strings.TrimSpace(c.Query("value"))
	if value == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter value is required", Code: CodeMissingValue})
		return
	}
	attr := h.attr
	if s := c.Query("attr"); s != "" {
		a, err := entity.ParseAttribute(s)
		if err != nil {
			h.fail(c, err)
			return
		}
		attr = a
	}
	groups, err := h.net.ConnectionGroups(attr, value)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := GroupsResponse{Attribute: attr.String(), Value: value, Groups: make([][]NodeView, len(groups))}
	for i, g := range groups {
		resp.Groups[i] = viewsOf(g)
	}
	c.JSON(http.StatusOK, resp)
}

// HandleCloseness returns the closeness centrality of :name.
func (h *Handlers) HandleCloseness(c *gin.Context) {
	e, s, err := h.net.Closeness(c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ClosenessResponse{Node: viewOf(e), Raw: s.Raw, Normalized: s.Normalized, Reachable: s.Reachable})
}

// HandleConnectors lists the articulation vertices.
func (h *Handlers) HandleConnectors(c *gin.Context) {
	cs, err := h.net.Connectors()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ConnectorsResponse{Connectors: viewsOf(cs)})
}

// HandleImpact reports what deleting :name would do.
func (h *Handlers) HandleImpact(c *gin.Context) {
	r, err := h.net.ImpactOfRemoval(c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	frags := r.Fragments
	if frags == nil {
		frags = []int{}
	}
	c.JSON(http.StatusOK, ImpactResponse{
		Node:             viewOf(r.Node),
		ComponentsBefore: r.ComponentsBefore,
		ComponentsAfter:  r.ComponentsAfter,
		EdgesRemoved:     r.EdgesRemoved,
		Fragments:        frags,
		Splits:           r.Splits(),
	})
}

func (h *Handlers) snapshot() (export.Document, error) {
	var doc export.Document
	err := h.net.View(func(g *core.Graph) error {
		var err error
		doc, err = export.Snapshot(g, h.title)
		return err
	})

	return doc, err
}

// HandleGraphJSON writes the export document. ?compress=true switches to the
// snappy framed stream.
func (h *Handlers) HandleGraphJSON(c *gin.Context) {
	doc, err := h.snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeExportFailed})
		return
	}
	if c.Query("compress") == "true" {
		c.Header("Content-Type", "application/x-snappy-framed")
		c.Status(http.StatusOK)
		if err := export.WriteCompressedJSON(c.Writer, doc); err != nil {
			h.log.Error("write compressed export", slog.String("error", err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, doc)
}

// HandleGraphHTML writes the interactive page.
func (h *Handlers) HandleGraphHTML(c *gin.Context) {
	doc, err := h.snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeExportFailed})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := export.WriteHTML(c.Writer, doc, h.style); err != nil {
		h.log.Error("write html export", slog.String("error", err.Error()))
	}
}
