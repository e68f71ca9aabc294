// SPDX-License-Identifier: MIT
package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/netanalyzer/metrics"
)

// RegisterRoutes registers the /api endpoints on rg.
//
//	GET    /api/stats
//	GET    /api/connections/:name
//	DELETE /api/connections?a=&b=
//	DELETE /api/nodes/:name
//	GET    /api/groups?value=&attr=
//	GET    /api/closeness/:name
//	GET    /api/connectors
//	GET    /api/impact/:name
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	api := rg.Group("/api")
	{
		api.GET("/stats", h.HandleStats)

		api.GET("/connections/:name", h.HandleConnections)
		api.DELETE("/connections", h.HandleRemoveConnection)
		api.DELETE("/nodes/:name", h.HandleDeleteNode)

		api.GET("/groups", h.HandleGroups)
		api.GET("/closeness/:name", h.HandleCloseness)
		api.GET("/connectors", h.HandleConnectors)
		api.GET("/impact/:name", h.HandleImpact)
	}
}

// NewRouter builds the engine: the API, the graph exports, /healthz and,
// when rec is non-nil, /metrics.
func NewRouter(h *Handlers, rec *metrics.Recorder) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.log))

	router.GET("/healthz", h.HandleHealth)
	router.GET("/graph.json", h.HandleGraphJSON)
	router.GET("/graph.html", h.HandleGraphHTML)
	if rec != nil {
		router.GET("/metrics", gin.WrapH(rec.Handler()))
	}
	RegisterRoutes(&router.RouterGroup, h)

	return router
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}
