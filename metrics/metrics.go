// SPDX-License-Identifier: MIT
// Package metrics exposes Prometheus collectors for the network engine.
//
// A Recorder owns a private registry, so tests and embedded uses never clash
// with the process-wide default. Every method is safe on a nil *Recorder and
// does nothing, which lets callers keep metrics optional without branching.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeNoop     = "noop"
	OutcomeError    = "error"
)

// Load row status label values.
const (
	RowAccepted  = "accepted"
	RowSkipped   = "skipped"
	RowBlank     = "blank"
	RowDuplicate = "duplicate"
)

// Recorder holds every collector of the engine.
type Recorder struct {
	registry *prometheus.Registry

	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	GraphVertices     prometheus.Gauge
	GraphEdges        prometheus.Gauge
	LoadRowsTotal     *prometheus.CounterVec
	LoadLinksTotal    *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all collectors registered on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{registry: reg}

	r.OperationsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netanalyzer_operations_total",
			Help: "Engine operations by name and outcome",
		},
		[]string{"op", "outcome"},
	)

	r.OperationDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netanalyzer_operation_duration_seconds",
			Help:    "Duration of engine operations in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
		},
		[]string{"op"},
	)

	r.GraphVertices = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalyzer_graph_vertices",
			Help: "Current number of vertices",
		},
	)

	r.GraphEdges = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalyzer_graph_edges",
			Help: "Current number of edges",
		},
	)

	r.LoadRowsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netanalyzer_load_rows_total",
			Help: "Roster lines seen by the loader, by status",
		},
		[]string{"status"}, // accepted, skipped, blank, duplicate
	)

	r.LoadLinksTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netanalyzer_load_links_total",
			Help: "Pending connection declarations by resolution",
		},
		[]string{"resolution"}, // linked, self, mirrored, dangling
	)

	return r
}

// Registry returns the underlying Prometheus registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// RecordOperation counts one operation and observes its duration.
func (r *Recorder) RecordOperation(op, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.OperationsTotal.WithLabelValues(op, outcome).Inc()
	r.OperationDuration.WithLabelValues(op).Observe(d.Seconds())
}

// SetGraphSize publishes the current vertex and edge counts.
func (r *Recorder) SetGraphSize(vertices, edges int) {
	if r == nil {
		return
	}
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
}

// LoadCounts is the subset of loader statistics exported as metrics.
type LoadCounts struct {
	Accepted, Skipped, Blank, Duplicates int
	Linked, SelfRefs, Mirrored, Dangling int
}

// RecordLoad adds one load's counters.
func (r *Recorder) RecordLoad(c LoadCounts) {
	if r == nil {
		return
	}
	r.LoadRowsTotal.WithLabelValues(RowAccepted).Add(float64(c.Accepted))
	r.LoadRowsTotal.WithLabelValues(RowSkipped).Add(float64(c.Skipped))
	r.LoadRowsTotal.WithLabelValues(RowBlank).Add(float64(c.Blank))
	r.LoadRowsTotal.WithLabelValues(RowDuplicate).Add(float64(c.Duplicates))
	r.LoadLinksTotal.WithLabelValues("linked").Add(float64(c.Linked))
	r.LoadLinksTotal.WithLabelValues("self").Add(float64(c.SelfRefs))
	r.LoadLinksTotal.WithLabelValues("mirrored").Add(float64(c.Mirrored))
	r.LoadLinksTotal.WithLabelValues("dangling").Add(float64(c.Dangling))
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format. A nil Recorder serves an empty registry.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}

	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
