package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netanalyzer/metrics"
)

func TestRecordOperation(t *testing.T) {
	r := metrics.NewRecorder()
	r.RecordOperation("closeness", metrics.OutcomeOK, 3*time.Millisecond)
	r.RecordOperation("closeness", metrics.OutcomeOK, time.Millisecond)
	r.RecordOperation("closeness", metrics.OutcomeNotFound, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.OperationsTotal.WithLabelValues("closeness", metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.OperationsTotal.WithLabelValues("closeness", metrics.OutcomeNotFound)))
	assert.Equal(t, 1, testutil.CollectAndCount(r.OperationDuration))
}

func TestSetGraphSizeAndLoad(t *testing.T) {
	r := metrics.NewRecorder()
	r.SetGraphSize(12, 30)
	assert.Equal(t, 12.0, testutil.ToFloat64(r.GraphVertices))
	assert.Equal(t, 30.0, testutil.ToFloat64(r.GraphEdges))

	r.RecordLoad(metrics.LoadCounts{Accepted: 5, Skipped: 1, Linked: 4, Dangling: 2})
	assert.Equal(t, 5.0, testutil.ToFloat64(r.LoadRowsTotal.WithLabelValues(metrics.RowAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.LoadRowsTotal.WithLabelValues(metrics.RowSkipped)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.LoadLinksTotal.WithLabelValues("dangling")))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *metrics.Recorder
	r.RecordOperation("x", metrics.OutcomeOK, time.Second)
	r.SetGraphSize(1, 1)
	r.RecordLoad(metrics.LoadCounts{Accepted: 1})
	assert.Nil(t, r.Registry())

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
}

func TestHandlerExposition(t *testing.T) {
	r := metrics.NewRecorder()
	r.SetGraphSize(3, 1)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "netanalyzer_graph_vertices 3"))
}
