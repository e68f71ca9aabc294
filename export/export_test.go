package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netanalyzer/builder"
	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/export"
)

// pathGraph builds A–B–C plus an isolated block D–E–F–D.
func pathGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, _, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolNames()},
		builder.Path(3), builder.Cycle(3),
	)
	require.NoError(t, err)

	return g
}

func TestSnapshot(t *testing.T) {
	doc, err := export.Snapshot(pathGraph(t), "Lab")
	require.NoError(t, err)

	assert.Equal(t, "Lab", doc.Title)
	require.Len(t, doc.Nodes, 6)
	assert.Equal(t, "A", doc.Nodes[0].Name)
	assert.Equal(t, "path", doc.Nodes[0].Group)
	assert.Equal(t, 2, doc.Nodes[1].Degree)
	assert.True(t, doc.Nodes[1].Connector)
	assert.False(t, doc.Nodes[0].Connector)
	assert.Equal(t, []int64{2}, doc.Connectors)

	require.Len(t, doc.Edges, 5)
	bridges := 0
	for _, e := range doc.Edges {
		assert.Less(t, e.From, e.To)
		if e.Bridge {
			bridges++
		}
	}
	assert.Equal(t, 2, bridges, "only the path edges are bridges")
}

func TestSnapshot_NilGraph(t *testing.T) {
	_, err := export.Snapshot(nil, "x")
	require.ErrorIs(t, err, export.ErrGraphNil)
}

func TestSnapshot_NoConnectorsIsEmptyList(t *testing.T) {
	doc, err := export.Snapshot(core.NewGraph(), "empty")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, doc))
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["connectors"]))
}

func TestWriteJSON(t *testing.T) {
	doc, err := export.Snapshot(pathGraph(t), "Lab")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, doc))
	assert.Contains(t, buf.String(), `"connector": true`)
	assert.Contains(t, buf.String(), `"bridge": true`)
}

func TestCompressedJSON_RoundTrip(t *testing.T) {
	doc, err := export.Snapshot(pathGraph(t), "Lab")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCompressedJSON(&buf, doc))
	back, err := export.ReadCompressedJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc.Nodes, back.Nodes)
	assert.Equal(t, doc.Edges, back.Edges)
	assert.True(t, doc.CreatedAt.Equal(back.CreatedAt))

	_, err = export.ReadCompressedJSON(strings.NewReader("not snappy"))
	require.Error(t, err)
}

func TestWriteHTML(t *testing.T) {
	doc, err := export.Snapshot(pathGraph(t), "Campus <Net>")
	require.NoError(t, err)

	style := export.DefaultStyle()
	style.GroupColors = map[string]string{"cycle": "#2ecc71"}

	var buf bytes.Buffer
	require.NoError(t, export.WriteHTML(&buf, doc, style))
	out := buf.String()

	assert.Contains(t, out, "vis-network.min.js")
	assert.Contains(t, out, "CRITICAL: B")
	assert.NotContains(t, out, "CRITICAL: A")
	assert.Contains(t, out, "#2ecc71")
	assert.Contains(t, out, style.ConnectorColor)
	assert.Contains(t, out, "Campus &lt;Net&gt;: 6 nodes, 1 connectors")
	assert.NotContains(t, out, "<Net>", "title is escaped")
}
