package loader_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/loader"
	"github.com/katalvlaran/netanalyzer/logging"
)

const header = "id\tnodeName\tgroup\tunit\tcontact\tconnectionCount\tconnectionID1\n"

// roster joins data lines behind the standard header.
func roster(lines ...string) string {
	return header + strings.Join(lines, "\n") + "\n"
}

func TestParseLine(t *testing.T) {
	row, ok, err := loader.ParseLine(" 7 \t Ada \tcore\tNorth\tada@example.org\t2\t8\t 9 ", 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entity.New(7, "Ada", "core", "North", "ada@example.org"), row.Entity)
	assert.Equal(t, []int64{8, 9}, row.NeighborIDs)
}

func TestParseLine_ConnectionColumns(t *testing.T) {
	// extra columns beyond the declared count are ignored
	row, ok, err := loader.ParseLine("1\tA\tg\tU\tc\t1\t2\t3", 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int64{2}, row.NeighborIDs)

	// declared but missing or empty columns are skipped
	row, ok, err = loader.ParseLine("1\tA\tg\tU\tc\t3\t\t4", 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int64{4}, row.NeighborIDs)

	// negative count declares nothing
	row, ok, err = loader.ParseLine("1\tA\tg\tU\tc\t-2\t4", 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, row.NeighborIDs)
}

func TestParseLine_OversizedCount(t *testing.T) {
	// the count bounds the columns read, never the memory reserved
	for _, count := range []string{"9223372036854775807", "1099511627776"} {
		row, ok, err := loader.ParseLine("1\tA\tg\tU\tc\t"+count+"\t2", 2)
		require.NoError(t, err, "count %s", count)
		require.True(t, ok)
		assert.Equal(t, []int64{2}, row.NeighborIDs)
	}
}

func TestLoad_OversizedCountLinksPresentColumns(t *testing.T) {
	g, stats, err := loader.Load(strings.NewReader(roster(
		"1\tA\tg\tU\tc\t9223372036854775807\t2",
		"2\tB\tg\tU\tc\t1\t1",
	)))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestParseLine_Skipped(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"1\tA\tg\tU\tc",
		"1\tA\tg\tU\t\t\t", // trailing empties do not count as columns
	} {
		_, ok, err := loader.ParseLine(line, 3)
		require.NoError(t, err, "line %q", line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestParseLine_Malformed(t *testing.T) {
	for _, line := range []string{
		"x\tA\tg\tU\tc\t0",
		"1\tA\tg\tU\tc\tmany",
		"1\tA\tg\tU\tc\t1\ttwo",
	} {
		_, _, err := loader.ParseLine(line, 4)
		require.ErrorIs(t, err, loader.ErrMalformedField, "line %q", line)
		assert.Contains(t, err.Error(), "line 4")
	}
}

func TestLoad_SpecExample(t *testing.T) {
	g, stats, err := loader.Load(strings.NewReader(roster(
		"1\tA\tg1\tU1\tc1\t1\t2",
		"2\tB\tg1\tU1\tc1\t1\t1",
		"3\tC\tg2\tU2\tc1\t0",
	)))
	require.NoError(t, err)
	require.NoError(t, g.Verify())

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 2))
	assert.Equal(t, []int64{1, 2, 3}, g.IDs())

	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Linked)
	assert.Equal(t, 1, stats.Mirrored)
}

func TestLoad_SkipsShortRowsAndBlankLines(t *testing.T) {
	g, stats, err := loader.Load(strings.NewReader(roster(
		"1\tA\tg\tU\tc\t1\t2",
		"",
		"broken\trow",
		"2\tB\tg\tU\tc\t0",
		"   ",
	)))
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 2, stats.Blank)
}

func TestLoad_HeaderIsAlwaysDiscarded(t *testing.T) {
	// a data-shaped first line is still the header
	g, _, err := loader.Load(strings.NewReader("1\tA\tg\tU\tc\t0\n2\tB\tg\tU\tc\t0\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, g.IDs())
}

func TestLoad_MalformedFieldFailsWholeLoad(t *testing.T) {
	g, _, err := loader.Load(strings.NewReader(roster(
		"1\tA\tg\tU\tc\t0",
		"2\tB\tg\tU\tc\tNaN",
	)))
	require.ErrorIs(t, err, loader.ErrMalformedField)
	assert.Nil(t, g)
	assert.Contains(t, err.Error(), "line 3")
}

func TestBuild_Canonicalization(t *testing.T) {
	rows := []loader.Row{
		{Entity: entity.New(1, "A", "g", "U", "c"), NeighborIDs: []int64{2, 3, 1, 42}},
		{Entity: entity.New(2, "B", "g", "U", "c"), NeighborIDs: []int64{1}},
		{Entity: entity.New(3, "C", "g", "U", "c")},
		{Entity: entity.New(4, "D", "g", "U", "c"), NeighborIDs: []int64{1}}, // only the higher id declares
		{Entity: entity.New(2, "B2", "x", "y", "z"), NeighborIDs: []int64{3}},
	}
	g, stats := loader.Build(rows)
	require.NoError(t, g.Verify())

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount(), "1-2 once, 1-3 from A, 2-3 from the duplicate row")
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(1, 3))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(1, 4))

	v, err := g.Vertex(2)
	require.NoError(t, err)
	assert.Equal(t, "B", v.Name(), "first row wins")

	assert.Equal(t, loader.Stats{
		Duplicates: 1,
		Pending:    7,
		Linked:     3,
		SelfRefs:   1,
		Mirrored:   2,
		Dangling:   1,
	}, stats)
}

func TestBuild_DuplicateDeclarationsLinkOnce(t *testing.T) {
	rows := []loader.Row{
		{Entity: entity.New(1, "A", "g", "U", "c"), NeighborIDs: []int64{2, 2}},
		{Entity: entity.New(2, "B", "g", "U", "c"), NeighborIDs: []int64{1, 1}},
	}
	g, stats := loader.Build(rows)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, stats.Linked)
}

func TestLoad_Strict(t *testing.T) {
	src := roster("1\t\tg\tU\tc\t0")

	g, _, err := loader.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())

	_, _, err = loader.Load(strings.NewReader(src), loader.WithStrict())
	require.ErrorIs(t, err, loader.ErrInvalidRow)
	require.ErrorIs(t, err, entity.ErrInvalid)
}

func TestLoad_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, logging.Options{Level: slog.LevelDebug})
	_, _, err := loader.Load(strings.NewReader(roster("1\tA\tg\tU\tc\t0")), loader.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "roster loaded")
	assert.Contains(t, buf.String(), "vertices=1")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoad_ReadError(t *testing.T) {
	_, _, err := loader.Load(failingReader{})
	require.ErrorIs(t, err, loader.ErrRead)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.tsv")
	require.NoError(t, os.WriteFile(path, []byte(roster("1\tA\tg\tU\tc\t1\t2", "2\tB\tg\tU\tc\t1\t1")), 0o600))

	g, _, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	_, _, err = loader.LoadFile(filepath.Join(dir, "missing.tsv"))
	require.ErrorIs(t, err, loader.ErrRead)
}

func TestWriteRows_RoundTrip(t *testing.T) {
	rows := []loader.Row{
		{Entity: entity.New(1, "A\tB", "g", "U", "c"), NeighborIDs: []int64{2, 3}},
		{Entity: entity.New(2, "B", "g", "U", ""), NeighborIDs: []int64{1}},
		{Entity: entity.New(3, "C", "g", "V", "c"), NeighborIDs: []int64{1}},
	}
	var buf bytes.Buffer
	require.NoError(t, loader.WriteRows(&buf, rows))

	first, _, _ := strings.Cut(buf.String(), "\n")
	assert.Equal(t, loader.Header+"\tconnectionID1\tconnectionID2", first)

	got, stats, err := loader.ReadRows(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rows)
	require.Len(t, got, 3)
	assert.Equal(t, "A B", got[0].Entity.Name)
	assert.Equal(t, []int64{2, 3}, got[0].NeighborIDs)
	assert.Equal(t, rows[1], got[1])
}
