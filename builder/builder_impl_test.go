// Package builder_test contains functional tests for all Constructor
// implementations, verifying counts, topology and the connectors each
// fixture is known to have.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/netanalyzer/builder"
	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/dfs"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		ctor           builder.Constructor
		wantV, wantE   int
		wantConnectors []int64
		sampleCheck    func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4),
			wantV: 4, wantE: 3, wantConnectors: []int64{3, 2},
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := int64(1); i < 4; i++ {
					if !g.HasEdge(i, i+1) {
						t.Errorf("Path: missing edge %d–%d", i, i+1)
					}
				}
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5),
			wantV: 5, wantE: 5, wantConnectors: []int64{},
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasEdge(5, 1) {
					t.Error("Cycle: missing closing edge 5–1")
				}
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5),
			wantV: 5, wantE: 4, wantConnectors: []int64{1},
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if d, _ := g.Degree(1); d != 4 {
					t.Errorf("Star: hub degree %d, want 4", d)
				}
			},
		},
		{
			name: "Wheel(6)", ctor: builder.Wheel(6),
			wantV: 6, wantE: 10, wantConnectors: []int64{},
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if d, _ := g.Degree(6); d != 5 {
					t.Errorf("Wheel: hub degree %d, want 5", d)
				}
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5),
			wantV: 5, wantE: 10, wantConnectors: []int64{},
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1),
			wantV: 1, wantE: 0, wantConnectors: []int64{},
		},
		{
			name: "Grid(1,3)", ctor: builder.Grid(1, 3),
			wantV: 3, wantE: 2, wantConnectors: []int64{2},
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4),
			wantV: 12, wantE: 17, wantConnectors: []int64{},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1.0),
			wantV: 5, wantE: 10, wantConnectors: []int64{},
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0.0),
			wantV: 5, wantE: 0, wantConnectors: []int64{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, stats, err := builder.BuildGraph(nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if g.VertexCount() != tc.wantV || g.EdgeCount() != tc.wantE {
				t.Errorf("got V=%d E=%d, want V=%d E=%d", g.VertexCount(), g.EdgeCount(), tc.wantV, tc.wantE)
			}
			if stats.Linked != tc.wantE || stats.Mirrored != tc.wantE {
				t.Errorf("every link must be declared on both rows: %+v", stats)
			}
			if err := g.Verify(); err != nil {
				t.Errorf("Verify: %v", err)
			}
			got, err := dfs.Connectors(g)
			if err != nil {
				t.Fatalf("Connectors: %v", err)
			}
			if !equalIDs(got, tc.wantConnectors) {
				t.Errorf("connectors: got %v, want %v", got, tc.wantConnectors)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuildRows_Composes checks that blocks continue ids and names.
func TestBuildRows_Composes(t *testing.T) {
	rows, err := builder.BuildRows(
		[]builder.BuilderOption{builder.WithSymbolNames(), builder.WithAffiliations("North", "South")},
		builder.Path(2), builder.Star(3),
	)
	if err != nil {
		t.Fatalf("BuildRows: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("rows: got %d, want 5", len(rows))
	}
	last := rows[4].Entity
	if last.ID != 5 || last.Name != "E" || last.Affiliation != "North" || last.Category != "star" {
		t.Errorf("last row: unexpected %+v", last)
	}
	if last.Contact != "e@example.org" {
		t.Errorf("contact: got %q", last.Contact)
	}
	// hub of the star is global index 2 → id 3
	if got := rows[2].NeighborIDs; len(got) != 2 || got[0] != 4 || got[1] != 5 {
		t.Errorf("hub neighbors: got %v, want [4 5]", got)
	}
}

// TestRandomSparse_Deterministic verifies the same seed reproduces the rows.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() []int {
		rows, err := builder.BuildRows([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(30, 0.2))
		if err != nil {
			t.Fatalf("BuildRows: %v", err)
		}
		out := make([]int, len(rows))
		for i, r := range rows {
			out[i] = len(r.NeighborIDs)
		}
		return out
	}
	a, b := build(), build()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d: degree %d vs %d", i, a[i], b[i])
		}
	}
}

// TestBuilders_Errors checks the sentinel returned for every invalid input.
func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,2)", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,.5) no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		if _, err := builder.BuildRows(nil, tc.ctor); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
