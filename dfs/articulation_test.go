package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netanalyzer/bfs"
	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/dfs"
)

func TestConnectors_Path(t *testing.T) {
	// A–B–C–D
	g := graphOf(4, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 4})
	got, err := dfs.Connectors(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{2, 3}, got)
}

func TestConnectors_Star(t *testing.T) {
	g := graphOf(5, [2]int64{1, 2}, [2]int64{1, 3}, [2]int64{1, 4}, [2]int64{1, 5})
	got, err := dfs.Connectors(g)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, got)

	// the star center is found even when the DFS root is a leaf
	g2 := graphOf(4, [2]int64{4, 1}, [2]int64{4, 2}, [2]int64{4, 3})
	got, err = dfs.Connectors(g2)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, got)
}

func TestConnectors_Triangle(t *testing.T) {
	g := graphOf(3, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1})
	got, err := dfs.Connectors(g)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got, "no connectors is an empty list, not nil")
}

func TestConnectors_RosterExample(t *testing.T) {
	g := graphOf(3, [2]int64{1, 2})
	got, err := dfs.Connectors(g)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConnectors_EveryComponentAnalyzed(t *testing.T) {
	// triangle {1,2,3}; path 4–5–6; bow-tie 7..11 joined at 9
	g := graphOf(11,
		[2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1},
		[2]int64{4, 5}, [2]int64{5, 6},
		[2]int64{7, 8}, [2]int64{8, 9}, [2]int64{9, 7},
		[2]int64{9, 10}, [2]int64{10, 11}, [2]int64{11, 9},
	)
	res, err := dfs.Analyze(g)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 9}, res.Points)
	assert.Equal(t, []int64{1, 4, 7}, res.Roots)
	assert.True(t, res.IsPoint(9))
	assert.False(t, res.IsPoint(1))
	assert.ElementsMatch(t, []core.Edge{{From: 4, To: 5}, {From: 5, To: 6}}, res.Bridges)

	// the counter is shared: the second tree continues numbering
	assert.Equal(t, 1, res.VisitOrder[1])
	assert.Equal(t, 4, res.VisitOrder[4])
	assert.Len(t, res.VisitOrder, 11)
}

func TestConnectors_BackEdgeToAncestor(t *testing.T) {
	// 1–2–3–4–2 cycle hanging off 1, plus 4–5 pendant
	g := graphOf(5, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 4}, [2]int64{4, 2}, [2]int64{4, 5})
	res, err := dfs.Analyze(g)
	require.NoError(t, err)
	// 4 is marked when 5 returns, before 2 is marked when its subtree returns
	assert.Equal(t, []int64{4, 2}, res.Points)
	assert.Equal(t, 2, res.Low[4], "back edge 4→2 lowers low(4)")
	assert.Equal(t, 2, res.Low[3])
}

func TestConnectors_ScratchResetBetweenRuns(t *testing.T) {
	g := graphOf(4, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 4})
	first, err := dfs.Analyze(g)
	require.NoError(t, err)
	second, err := dfs.Analyze(g)
	require.NoError(t, err)
	assert.Equal(t, first.VisitOrder, second.VisitOrder)
	assert.Equal(t, first.Points, second.Points)

	// closing the path into a cycle removes every connector
	g.AddEdge(4, 1)
	third, err := dfs.Analyze(g)
	require.NoError(t, err)
	assert.Empty(t, third.Points)
}

func TestConnectors_DeepChainDoesNotRecurse(t *testing.T) {
	const n = 200000
	got, err := dfs.Connectors(pathOf(n))
	require.NoError(t, err)
	assert.Len(t, got, n-2)
}

func TestConnectors_NilGraph(t *testing.T) {
	_, err := dfs.Connectors(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.Analyze(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// componentCount counts connected components with the BFS sweep.
func componentCount(t *testing.T, g *core.Graph) int {
	t.Helper()
	comps, err := bfs.Components(g)
	require.NoError(t, err)

	return len(comps)
}

// TestConnectors_MatchRemovalDefinition checks the low-link result against
// the definition: v is a connector iff deleting it increases the component count.
func TestConnectors_MatchRemovalDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 60; trial++ {
		n := 2 + rng.Intn(12)
		g := graphOf(n)
		edges := rng.Intn(2 * n)
		for i := 0; i < edges; i++ {
			g.AddEdge(1+rng.Int63n(int64(n)), 1+rng.Int63n(int64(n)))
		}

		got, err := dfs.Connectors(g)
		require.NoError(t, err)

		before := componentCount(t, g)
		var want []int64
		for _, id := range g.IDs() {
			c := g.Clone()
			_, err := c.DeleteVertex(id)
			require.NoError(t, err)
			if componentCount(t, c) > before {
				want = append(want, id)
			}
		}
		assert.ElementsMatch(t, want, got, "trial %d edges %v", trial, g.Edges())
	}
}
