package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netanalyzer/bfs"
	"github.com/katalvlaran/netanalyzer/core"
)

func TestBFS_RejectsBadInput(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), 404)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(newGraph("Ada"), 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_LoneVertex(t *testing.T) {
	res, err := bfs.BFS(newGraph("Ada"), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, res.Order)
	assert.Equal(t, 0, res.Depth[1])
	assert.NotContains(t, res.Parent, int64(1), "the start has no parent")
}

func TestBFS_SquareFollowsAdjacencyOrder(t *testing.T) {
	// Ada–Bob–Cy–Dee–Ada
	g := newGraph("Ada", "Bob", "Cy", "Dee")
	for _, e := range [][2]int64{{1, 2}, {2, 3}, {3, 4}, {4, 1}} {
		require.True(t, g.AddEdge(e[0], e[1]))
	}

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 4, 3}, res.Order)
	assert.Equal(t, map[int64]int{1: 0, 2: 1, 4: 1, 3: 2}, res.Depth)
	assert.Equal(t, int64(2), res.Parent[3], "Cy is discovered through Bob first")
}

func TestBFS_StaysInStartComponent(t *testing.T) {
	g := newGraph("Ada", "Bob", "Cy", "Dee")
	require.True(t, g.AddEdge(1, 2))
	require.True(t, g.AddEdge(3, 4))

	for start, want := range map[int64][]int64{1: {1, 2}, 3: {3, 4}} {
		res, err := bfs.BFS(g, start)
		require.NoError(t, err)
		assert.Equal(t, want, res.Order, "from %d", start)
	}
}

func TestBFS_MaxDepth(t *testing.T) {
	cases := []struct {
		depth int
		want  []int64
	}{
		{1, []int64{0, 1}},
		{0, []int64{0, 1, 2}},
		{10, []int64{0, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("depth=%d", tc.depth), func(t *testing.T) {
			res, err := bfs.BFS(chain(2), 0, bfs.WithMaxDepth(tc.depth))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Order)
		})
	}
}

func TestBFS_FilterNeighborCutsEdge(t *testing.T) {
	res, err := bfs.BFS(chain(2), 0, bfs.WithFilterNeighbor(func(curr, nbr int64) bool {
		return curr != 1 || nbr != 2
	}))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1}, res.Order)
	assert.NotContains(t, res.Depth, int64(2))
}

func TestBFS_HookSequence(t *testing.T) {
	var trace []string
	record := func(stage string) func(int64, int) {
		return func(id int64, d int) { trace = append(trace, fmt.Sprintf("%s%d@%d", stage, id, d)) }
	}

	_, err := bfs.BFS(chain(2), 0,
		bfs.WithOnEnqueue(record("+")),
		bfs.WithOnDequeue(record("-")),
		bfs.WithOnVisit(func(id int64, d int) error {
			record("v")(id, d)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+0@0", "-0@0", "v0@0", "+1@1",
		"-1@1", "v1@1", "+2@2",
		"-2@2", "v2@2",
	}, trace)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop here")
	res, err := bfs.BFS(chain(5), 0, bfs.WithOnVisit(func(id int64, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int64{0, 1, 2}, res.Order, "partial result is returned")
}

func TestBFSResult_PathTo(t *testing.T) {
	res, err := bfs.BFS(chain(3), 0)
	require.NoError(t, err)

	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, path)

	path, err = res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3}, path)

	_, err = res.PathTo(99)
	assert.ErrorContains(t, err, "no path")
}

func TestBFS_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chain(100), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
