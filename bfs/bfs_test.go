package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjacency/bfs"
	"github.com/katalvlaran/adjacency/builder"
	"github.com/katalvlaran/adjacency/core"
)

func TestBFS_Path(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, builder.Build(g, nil, builder.Path(4, builder.Index)))

	res, err := bfs.BFS[int](g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, 3, res.Depth[3])
	assert.Equal(t, 2, res.Parent[3])
	_, hasRootParent := res.Parent[0]
	assert.False(t, hasRootParent, "root has no parent entry")
}

func TestBFS_DeterministicOrder(t *testing.T) {
	// equal-depth vertices come out in ascending identifier order
	g := core.NewUndirected(core.E(1, 5), core.E(1, 3), core.E(1, 4), core.E(3, 2))

	res, err := bfs.BFS[int](g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 5, 2}, res.Order)
}

func TestBFS_Directed(t *testing.T) {
	g := core.NewDirected(core.E(1, 2), core.E(2, 3), core.E(3, 1))

	res, err := bfs.BFS[int](g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, res.Order)
	assert.Equal(t, 2, res.Depth[1], "reaches 1 only through 3")
}

func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, builder.Build(g, nil, builder.Path(5, builder.Index)))

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth[int](2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewUndirected(core.E(1, 2), core.E(1, 3), core.E(2, 4), core.E(3, 4))

	skipThree := func(_, nbr int) bool { return nbr != 3 }
	res, err := bfs.BFS(g, 1, bfs.WithFilterNeighbor[int](skipThree))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, res.Order)
	_, visited := res.Depth[3]
	assert.False(t, visited)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, builder.Build(g, nil, builder.Path(4, builder.Index)))

	boom := errors.New("boom")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit[int](func(v int, _ int) error {
		if v == 2 {
			return boom
		}
		return nil
	}))
	assert.True(t, errors.Is(err, boom))
}

func TestBFS_Cancellation(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, builder.Build(g, nil, builder.Path(4, builder.Index)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, 0, bfs.WithContext[int](ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[int](nil, 0)
	assert.True(t, errors.Is(err, bfs.ErrGraphNil))

	g := core.NewUndirected[int]()
	_, err = bfs.BFS(g, 42)
	assert.True(t, errors.Is(err, bfs.ErrStartVertexNotFound))

	g.AddVertex(1)
	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth[int](-1))
	assert.True(t, errors.Is(err, bfs.ErrOptionViolation))
}
