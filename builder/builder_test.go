package builder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjacency/builder"
	"github.com/katalvlaran/adjacency/core"
)

func TestPath(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, builder.Build(g, nil, builder.Path(4, builder.Index)))

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(0, 3))
	// endpoints have degree 1, inner vertices degree 2
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
}

func TestCycle(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, builder.Build(g, nil, builder.Cycle(5, builder.Index)))

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge(4, 0), "the ring must close")
	for _, v := range g.Vertices() {
		assert.Equal(t, 2, g.Degree(v))
	}
}

func TestComplete(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, builder.Build(g, nil, builder.Complete(5, builder.Index)))

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5*4/2, g.EdgeCount())
	for _, v := range g.Vertices() {
		assert.Equal(t, 4, g.Degree(v))
	}
}

func TestCompleteSingleton(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, builder.Build(g, nil, builder.Complete(1, builder.Index)))

	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestStar(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, builder.Build(g, nil, builder.Star(6, builder.Index)))

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 5, g.Degree(0), "center connects to every leaf")
	assert.Equal(t, 1, g.Degree(3))
}

func TestStarDirected(t *testing.T) {
	g := core.NewDirected[int]()
	require.NoError(t, builder.Build(g, nil, builder.Star(4, builder.Index)))

	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(2, 0), "directed star arcs point outward only")
}

func TestWithWeightFunc(t *testing.T) {
	g := core.NewUndirected[int]()
	weight := func(i, j int) int64 { return int64(10*i + j) }
	require.NoError(t, builder.Build(g, []builder.Option{builder.WithWeightFunc(weight)},
		builder.Path(3, builder.Index)))

	assert.Equal(t, int64(1), g.Weight(0, 1))
	assert.Equal(t, int64(12), g.Weight(1, 2))
}

func TestIDFuncMapping(t *testing.T) {
	g := core.NewUndirected[string]()
	label := func(i int) string { return fmt.Sprintf("v%02d", i) }
	require.NoError(t, builder.Build(g, nil, builder.Path(3, label)))

	assert.Equal(t, []string{"v00", "v01", "v02"}, g.Vertices())
	assert.True(t, g.HasEdge("v00", "v01"))
}

func TestBuildComposes(t *testing.T) {
	g := core.NewUndirected[int]()
	require.NoError(t, builder.Build(g, nil,
		builder.Path(4, builder.Index),
		builder.Star(4, builder.Index),
	))

	// path edges plus star edges (0,1 overlaps; 0,2 and 0,3 are new)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cons builder.Constructor[int]
		want error
	}{
		{"path too small", builder.Path(1, builder.Index), builder.ErrTooFewVertices},
		{"cycle too small", builder.Cycle(2, builder.Index), builder.ErrTooFewVertices},
		{"complete too small", builder.Complete(0, builder.Index), builder.ErrTooFewVertices},
		{"star too small", builder.Star(1, builder.Index), builder.ErrTooFewVertices},
		{"nil id func", builder.Path[int](3, nil), builder.ErrNilIDFunc},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewUndirected[int]()
			err := builder.Build(g, nil, tc.cons)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
			assert.Equal(t, 0, g.VertexCount(), "failed validation must not touch the graph")
		})
	}
}

func TestBuildNilCases(t *testing.T) {
	err := builder.Build[int](nil, nil, builder.Path(3, builder.Index))
	assert.True(t, errors.Is(err, builder.ErrNilGraph))

	g := core.NewUndirected[int]()
	err = builder.Build(g, nil, nil)
	assert.True(t, errors.Is(err, builder.ErrNilConstructor))
}
