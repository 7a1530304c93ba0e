package core_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjacency/core"
)

// collectForward drains a fresh vertex cursor front to back.
func collectForward[V cmp.Ordered](g core.Graph[V]) []V {
	var out []V
	for it := g.Iterator(); it.Next(); {
		out = append(out, it.ID())
	}

	return out
}

func TestVertexIterationOrder(t *testing.T) {
	g := core.NewUndirected[int]()
	// inserted out of order on purpose
	g.AddVertex(3)
	g.AddVertex(1)
	g.AddVertex(2)

	assert.Equal(t, []int{1, 2, 3}, collectForward[int](g))

	var reverse []int
	it := g.Iterator()
	it.End()
	for it.Prev() {
		reverse = append(reverse, it.ID())
	}
	assert.Equal(t, []int{3, 2, 1}, reverse)
}

func TestVertexIteratorBidirectional(t *testing.T) {
	g := core.NewUndirected[int]()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)

	it := g.Iterator()
	require.True(t, it.Next()) // 1
	require.True(t, it.Next()) // 2
	assert.Equal(t, 2, it.ID())
	require.True(t, it.Prev()) // back to 1
	assert.Equal(t, 1, it.ID())
	require.True(t, it.Last())
	assert.Equal(t, 3, it.ID())
	require.True(t, it.First())
	assert.Equal(t, 1, it.ID())

	it.Begin()
	assert.False(t, it.Valid())
	require.True(t, it.Next())
	assert.Equal(t, 1, it.ID())
}

func TestIteratorAt(t *testing.T) {
	g := core.NewUndirected[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	it := g.IteratorAt(2)
	require.True(t, it.Valid(), "cursor must sit on the requested vertex")
	assert.Equal(t, 2, it.ID())
	require.True(t, it.Next())
	assert.Equal(t, 3, it.ID())

	missing := g.IteratorAt(99)
	assert.False(t, missing.Valid(), "lookup of a missing vertex is the end sentinel")
	assert.False(t, missing.Next())
	assert.Equal(t, 0, missing.ID(), "deref of an unpositioned cursor yields the zero value")
}

func TestNeighborIteration(t *testing.T) {
	g := core.NewUndirected[int]()
	g.AddEdge(1, 3, core.WithWeight(30))
	g.AddEdge(1, 2, core.WithWeight(20))

	var dests []int
	var weights []int64
	for ni := g.Adjacent(1); ni.Next(); {
		dests = append(dests, ni.Dest())
		weights = append(weights, ni.Weight())
	}
	assert.Equal(t, []int{2, 3}, dests)
	assert.Equal(t, []int64{20, 30}, weights)

	// reverse over the same range
	ni := g.Adjacent(1)
	ni.End()
	dests = dests[:0]
	for ni.Prev() {
		dests = append(dests, ni.Dest())
	}
	assert.Equal(t, []int{3, 2}, dests)
}

func TestAdjacentMissingVertexIsEmptyRange(t *testing.T) {
	g := core.NewUndirected[int]()
	g.AddVertex(1)

	ni := g.Adjacent(99)
	assert.False(t, ni.Next())
	assert.False(t, ni.Prev())
	assert.False(t, ni.First())
	assert.False(t, ni.Last())
	assert.False(t, ni.Valid())
	assert.Equal(t, 0, ni.Dest())
	assert.Equal(t, int64(0), ni.Weight())

	// empty range of an existing isolated vertex behaves the same
	isolated := g.Adjacent(1)
	assert.False(t, isolated.Next())
}

func TestNestedTraversal(t *testing.T) {
	g := core.NewUndirected(core.W(1, 2, 5), core.W(2, 3, 1))

	type arc struct {
		from, to int
		w        int64
	}
	var arcs []arc
	for vi := g.Iterator(); vi.Next(); {
		for ni := vi.Adjacent(); ni.Next(); {
			arcs = append(arcs, arc{vi.ID(), ni.Dest(), ni.Weight()})
		}
	}
	want := []arc{
		{1, 2, 5},
		{2, 1, 5}, {2, 3, 1},
		{3, 2, 1},
	}
	assert.Equal(t, want, arcs)
}

func TestSetWeightInPlace(t *testing.T) {
	g := core.NewDirected[int]()
	g.AddEdge(1, 2, core.WithWeight(5))
	g.AddEdge(1, 3, core.WithWeight(7))

	before := g.EdgeCount()
	ni := g.Adjacent(1)
	for ni.Next() {
		if ni.Dest() == 2 {
			ni.SetWeight(50)
		}
	}

	assert.Equal(t, int64(50), g.Weight(1, 2))
	assert.Equal(t, int64(7), g.Weight(1, 3), "other entries untouched")
	assert.Equal(t, before, g.EdgeCount(), "SetWeight must not change topology")
	assert.Equal(t, 2, g.Degree(1))

	// the cursor survives the edit: the key set was not modified
	ni.Begin()
	require.True(t, ni.Next())
	assert.Equal(t, int64(50), ni.Weight())
}

func TestSeqViews(t *testing.T) {
	g := core.NewUndirected[int]()
	g.AddVertex(3)
	g.AddVertex(1)
	g.AddVertex(2)

	var forward, backward []int
	for v := range g.All() {
		forward = append(forward, v)
	}
	for v := range g.Backward() {
		backward = append(backward, v)
	}
	assert.Equal(t, []int{1, 2, 3}, forward)
	assert.Equal(t, []int{3, 2, 1}, backward)

	// early break must stop the sequence cleanly
	var first int
	for v := range g.All() {
		first = v
		break
	}
	assert.Equal(t, 1, first)
}

func TestAdjacentAllSeq(t *testing.T) {
	g := core.NewUndirected[string]()
	g.AddEdge("a", "c", core.WithWeight(2))
	g.AddEdge("a", "b", core.WithWeight(1))

	got := map[string]int64{}
	var order []string
	for dest, w := range g.AdjacentAll("a") {
		got[dest] = w
		order = append(order, dest)
	}
	assert.Equal(t, map[string]int64{"b": 1, "c": 2}, got)
	assert.Equal(t, []string{"b", "c"}, order)

	for range g.AdjacentAll("zzz") {
		t.Fatal("sequence over a missing vertex must be empty")
	}
}
