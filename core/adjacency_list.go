// Package core: the shared adjacency-list storage.
//
// store holds the nested ordered mapping vertex → (neighbor → weight) and
// implements every policy-independent operation exactly once. Undirected
// and Directed embed it and contribute only the two behaviors that differ:
// AddEdge and EdgeCount.
//
// Both mapping levels are red-black trees keyed by V, which gives sorted
// iteration, O(log n) point lookups, and a well-defined minimum vertex.
package core

import (
	"cmp"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// store is the canonical adjacency structure shared by both graph variants.
//
// adj maps a boxed V to an inner *rbt.Tree mapping boxed neighbor V to
// int64 weight. Absence of a key at either level is the only "does not
// exist" signal; there are no tombstones and no deletion path.
type store[V cmp.Ordered] struct {
	adj *rbt.Tree
	cmp utils.Comparator
}

// newStore returns an empty store ordering both levels by cmp.Compare.
func newStore[V cmp.Ordered]() store[V] {
	c := comparatorOf[V]()

	return store[V]{adj: rbt.NewWith(c), cmp: c}
}

// ensure returns v's neighbor tree, creating the vertex if absent.
// Complexity: O(log V)
func (s *store[V]) ensure(v V) *rbt.Tree {
	if inner, ok := s.adj.Get(v); ok {
		return inner.(*rbt.Tree)
	}
	inner := rbt.NewWith(s.cmp)
	s.adj.Put(v, inner)

	return inner
}

// neighborsOf returns v's neighbor tree or nil when v is absent.
// Complexity: O(log V)
func (s *store[V]) neighborsOf(v V) *rbt.Tree {
	if inner, ok := s.adj.Get(v); ok {
		return inner.(*rbt.Tree)
	}

	return nil
}

// arcCount sums the sizes of all neighbor sets, i.e. the number of stored
// arcs. The two variants derive EdgeCount from it.
// Complexity: O(V)
func (s *store[V]) arcCount() int {
	var total int
	it := s.adj.Iterator()
	for it.Next() {
		total += it.Value().(*rbt.Tree).Size()
	}

	return total
}

// AddVertex ensures v exists with a (possibly empty) neighbor set.
// Re-adding an existing vertex is a no-op.
// Complexity: O(log V)
func (s *store[V]) AddVertex(v V) {
	s.ensure(v)
}

// HasVertex reports whether v is a vertex of the graph.
// Complexity: O(log V)
func (s *store[V]) HasVertex(v V) bool {
	_, ok := s.adj.Get(v)

	return ok
}

// HasEdge reports whether the arc u→v is stored. For the undirected
// variant the symmetric-insertion invariant makes HasEdge(u,v) and
// HasEdge(v,u) agree for any graph built through AddEdge.
// Complexity: O(log V + log d)
func (s *store[V]) HasEdge(u, v V) bool {
	inner := s.neighborsOf(u)
	if inner == nil {
		return false
	}
	_, ok := inner.Get(v)

	return ok
}

// Weight returns the stored weight of the arc u→v, or 0 when either
// endpoint or the edge is missing. Zero is ambiguous between "weight is
// literally 0" and "no edge"; pair with HasEdge to disambiguate.
// Complexity: O(log V + log d)
func (s *store[V]) Weight(u, v V) int64 {
	inner := s.neighborsOf(u)
	if inner == nil {
		return 0
	}
	if w, ok := inner.Get(v); ok {
		return w.(int64)
	}

	return 0
}

// Degree returns the size of v's neighbor set, or 0 when v is absent.
// For the directed variant this is the out-degree.
// Complexity: O(log V)
func (s *store[V]) Degree(v V) int {
	inner := s.neighborsOf(v)
	if inner == nil {
		return 0
	}

	return inner.Size()
}

// MinVertex returns the smallest vertex identifier, or the zero value of V
// when the graph is empty. The zero value is a sentinel, not an error.
// Complexity: O(log V)
func (s *store[V]) MinVertex() V {
	left := s.adj.Left()
	if left == nil {
		var zero V
		return zero
	}

	return left.Key.(V)
}

// VertexCount returns the number of distinct vertices.
// Complexity: O(1)
func (s *store[V]) VertexCount() int {
	return s.adj.Size()
}

// Vertices returns all vertex identifiers in ascending order.
// Complexity: O(V)
func (s *store[V]) Vertices() []V {
	out := make([]V, 0, s.adj.Size())
	it := s.adj.Iterator()
	for it.Next() {
		out = append(out, it.Key().(V))
	}

	return out
}

// Neighbors returns v's outgoing arcs as edge records in ascending
// destination order, or an empty slice when v is absent.
// Complexity: O(log V + d)
func (s *store[V]) Neighbors(v V) []Edge[V] {
	inner := s.neighborsOf(v)
	if inner == nil {
		return nil
	}
	out := make([]Edge[V], 0, inner.Size())
	it := inner.Iterator()
	for it.Next() {
		out = append(out, Edge[V]{From: v, To: it.Key().(V), Weight: it.Value().(int64)})
	}

	return out
}

// Edges returns every stored arc in (source, destination) ascending order.
// In the undirected variant each edge appears twice, once per direction;
// in the directed variant each arc is one edge.
// Complexity: O(V + E)
func (s *store[V]) Edges() []Edge[V] {
	var out []Edge[V]
	vit := s.adj.Iterator()
	for vit.Next() {
		from := vit.Key().(V)
		nit := vit.Value().(*rbt.Tree).Iterator()
		for nit.Next() {
			out = append(out, Edge[V]{From: from, To: nit.Key().(V), Weight: nit.Value().(int64)})
		}
	}

	return out
}
