// Package core: the iteration protocol.
//
// Two cursor kinds wrap the backing trees' bidirectional iterators:
// VertexIterator walks vertex identifiers in key order and hands out a
// NeighborIterator for the current vertex's adjacency, enabling nested
// for-each-vertex / for-each-neighbor traversal. NeighborIterator walks one
// vertex's (neighbor, weight) entries and permits in-place weight edits.
//
// Cursors borrow live positions from the graph they were requested from:
// any structural mutation (an insertion that changes a tree's shape)
// invalidates them, and they are restartable only by re-requesting a cursor
// from the store. The read-only All/Backward/AdjacentAll views yield copies
// and are the preferred form when no cursor control is needed.
package core

import (
	"cmp"
	"iter"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// VertexIterator is a bidirectional cursor over vertex identifiers in
// ascending key order. A fresh cursor from Iterator() sits before the first
// vertex; a cursor from IteratorAt(v) sits on v when present and is
// exhausted otherwise. Movement methods report whether the cursor landed on
// a vertex; dereferencing an unpositioned cursor yields the zero sentinel.
type VertexIterator[V cmp.Ordered] struct {
	it   rbt.Iterator
	live bool // cursor is on a vertex; ID/Adjacent are meaningful
}

// Iterator returns a vertex cursor positioned before the first vertex.
// The canonical loop is: for it.Next() { ... it.ID() ... }.
func (s *store[V]) Iterator() *VertexIterator[V] {
	return &VertexIterator[V]{it: s.adj.Iterator()}
}

// IteratorAt returns a vertex cursor positioned on v, or an exhausted
// cursor (Valid() == false, Next() == false) when v is absent — the
// end-of-range sentinel of the lookup.
func (s *store[V]) IteratorAt(v V) *VertexIterator[V] {
	node := s.adj.GetNode(v)
	if node == nil {
		vi := &VertexIterator[V]{it: s.adj.Iterator()}
		vi.it.End()

		return vi
	}

	return &VertexIterator[V]{it: s.adj.IteratorAt(node), live: true}
}

// Next advances to the next vertex and reports whether one exists.
func (vi *VertexIterator[V]) Next() bool {
	vi.live = vi.it.Next()

	return vi.live
}

// Prev moves to the previous vertex and reports whether one exists.
// From the end position, Prev lands on the largest vertex, so
// it.End(); for it.Prev() { ... } is the reverse traversal.
func (vi *VertexIterator[V]) Prev() bool {
	vi.live = vi.it.Prev()

	return vi.live
}

// Begin resets the cursor before the first vertex.
func (vi *VertexIterator[V]) Begin() {
	vi.it.Begin()
	vi.live = false
}

// End parks the cursor after the last vertex.
func (vi *VertexIterator[V]) End() {
	vi.it.End()
	vi.live = false
}

// First moves to the smallest vertex and reports whether one exists.
func (vi *VertexIterator[V]) First() bool {
	vi.live = vi.it.First()

	return vi.live
}

// Last moves to the largest vertex and reports whether one exists.
func (vi *VertexIterator[V]) Last() bool {
	vi.live = vi.it.Last()

	return vi.live
}

// Valid reports whether the cursor is positioned on a vertex.
func (vi *VertexIterator[V]) Valid() bool {
	return vi.live
}

// ID dereferences the cursor. On an unpositioned cursor it returns the
// zero value of V.
func (vi *VertexIterator[V]) ID() V {
	if !vi.live {
		var zero V
		return zero
	}

	return vi.it.Key().(V)
}

// Adjacent returns a neighbor cursor for the current vertex's adjacency,
// or an empty cursor when the vertex cursor is unpositioned. This is the
// nesting point for for-each-vertex / for-each-neighbor traversal.
func (vi *VertexIterator[V]) Adjacent() *NeighborIterator[V] {
	if !vi.live {
		return &NeighborIterator[V]{}
	}
	inner := vi.it.Value().(*rbt.Tree)

	return &NeighborIterator[V]{edges: inner, it: inner.Iterator()}
}

// NeighborIterator is a bidirectional cursor over one vertex's
// (neighbor, weight) entries in ascending neighbor order. The zero
// NeighborIterator is the empty range: every movement reports false.
type NeighborIterator[V cmp.Ordered] struct {
	edges *rbt.Tree // nil for the empty range
	it    rbt.Iterator
	live  bool
}

// Adjacent returns a neighbor cursor for v positioned before the first
// entry, or the empty range when v is absent.
func (s *store[V]) Adjacent(v V) *NeighborIterator[V] {
	inner := s.neighborsOf(v)
	if inner == nil {
		return &NeighborIterator[V]{}
	}

	return &NeighborIterator[V]{edges: inner, it: inner.Iterator()}
}

// Next advances to the next neighbor and reports whether one exists.
func (ni *NeighborIterator[V]) Next() bool {
	if ni.edges == nil {
		return false
	}
	ni.live = ni.it.Next()

	return ni.live
}

// Prev moves to the previous neighbor and reports whether one exists.
func (ni *NeighborIterator[V]) Prev() bool {
	if ni.edges == nil {
		return false
	}
	ni.live = ni.it.Prev()

	return ni.live
}

// Begin resets the cursor before the first neighbor.
func (ni *NeighborIterator[V]) Begin() {
	if ni.edges == nil {
		return
	}
	ni.it.Begin()
	ni.live = false
}

// End parks the cursor after the last neighbor.
func (ni *NeighborIterator[V]) End() {
	if ni.edges == nil {
		return
	}
	ni.it.End()
	ni.live = false
}

// First moves to the smallest neighbor and reports whether one exists.
func (ni *NeighborIterator[V]) First() bool {
	if ni.edges == nil {
		return false
	}
	ni.live = ni.it.First()

	return ni.live
}

// Last moves to the largest neighbor and reports whether one exists.
func (ni *NeighborIterator[V]) Last() bool {
	if ni.edges == nil {
		return false
	}
	ni.live = ni.it.Last()

	return ni.live
}

// Valid reports whether the cursor is positioned on a neighbor entry.
func (ni *NeighborIterator[V]) Valid() bool {
	return ni.live
}

// Dest returns the destination identifier of the current entry, or the
// zero value of V on an unpositioned cursor.
func (ni *NeighborIterator[V]) Dest() V {
	if !ni.live {
		var zero V
		return zero
	}

	return ni.it.Key().(V)
}

// Weight returns the weight of the current entry, or 0 on an unpositioned
// cursor.
func (ni *NeighborIterator[V]) Weight() int64 {
	if !ni.live {
		return 0
	}

	return ni.it.Value().(int64)
}

// SetWeight overwrites the weight of the current entry in place: the key
// set is untouched, so the cursor stays valid. On an unpositioned cursor
// this is a no-op. The edit is applied to this arc only — the symmetric
// invariant of the undirected variant is owned by AddEdge; editing one
// direction of a mirrored pair is the caller's responsibility to mirror.
func (ni *NeighborIterator[V]) SetWeight(w int64) {
	if !ni.live {
		return
	}
	ni.edges.Put(ni.it.Key(), w)
}

// All returns a read-only ascending sequence of vertex identifiers for use
// with range-over-func. Yielded values are copies; the store cannot be
// reached through them.
func (s *store[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := s.adj.Iterator()
		for it.Next() {
			if !yield(it.Key().(V)) {
				return
			}
		}
	}
}

// Backward returns a read-only descending sequence of vertex identifiers,
// from the largest to the smallest.
func (s *store[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := s.adj.Iterator()
		it.End()
		for it.Prev() {
			if !yield(it.Key().(V)) {
				return
			}
		}
	}
}

// AdjacentAll returns a read-only ascending (neighbor, weight) sequence
// for v, empty when v is absent.
func (s *store[V]) AdjacentAll(v V) iter.Seq2[V, int64] {
	return func(yield func(V, int64) bool) {
		inner := s.neighborsOf(v)
		if inner == nil {
			return
		}
		it := inner.Iterator()
		for it.Next() {
			if !yield(it.Key().(V), it.Value().(int64)) {
				return
			}
		}
	}
}
