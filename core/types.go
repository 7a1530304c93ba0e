// Package core: shared types for the adjacency-list container.
//
// This file declares the Edge record used by bulk constructors, the
// EdgeOption mechanism carrying the default-weight contract, and the
// Graph interface naming the capability set common to both variants.
package core

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/utils"
)

// DefaultWeight is recorded for an edge inserted without WithWeight.
// It models an unweighted edge as a degenerate weighted edge of cost 1.
const DefaultWeight int64 = 1

// Edge is a single edge record for bulk construction and snapshots.
// From/To are vertex identifiers; Weight is the integer edge cost.
type Edge[V cmp.Ordered] struct {
	From   V
	To     V
	Weight int64
}

// E returns the unweighted edge record (u,v) with Weight = DefaultWeight.
func E[V cmp.Ordered](u, v V) Edge[V] {
	return Edge[V]{From: u, To: v, Weight: DefaultWeight}
}

// W returns the weighted edge record (u,v,weight).
func W[V cmp.Ordered](u, v V, weight int64) Edge[V] {
	return Edge[V]{From: u, To: v, Weight: weight}
}

// edgeSettings holds the resolved per-insertion parameters of AddEdge.
type edgeSettings struct {
	weight int64
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeSettings)

// WithWeight overrides the default weight (1) for one AddEdge call.
// Zero is a legal weight; see the Weight query for the ambiguity this
// creates with the missing-edge sentinel.
func WithWeight(w int64) EdgeOption {
	return func(es *edgeSettings) { es.weight = w }
}

// resolveWeight applies opts over the default settings and returns the
// weight to record.
func resolveWeight(opts []EdgeOption) int64 {
	es := edgeSettings{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&es)
	}

	return es.weight
}

// Graph is the capability set shared by *Undirected[V] and *Directed[V]:
// vertex/edge queries, weight lookup, degree, counts, iteration, and
// mutation. Algorithms should accept this interface rather than a concrete
// variant; only AddEdge and EdgeCount behave differently between the two.
type Graph[V cmp.Ordered] interface {
	// Mutation
	AddVertex(v V)
	AddEdge(u, v V, opts ...EdgeOption)

	// Query
	HasVertex(v V) bool
	HasEdge(u, v V) bool
	Weight(u, v V) int64
	Degree(v V) int
	MinVertex() V
	VertexCount() int
	EdgeCount() int

	// Snapshots
	Vertices() []V
	Neighbors(v V) []Edge[V]
	Edges() []Edge[V]

	// Iteration
	Iterator() *VertexIterator[V]
	IteratorAt(v V) *VertexIterator[V]
	Adjacent(v V) *NeighborIterator[V]
	All() iter.Seq[V]
	Backward() iter.Seq[V]
	AdjacentAll(v V) iter.Seq2[V, int64]

	// Rendering
	String() string
}

// comparatorOf adapts cmp.Compare over V to the gods comparator contract.
// Keys are boxed into interface{} by the backing trees; both sides always
// hold a V, so the assertions cannot fail for a well-typed graph.
func comparatorOf[V cmp.Ordered]() utils.Comparator {
	return func(a, b interface{}) int {
		return cmp.Compare(a.(V), b.(V))
	}
}
