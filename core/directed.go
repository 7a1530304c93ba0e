// Package core: the directed edge policy.
package core

import (
	"cmp"
	"iter"
)

// Directed is a weighted, directed graph over identifiers of type V.
// It shares the undirected variant's storage and query surface; only edge
// insertion (single arc) and edge counting (no halving) differ. Degree is
// the out-degree.
type Directed[V cmp.Ordered] struct {
	store[V]
}

var _ Graph[string] = (*Directed[string])(nil)

// NewDirected returns a directed graph populated from the given edge
// records, applying the same insertion semantics as repeated AddEdge calls.
func NewDirected[V cmp.Ordered](edges ...Edge[V]) *Directed[V] {
	g := &Directed[V]{store: newStore[V]()}
	for _, e := range edges {
		g.insert(e.From, e.To, e.Weight)
	}

	return g
}

// CollectDirected drains seq to exhaustion into a new directed graph.
// The sequence is consumed exactly once.
func CollectDirected[V cmp.Ordered](seq iter.Seq[Edge[V]]) *Directed[V] {
	g := NewDirected[V]()
	for e := range seq {
		g.insert(e.From, e.To, e.Weight)
	}

	return g
}

// insert records the single arc u→v and guarantees v exists as a vertex,
// possibly with an empty neighbor set. No reverse arc is implied.
func (g *Directed[V]) insert(u, v V, w int64) {
	g.ensure(u).Put(v, w)
	g.ensure(v)
}

// AddEdge inserts or overwrites the directed edge u→v, creating both
// endpoints as vertices if absent. The weight defaults to 1; override with
// WithWeight. HasEdge(v,u) is unaffected by this call.
// Complexity: O(log V + log d)
func (g *Directed[V]) AddEdge(u, v V, opts ...EdgeOption) {
	g.insert(u, v, resolveWeight(opts))
}

// EdgeCount returns the number of directed edges: every stored arc is one
// edge, so this is the sum of all out-degrees.
// Complexity: O(V)
func (g *Directed[V]) EdgeCount() int {
	return g.arcCount()
}
