// Package adjacency is a generic, sorted adjacency-list graph library:
// one in-memory container, two edge policies, deterministic iteration.
//
// 🚀 What is adjacency?
//
//	A small, pure-Go library built around an ordered adjacency list
//	keyed by any ordered identifier type:
//		• Core container: undirected & directed variants over one shared store
//		• Sorted everything: vertices and neighbors iterate in key order
//		• Bidirectional cursors: walk vertices and neighbors forward or back
//		• Range-over-func views: for v := range g.All() { ... }
//		• Builders: Path, Cycle, Complete, Star fixtures in one call
//		• Clients: BFS, DFS and Dijkstra over the same interface
//
// ✨ Why choose adjacency?
//
//   - Total functions – queries never fail; absence is false/0/empty range
//   - Deterministic – iteration order is the identifier's total order
//   - Generic – any cmp.Ordered vertex type: int indices, string labels, ...
//   - Minimal – one storage model, two thin policies, no feature flags
//
// Packages:
//
//	core/     — the graph container: storage, queries, mutation, iteration
//	builder/  — deterministic topology constructors for tests and demos
//	bfs/      — breadth-first search over core.Graph
//	dfs/      — depth-first search over core.Graph
//	dijkstra/ — single-source shortest paths over core.Graph
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	four vertices, four edges; forward iteration yields 1,2,3,4.
//
//	go get github.com/katalvlaran/adjacency
package adjacency
