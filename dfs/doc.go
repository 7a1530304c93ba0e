// Package dfs implements depth-first search over core graphs.
//
// The traversal is preorder: a vertex is reported when it is first
// discovered, before any of its neighbors. Among the unvisited
// neighbors of a vertex the one with the smallest identifier is
// explored first, so the visit order is deterministic for a given
// graph and start vertex.
//
// # Options
//
//   - WithContext(ctx)         - cancellation and deadlines
//   - WithMaxDepth(limit)      - do not descend past the given depth
//   - WithFilterNeighbor(fn)   - skip neighbors for which fn returns false
//   - WithOnVisit(fn)          - hook invoked on discovery; an error aborts
//
// # Errors
//
//   - ErrGraphNil              - the graph argument is nil
//   - ErrStartVertexNotFound   - the start vertex is not in the graph
//   - ErrOptionViolation       - an option received an invalid value
//
// Complexity: O(V + E) time, O(V) auxiliary space.
package dfs
