// Package dijkstra computes single-source shortest paths on core
// graphs with non-negative edge weights.
//
// Distances are summed int64 edge weights. Vertices the source cannot
// reach are absent from the result maps. The neighbor scan follows the
// graph's sorted order, so ties are broken deterministically.
//
// # Options
//
//   - WithContext(ctx)       - cancellation and deadlines
//   - WithMaxDistance(limit) - treat vertices farther than limit as unreachable
//
// # Errors
//
//   - ErrGraphNil        - the graph argument is nil
//   - ErrSourceNotFound  - the source vertex is not in the graph
//   - ErrNegativeWeight  - the graph contains a negative-weight edge
//   - ErrOptionViolation - an option received an invalid value
//
// Complexity: O((V + E) log V) time with a binary heap, O(V) space.
package dijkstra
