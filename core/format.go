// Package core: textual rendering. Presentation only; nothing in the
// container depends on this output.
package core

import (
	"fmt"
	"strings"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// String renders each vertex with its (neighbor:weight) pairs in iteration
// order, e.g. "1(2:5,3:1) 2(1:5) 3(1:1) ". Intended for debugging and
// examples, not as a stable serialization format.
// Complexity: O(V + E)
func (s *store[V]) String() string {
	var b strings.Builder
	vit := s.adj.Iterator()
	for vit.Next() {
		fmt.Fprintf(&b, "%v(", vit.Key())
		nit := vit.Value().(*rbt.Tree).Iterator()
		first := true
		for nit.Next() {
			if !first {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%v:%d", nit.Key(), nit.Value().(int64))
			first = false
		}
		b.WriteString(") ")
	}

	return b.String()
}
