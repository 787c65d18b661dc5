package internal

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// ReconstructPath walks parent indices from current back to the start node.
// Nodes are produced on demand, goal first and start last, straight from the
// store; the store must outlive every iteration of the returned sequence.
func ReconstructPath[N comparable, C constraints.Ordered](
	store *Store[N, C],
	current int,
) iter.Seq[N] {
	return func(yield func(N) bool) {
		for i := current; i != NoParent; {
			node, entry := store.Get(i)
			if !yield(node) {
				return
			}
			i = entry.Parent
		}
	}
}
