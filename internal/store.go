package internal

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// NoParent is the parent index of the start node.
const NoParent = -1

// Entry is the best known way to reach a node.
type Entry[C constraints.Ordered] struct {
	Parent int
	Cost   C
}

// Outcome reports what Relax did with a candidate.
type Outcome int

const (
	Rejected Outcome = iota
	Inserted
	Improved
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Improved:
		return "improved"
	default:
		return "rejected"
	}
}

// Store is an insertion-ordered node table. It is both the visited set and
// the best-cost table of a search. A node keeps the index it was first
// inserted at for the lifetime of the store; only its Entry is overwritten.
type Store[N comparable, C constraints.Ordered] struct {
	index   map[N]int
	nodes   []N
	entries []Entry[C]
}

// NewStore returns a store holding start at index 0 with no parent and zero cost.
func NewStore[N comparable, C constraints.Ordered](start N) *Store[N, C] {
	s := &Store[N, C]{index: make(map[N]int)}
	s.LookupOrCreate(start)
	return s
}

// Len returns the number of discovered nodes.
func (s *Store[N, C]) Len() int { return len(s.nodes) }

// LookupOrCreate returns the index of node, inserting it with no parent and
// zero cost if it was never seen.
func (s *Store[N, C]) LookupOrCreate(node N) int {
	if i, ok := s.index[node]; ok {
		return i
	}
	var zero C
	return s.insert(node, Entry[C]{Parent: NoParent, Cost: zero})
}

// Get returns the node and entry stored at index i. It panics if i was never
// assigned, which can only happen if index stability is broken.
func (s *Store[N, C]) Get(i int) (N, Entry[C]) {
	if i < 0 || i >= len(s.nodes) {
		panic(fmt.Sprintf("astar: frontier index %d out of range [0,%d)", i, len(s.nodes)))
	}
	return s.nodes[i], s.entries[i]
}

// Parent returns the parent node of the node at index i, or false for the start node.
func (s *Store[N, C]) Parent(i int) (N, bool) {
	_, e := s.Get(i)
	if e.Parent == NoParent {
		var none N
		return none, false
	}
	n, _ := s.Get(e.Parent)
	return n, true
}

// Relax records (parent, cost) for node if node is new or cost beats the
// stored cost. The returned index is meaningless when the outcome is Rejected.
func (s *Store[N, C]) Relax(node N, parent int, cost C) (int, Outcome) {
	i, ok := s.index[node]
	if !ok {
		return s.insert(node, Entry[C]{Parent: parent, Cost: cost}), Inserted
	}
	if s.entries[i].Cost > cost {
		s.entries[i] = Entry[C]{Parent: parent, Cost: cost}
		return i, Improved
	}
	return NoParent, Rejected
}

// All yields every node with its entry in index order.
func (s *Store[N, C]) All() iter.Seq2[N, Entry[C]] {
	return func(yield func(N, Entry[C]) bool) {
		for i, n := range s.nodes {
			if !yield(n, s.entries[i]) {
				return
			}
		}
	}
}

func (s *Store[N, C]) insert(node N, e Entry[C]) int {
	i := len(s.nodes)
	s.index[node] = i
	s.nodes = append(s.nodes, node)
	s.entries = append(s.entries, e)
	return i
}
