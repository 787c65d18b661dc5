package astar

import (
	"iter"

	"github.com/pdrpinto/jpsastar/internal"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable, C Cost] struct {
	Current    NodeType
	Cost       C
	Stale      bool
	Done       bool
	Found      bool
	StepIndex  int
	Discovered int
	Queued     int
}

// Stepper drives the search loop one queue pop at a time. It is meant for
// UIs and debugging; Search is the same loop run to completion.
type Stepper[NodeType comparable, C Cost] struct {
	search    *searcher[NodeType, C]
	stepCount int
	last      StepSnapshot[NodeType, C]
	final     stepOutcome[C]
}

// NewStepper creates a stepper positioned before the first pop.
func NewStepper[NodeType comparable, C Cost](
	startNode NodeType,
	successors Successors[NodeType, C],
	heuristic Heuristic[NodeType, C],
	success Success[NodeType],
	options ...Option,
) *Stepper[NodeType, C] {
	return &Stepper[NodeType, C]{
		search: newSearcher(startNode, successors, heuristic, success, applyOptions(options)),
		final:  stepOutcome[C]{state: running},
	}
}

// Step pops one entry and returns a snapshot. Once the search is done every
// further call returns the final snapshot again.
func (st *Stepper[NodeType, C]) Step() StepSnapshot[NodeType, C] {
	if st.final.state != running {
		return st.last
	}

	st.stepCount++
	out := st.search.step()
	snapshot := StepSnapshot[NodeType, C]{
		Cost:       out.cost,
		Stale:      out.stale,
		StepIndex:  st.stepCount,
		Discovered: st.search.store.Len(),
		Queued:     st.search.queue.Len(),
	}
	if out.index != internal.NoParent {
		snapshot.Current, _ = st.search.store.Get(out.index)
	}
	if out.state != running {
		st.final = out
		snapshot.Done = true
		snapshot.Found = out.state == succeeded
	}
	st.last = snapshot
	return snapshot
}

// Done reports whether the search has finished.
func (st *Stepper[NodeType, C]) Done() bool { return st.final.state != running }

// Result returns the outcome once Done, and a zero Result before that.
func (st *Stepper[NodeType, C]) Result() Result[NodeType, C] {
	if !st.Done() {
		return Result[NodeType, C]{ExpandedNodes: st.search.expanded}
	}
	return st.search.result(st.final)
}

// Path returns the lazy goal-to-start path, or nil if no goal was found.
func (st *Stepper[NodeType, C]) Path() iter.Seq[NodeType] {
	return st.Result().Path
}

// Discovered yields every node seen so far with its best known cost, in
// discovery order.
func (st *Stepper[NodeType, C]) Discovered() iter.Seq2[NodeType, C] {
	return func(yield func(NodeType, C) bool) {
		for node, entry := range st.search.store.All() {
			if !yield(node, entry.Cost) {
				return
			}
		}
	}
}
