package astar

import (
	"github.com/rs/zerolog"

	"github.com/pdrpinto/jpsastar/internal"
)

type searchState int

const (
	running searchState = iota
	succeeded
	exhausted
)

// stepOutcome describes one pop of the queue.
type stepOutcome[C Cost] struct {
	state searchState
	index int
	cost  C
	stale bool
}

// searcher owns the frontier store and the queue of a single search.
type searcher[NodeType comparable, C Cost] struct {
	store      *internal.Store[NodeType, C]
	queue      PriorityQueue[C]
	successors Successors[NodeType, C]
	heuristic  Heuristic[NodeType, C]
	success    Success[NodeType]
	logger     zerolog.Logger
	expanded   int
}

func newSearcher[NodeType comparable, C Cost](
	startNode NodeType,
	successors Successors[NodeType, C],
	heuristic Heuristic[NodeType, C],
	success Success[NodeType],
	options Options,
) *searcher[NodeType, C] {
	s := &searcher[NodeType, C]{
		store:      internal.NewStore[NodeType, C](startNode),
		successors: successors,
		heuristic:  heuristic,
		success:    success,
		logger:     options.Logger,
	}
	var zero C
	s.queue.Push(PriorityQueueItem[C]{EstimatedCost: zero, Cost: zero, Index: s.store.LookupOrCreate(startNode)})
	s.logger.Debug().Interface("start", startNode).Msg("search started")
	return s
}

func (s *searcher[NodeType, C]) step() stepOutcome[C] {
	item, ok := s.queue.PopBest()
	if !ok {
		s.logger.Debug().
			Int("expanded", s.expanded).
			Int("discovered", s.store.Len()).
			Msg("search exhausted")
		return stepOutcome[C]{state: exhausted, index: internal.NoParent}
	}

	node, entry := s.store.Get(item.Index)
	// The goal test comes before the staleness check: the first goal popped
	// in best-first order is accepted.
	if s.success(node) {
		s.logger.Debug().
			Interface("cost", item.Cost).
			Int("expanded", s.expanded).
			Int("discovered", s.store.Len()).
			Msg("search succeeded")
		return stepOutcome[C]{state: succeeded, index: item.Index, cost: item.Cost}
	}
	if item.Cost > entry.Cost {
		s.logger.Trace().
			Int("index", item.Index).
			Interface("cost", item.Cost).
			Interface("best", entry.Cost).
			Msg("stale entry skipped")
		return stepOutcome[C]{state: running, index: item.Index, cost: item.Cost, stale: true}
	}

	s.expand(item.Index, node, item.Cost)
	return stepOutcome[C]{state: running, index: item.Index, cost: item.Cost}
}

// expand relaxes every successor of the node at index and queues the ones
// whose best known cost improved.
func (s *searcher[NodeType, C]) expand(index int, node NodeType, cost C) {
	s.expanded++

	var parent *NodeType
	if p, ok := s.store.Parent(index); ok {
		parent = &p
	}
	for _, neighbor := range s.successors(parent, node) {
		newCost := cost + neighbor.Cost
		successorIndex, outcome := s.store.Relax(neighbor.ID, index, newCost)
		if outcome == internal.Rejected {
			continue
		}
		s.queue.Push(PriorityQueueItem[C]{
			EstimatedCost: newCost + s.heuristic(neighbor.ID),
			Cost:          newCost,
			Index:         successorIndex,
		})
	}
}

func (s *searcher[NodeType, C]) result(out stepOutcome[C]) Result[NodeType, C] {
	if out.state != succeeded {
		return Result[NodeType, C]{ExpandedNodes: s.expanded}
	}
	return Result[NodeType, C]{
		Path:          internal.ReconstructPath(s.store, out.index),
		TotalCost:     out.cost,
		ExpandedNodes: s.expanded,
		Found:         true,
	}
}
