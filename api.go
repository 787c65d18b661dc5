package astar

import (
	"iter"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// Cost is any numeric type the search can accumulate. Overflow follows the
// arithmetic of the chosen type; nothing here detects it.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Neighbor represents a reachable node with the cost of the move to it.
type Neighbor[NodeType comparable, C Cost] struct {
	ID   NodeType
	Cost C
}

// Successors lists the moves out of node. parent is nil when node is the
// start node, which lets pruning rules such as jump point search look at the
// direction of travel. Move costs must be non-negative.
type Successors[NodeType comparable, C Cost] func(parent *NodeType, node NodeType) []Neighbor[NodeType, C]

// Heuristic returns the estimated remaining cost from node. It must never
// overestimate for the returned cost to be optimal.
type Heuristic[NodeType comparable, C Cost] func(node NodeType) C

// Success reports whether node ends the search.
type Success[NodeType comparable] func(node NodeType) bool

// Graph is a parent-unaware adjacency source. See FromGraph.
type Graph[NodeType comparable, C Cost] interface {
	Neighbors(node NodeType) []Neighbor[NodeType, C]
}

// FromGraph adapts graph into Successors that ignore the parent.
func FromGraph[NodeType comparable, C Cost](graph Graph[NodeType, C]) Successors[NodeType, C] {
	return func(_ *NodeType, node NodeType) []Neighbor[NodeType, C] {
		return graph.Neighbors(node)
	}
}

// Result contains the outcome of a search
type Result[NodeType comparable, C Cost] struct {
	// Path yields the goal first and the start last. It is computed lazily
	// on every iteration and is nil when Found is false.
	Path          iter.Seq[NodeType]
	TotalCost     C
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	Logger zerolog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for debug and trace events.
func WithLogger(logger zerolog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{Logger: zerolog.Nop()}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// Search runs a best-first search from startNode until a node satisfies
// success or every reachable node has been expanded. With an admissible and
// consistent heuristic the returned TotalCost is minimal.
func Search[NodeType comparable, C Cost](
	startNode NodeType,
	successors Successors[NodeType, C],
	heuristic Heuristic[NodeType, C],
	success Success[NodeType],
	options ...Option,
) Result[NodeType, C] {
	s := newSearcher(startNode, successors, heuristic, success, applyOptions(options))
	for {
		if out := s.step(); out.state != running {
			return s.result(out)
		}
	}
}

// SearchGoal is Search with a single goal node.
func SearchGoal[NodeType comparable, C Cost](
	startNode NodeType,
	goalNode NodeType,
	successors Successors[NodeType, C],
	heuristic Heuristic[NodeType, C],
	options ...Option,
) Result[NodeType, C] {
	return Search(startNode, successors, heuristic, func(node NodeType) bool {
		return node == goalNode
	}, options...)
}
