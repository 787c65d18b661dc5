// Package astar provides a generic A* search whose successor function sees
// the parent of the node being expanded.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one queue pop at a time to drive UIs or debugging tools.
//
// Passing the parent to the successor function is what pruning strategies
// such as jump point search need to pick neighbors by direction of travel.
// Node bookkeeping lives in an insertion-ordered table whose indices never
// change, the priority queue holds indices into it, and improved costs are
// pushed as fresh entries while the outdated ones are skipped when popped.
// The path is walked back from the goal lazily.
package astar
