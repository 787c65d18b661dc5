package astar

import "container/heap"

// PriorityQueueItem is a queued candidate. Index points into the frontier
// store; several items may share an Index, and all but the cheapest are stale.
type PriorityQueueItem[C Cost] struct {
	EstimatedCost C
	Cost          C
	Index         int
}

// Compare orders items by estimated cost. On a tie the item with the larger
// accumulated cost sorts first, so it is popped before a shallower one.
// Index does not take part.
func (item PriorityQueueItem[C]) Compare(other PriorityQueueItem[C]) int {
	switch {
	case item.EstimatedCost < other.EstimatedCost:
		return -1
	case item.EstimatedCost > other.EstimatedCost:
		return 1
	case item.Cost > other.Cost:
		return -1
	case item.Cost < other.Cost:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both items carry the same costs.
func (item PriorityQueueItem[C]) Equal(other PriorityQueueItem[C]) bool {
	return item.Compare(other) == 0
}

type itemHeap[C Cost] []PriorityQueueItem[C]

func (h itemHeap[C]) Len() int           { return len(h) }
func (h itemHeap[C]) Less(i, j int) bool { return h[i].Compare(h[j]) < 0 }
func (h itemHeap[C]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[C]) Push(x any) {
	*h = append(*h, x.(PriorityQueueItem[C]))
}

func (h *itemHeap[C]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// PriorityQueue hands out the best item first. There is no decrease-key:
// an improved cost is pushed as a new item and the old one goes stale.
type PriorityQueue[C Cost] struct {
	items itemHeap[C]
}

func (queue *PriorityQueue[C]) Len() int { return queue.items.Len() }

func (queue *PriorityQueue[C]) Push(item PriorityQueueItem[C]) {
	heap.Push(&queue.items, item)
}

// PopBest removes and returns the best item, or false if the queue is empty.
func (queue *PriorityQueue[C]) PopBest() (PriorityQueueItem[C], bool) {
	if queue.items.Len() == 0 {
		return PriorityQueueItem[C]{}, false
	}
	return heap.Pop(&queue.items).(PriorityQueueItem[C]), true
}
