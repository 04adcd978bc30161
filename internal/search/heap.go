package search

import "github.com/FA555/SISSU/internal/game"

// stateHeap is a container/heap min-heap over *game.State ordered by
// Priority (lower is better): the smallest priority is popped first.
type stateHeap []*game.State

func (h stateHeap) Len() int { return len(h) }

func (h stateHeap) Less(i, j int) bool { return h[i].Priority() < h[j].Priority() }

func (h stateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *stateHeap) Push(x any) {
	*h = append(*h, x.(*game.State))
}

func (h *stateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
