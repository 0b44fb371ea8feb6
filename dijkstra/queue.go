package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/skyroute/core"
)

// queueItem is one unsettled node and its tentative distance.
type queueItem struct {
	node  core.Node
	dist  int64
	index int // position in the heap slice, maintained by Swap
}

// nodePQ is a min-heap of *queueItem ordered by (dist, node.ID).
type nodePQ []*queueItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node ID to make ties deterministic.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node.ID < pq[j].node.ID
}

// Swap swaps two elements and keeps their indices current.
func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x to the end of the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}

// unsettledSet is the engine's unsettled partition: an indexed heap with
// decrease-key, so each node appears at most once.
type unsettledSet struct {
	pq    nodePQ
	items map[string]*queueItem
}

func newUnsettledSet(capacity int) *unsettledSet {
	return &unsettledSet{
		pq:    make(nodePQ, 0, capacity),
		items: make(map[string]*queueItem, capacity),
	}
}

// Len returns the number of unsettled nodes.
func (s *unsettledSet) Len() int { return s.pq.Len() }

// Contains reports whether id is currently unsettled.
func (s *unsettledSet) Contains(id string) bool {
	_, ok := s.items[id]

	return ok
}

// Upsert inserts node with dist, or lowers its key if already present.
func (s *unsettledSet) Upsert(node core.Node, dist int64) {
	if item, ok := s.items[node.ID]; ok {
		item.dist = dist
		heap.Fix(&s.pq, item.index)
		return
	}
	item := &queueItem{node: node, dist: dist}
	heap.Push(&s.pq, item)
	s.items[node.ID] = item
}

// PopMin removes and returns the node with the smallest (dist, ID).
func (s *unsettledSet) PopMin() (core.Node, int64) {
	item := heap.Pop(&s.pq).(*queueItem)
	delete(s.items, item.node.ID)

	return item.node, item.dist
}
