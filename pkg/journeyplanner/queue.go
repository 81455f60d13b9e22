package journeyplanner

import (
	"container/heap"

	"github.com/travigo/busnetwork/pkg/network"
)

type queueItem struct {
	stop *network.Stop
	cost float64

	// insertion order, breaks ties between equal costs
	sequence int
	// position in the heap, -1 once popped or removed
	index int
}

// stopQueue is a min-heap of queue items that also tracks which item is currently
// queued for each stop, so an entry can be removed before its replacement is added.
type stopQueue struct {
	items    []*queueItem
	byStop   []*queueItem
	sequence int
}

func newStopQueue(size int) *stopQueue {
	return &stopQueue{
		byStop: make([]*queueItem, size),
	}
}

func (q *stopQueue) Len() int { return len(q.items) }

func (q *stopQueue) Less(i, j int) bool {
	if q.items[i].cost == q.items[j].cost {
		return q.items[i].sequence < q.items[j].sequence
	}
	return q.items[i].cost < q.items[j].cost
}

func (q *stopQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *stopQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(q.items)
	q.items = append(q.items, item)
}

func (q *stopQueue) Pop() any {
	last := len(q.items) - 1
	item := q.items[last]
	q.items[last] = nil
	q.items = q.items[:last]
	item.index = -1

	return item
}

// upsert queues stop at cost, dropping any entry already queued for it.
func (q *stopQueue) upsert(stop *network.Stop, cost float64) {
	if old := q.byStop[stop.Index]; old != nil && old.index >= 0 {
		heap.Remove(q, old.index)
	}

	item := &queueItem{
		stop:     stop,
		cost:     cost,
		sequence: q.sequence,
	}
	q.sequence++

	q.byStop[stop.Index] = item
	heap.Push(q, item)
}

func (q *stopQueue) popMin() *queueItem {
	item := heap.Pop(q).(*queueItem)
	if q.byStop[item.stop.Index] == item {
		q.byStop[item.stop.Index] = nil
	}

	return item
}
