package mazesearch

import "container/heap"

type priorityItem[S comparable] struct {
	entry        Entry[S]
	sequence     int
	indexInQueue int
}

type priorityHeap[S comparable] []*priorityItem[S]

func (queue priorityHeap[S]) Len() int { return len(queue) }

func (queue priorityHeap[S]) Less(i, j int) bool {
	if queue[i].entry.Priority != queue[j].entry.Priority {
		return queue[i].entry.Priority < queue[j].entry.Priority
	}
	// Equal priorities fall back to insertion order so removal is stable.
	return queue[i].sequence < queue[j].sequence
}

func (queue priorityHeap[S]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *priorityHeap[S]) Push(x any) {
	item := x.(*priorityItem[S])
	item.indexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityHeap[S]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}

// PriorityFrontier removes the entry with the minimum priority
// (accumulated cost + heuristic). Ties are broken by a monotonic counter
// assigned at insertion, scoped to one frontier, so removal order among
// equal-priority entries is deterministic.
type PriorityFrontier[S comparable] struct {
	queue    priorityHeap[S]
	sequence int
}

func NewPriorityFrontier[S comparable]() *PriorityFrontier[S] {
	f := &PriorityFrontier[S]{queue: make(priorityHeap[S], 0)}
	heap.Init(&f.queue)
	return f
}

func (f *PriorityFrontier[S]) Insert(e Entry[S]) {
	heap.Push(&f.queue, &priorityItem[S]{entry: e, sequence: f.sequence})
	f.sequence++
}

func (f *PriorityFrontier[S]) Remove() (Entry[S], error) {
	if f.queue.Len() == 0 {
		return Entry[S]{}, ErrEmptyFrontier
	}
	item := heap.Pop(&f.queue).(*priorityItem[S])
	return item.entry, nil
}

func (f *PriorityFrontier[S]) ContainsState(s S) bool {
	for _, item := range f.queue {
		if item.entry.State == s {
			return true
		}
	}
	return false
}

func (f *PriorityFrontier[S]) Empty() bool { return f.queue.Len() == 0 }

func (f *PriorityFrontier[S]) States() []S {
	states := make([]S, 0, f.queue.Len())
	for _, item := range f.queue {
		states = append(states, item.entry.State)
	}
	return states
}
