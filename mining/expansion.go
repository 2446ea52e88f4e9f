package mining

import "container/heap"

// candidate is one pending expansion in a partition's expansion queue:
// an itemset, its support within the partition, and lastPos — the
// index into Partition.Promising just past the last item folded into
// items, so expansion only ever extends with later promising items
// (spec.md §4.5, original_source sgl_partition.py last_pos).
type candidate struct {
	items   Itemset
	support int
	lastPos int
	tids    Tidset
}

// expansionQueue is qe, the max-priority queue ordering pending
// candidates by support descending, ties broken by ascending
// lexicographic itemset (spec.md §3 Expansion Queue).
type expansionQueue struct {
	h expansionHeap
}

func newExpansionQueue() *expansionQueue {
	return &expansionQueue{h: make(expansionHeap, 0)}
}

func (q *expansionQueue) push(c candidate) {
	heap.Push(&q.h, c)
}

// pop removes and returns the highest-support pending candidate. ok is
// false when the queue is empty.
func (q *expansionQueue) pop() (candidate, bool) {
	if len(q.h) == 0 {
		return candidate{}, false
	}
	return heap.Pop(&q.h).(candidate), true
}

func (q *expansionQueue) empty() bool { return len(q.h) == 0 }

type expansionHeap []candidate

func (h expansionHeap) Len() int { return len(h) }

func (h expansionHeap) Less(i, j int) bool {
	if h[i].support != h[j].support {
		return h[i].support > h[j].support
	}
	return lexLess(h[i].items, h[j].items)
}

func (h expansionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *expansionHeap) Push(x any) {
	*h = append(*h, x.(candidate))
}

func (h *expansionHeap) Pop() any {
	old := *h
	n := len(old)
	last := old[n-1]
	*h = old[:n-1]
	return last
}
