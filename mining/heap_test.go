package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Invariant A: size never exceeds k.
func TestTopKHeapInvariantA(t *testing.T) {
	h := NewTopKHeap(3)
	for i := 1; i <= 10; i++ {
		h.Insert(Itemset{Item(i)}, i)
		assert.LessOrEqual(t, h.Len(), 3)
	}
	assert.Equal(t, 3, h.Len())
}

// Invariant B: rmsup is monotonically non-decreasing once the heap is
// full.
func TestTopKHeapInvariantB(t *testing.T) {
	h := NewTopKHeap(3)
	supports := []int{5, 9, 1, 12, 2, 20, 3}
	prev := 0
	for _, s := range supports {
		h.Insert(Itemset{Item(s)}, s)
		if h.Full() {
			cur := h.MinSupport()
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	}
}

// Invariant C: re-inserting the same itemset updates it in place
// rather than duplicating it.
func TestTopKHeapInvariantC(t *testing.T) {
	h := NewTopKHeap(5)
	h.Insert(Itemset{1, 2}, 3)
	h.Insert(Itemset{1, 2}, 7)
	h.Insert(Itemset{1, 2}, 4) // lower support must not regress the entry
	assert.Equal(t, 1, h.Len())

	res := h.DrainSorted()
	assert.Equal(t, []Result{{Items: Itemset{1, 2}, Support: 7}}, res)
}

func TestTopKHeapTieBreakKeepsLexSmallest(t *testing.T) {
	h := NewTopKHeap(1)
	h.Insert(Itemset{3}, 10)
	h.Insert(Itemset{1}, 10)
	h.Insert(Itemset{2}, 10)
	res := h.DrainSorted()
	assert.Equal(t, Itemset{1}, res[0].Items)
}

func TestTopKHeapCloneIsIndependent(t *testing.T) {
	h := NewTopKHeap(2)
	h.Insert(Itemset{1}, 5)
	clone := h.Clone()
	clone.Insert(Itemset{2}, 9)

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestTopKHeapMerge(t *testing.T) {
	a := NewTopKHeap(2)
	a.Insert(Itemset{1}, 5)
	a.Insert(Itemset{2}, 3)

	b := NewTopKHeap(2)
	b.Insert(Itemset{3}, 8)
	b.Insert(Itemset{4}, 1)

	a.Merge(b)
	res := a.DrainSorted()
	assert.Len(t, res, 2)
	assert.Equal(t, Itemset{3}, res[0].Items)
	assert.Equal(t, 8, res[0].Support)
	assert.Equal(t, Itemset{1}, res[1].Items)
}

func TestDrainSortedOrdering(t *testing.T) {
	h := NewTopKHeap(4)
	h.Insert(Itemset{1, 2}, 4)
	h.Insert(Itemset{3}, 9)
	h.Insert(Itemset{1}, 9)
	h.Insert(Itemset{4, 5}, 1)

	res := h.DrainSorted()
	assert.Equal(t, []Result{
		{Items: Itemset{1}, Support: 9},
		{Items: Itemset{3}, Support: 9},
		{Items: Itemset{1, 2}, Support: 4},
		{Items: Itemset{4, 5}, Support: 1},
	}, res)

	// DrainSorted empties the heap.
	assert.Equal(t, 0, h.Len())
}
