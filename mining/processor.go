package mining

import "github.com/cespare/xxhash/v2"

// processPartition runs Algorithm 2 (spec.md §4.5) over a single
// partition: a high-support-first expansion driven by a max-priority
// queue, pruned by the partition's local running minimum support and
// by Theorem 3 — an extension X ∪ {y2} is only worth computing if its
// left sibling, X with its last item swapped for y2, was itself
// promising enough to have been pushed onto the queue. ht records
// every itemset that has passed the support threshold, keyed by
// xxhash of its canonical encoding, so that check is an O(1) lookup
// instead of a re-walk of already-rejected branches.
//
// Pruning below compares against local.MinSupport() with a strict "<",
// not "<=": a candidate exactly tied with the current rmsup is still
// generated and handed to TopKHeap.Insert, which breaks the tie by
// itemset order (spec.md §9.3). A sequential run's rolling rmsup and a
// parallel worker's dispatch-time snapshot reach that threshold value
// at different points in the traversal; pruning ties away as soon as
// either happened to observe them would make which tied itemset
// survives depend on scheduling, breaking spec.md §8's sequential/
// parallel equivalence property. Letting ties through costs a few
// extra intersections that Insert will reject if they don't win, never
// an incorrect result.
//
// local is the top-k heap this partition mines against: a worker's
// by-value snapshot in parallel mode, the global heap itself in
// sequential mode. Either way no other goroutine touches it during the
// call; it is mutated in place and returned.
func processPartition(p *Partition, local *TopKHeap) *TopKHeap {
	if p.degenerate() {
		return local
	}

	ht := make(map[uint64]struct{})
	qe := newExpansionQueue()

	// Phase A: seed the queue with every frequent pair (Prefix, y).
	// Pairs are not reinserted into the top-k heap here — the global
	// bootstrap (engine.go) already seeded MH from every frequent pair
	// across the whole database, so a partition-local 2-itemset insert
	// would be redundant (spec.md §9 Open Question: bootstrap resolution).
	for pos, y := range p.Promising {
		tids := p.Tidsets[y]
		support := len(tids)
		if support < local.MinSupport() {
			continue
		}
		items := Itemset{p.Prefix, y}
		ht[hashItemset(items)] = struct{}{}
		qe.push(candidate{items: items, support: support, lastPos: pos + 1, tids: tids})
	}

	// Phase B: high-support-first expansion.
	for {
		c, ok := qe.pop()
		if !ok {
			break
		}
		if c.support < local.MinSupport() {
			break
		}
		if len(c.items) >= 3 {
			local.Insert(c.items, c.support)
		}

		sibling := c.items.withoutLast()
		for pos := c.lastPos; pos < len(p.Promising); pos++ {
			y2 := p.Promising[pos]

			if _, ok := ht[hashItemset(sibling.union(y2))]; !ok {
				continue
			}

			tids := intersectTidsets(c.tids, p.Tidsets[y2])
			support := len(tids)
			if support < local.MinSupport() {
				continue
			}

			extended := c.items.union(y2)
			ht[hashItemset(extended)] = struct{}{}
			qe.push(candidate{items: extended, support: support, lastPos: pos + 1, tids: tids})
		}
	}

	return local
}

func hashItemset(items Itemset) uint64 {
	return xxhash.Sum64(canonicalBytes(items))
}
