package mining

import "sort"

// Partition is the prefix partition P_i for a single frequent item
// (spec.md §3 Prefix Partition, §4.4). It holds the promising-item
// array AR_i and a self-contained vertical (tidset) view restricted to
// this partition's scope, so the partition processor never touches the
// global tidsets once construction is done.
type Partition struct {
	// Prefix is x_i, the item this partition is anchored on.
	Prefix Item

	// Promising is AR_i: every item y > Prefix that co-occurs with it
	// at least once, ordered by CO[Prefix][y] descending, ties broken
	// by ascending item value (spec.md §4.4).
	Promising []Item

	// Tidsets holds, for Prefix and every item in Promising, the tidset
	// restricted to transactions that also contain Prefix. Prefix's own
	// entry is its full global tidset — every transaction containing it
	// belongs to this partition (spec.md §9 build_vertical_representation).
	Tidsets map[Item]Tidset
}

// buildPartitions constructs one Partition per frequent item, given the
// global vertical representation and co-occurrence matrix from scan.
// frequent must already be the set of items meeting the bootstrap
// rmsup (spec.md §4.1 bootstrap, §4.4).
func buildPartitions(sr *scanResult, frequent []Item) []*Partition {
	partitions := make([]*Partition, 0, len(frequent))
	for _, x := range frequent {
		row := sr.co.Above(x)
		promising := make([]Item, 0, len(row))
		for y := range row {
			promising = append(promising, y)
		}
		sort.Slice(promising, func(i, j int) bool {
			ci, cj := row[promising[i]], row[promising[j]]
			if ci != cj {
				return ci > cj
			}
			return promising[i] < promising[j]
		})

		tidsets := make(map[Item]Tidset, len(promising)+1)
		xTids := sr.tidsets[x]
		tidsets[x] = xTids
		for _, y := range promising {
			tidsets[y] = intersectTidsets(xTids, sr.tidsets[y])
		}

		partitions = append(partitions, &Partition{
			Prefix:    x,
			Promising: promising,
			Tidsets:   tidsets,
		})
	}
	return partitions
}

// degenerate reports whether a partition can contribute no itemset of
// size >= 2 and so is safe to skip outright (spec.md §9.3: degenerate-
// partition filtering) — no promising items at all means the prefix
// item has no co-occurring partner.
func (p *Partition) degenerate() bool {
	return len(p.Promising) == 0
}

// upperBound is the highest support any itemset rooted at this
// partition could possibly have: the prefix item's own support, since
// every extension only intersects tidsets and so can never grow them.
func (p *Partition) upperBound() int {
	return len(p.Tidsets[p.Prefix])
}

// filterPartitions drops partitions that are degenerate, or whose
// upperBound cannot possibly reach the current running minimum
// support, before any are dispatched for expansion (spec.md §9.3,
// grounded on original_source's algorithm_parallel.py filter_partitions
// pass: a sequential pruning loop run once up front against the
// bootstrapped rmsup). The bound uses a strict "<", not "<=": a
// partition whose upperBound exactly equals rmsup can still contribute
// an itemset that wins a tie by itemset order, and dropping it here
// would make that outcome depend on this pre-pass rather than on
// TopKHeap.Insert's own tie-break (see processPartition's pruning
// comment for the equivalent reasoning inside a partition).
func filterPartitions(partitions []*Partition, global *TopKHeap) []*Partition {
	rmsup := global.MinSupport()
	out := partitions[:0]
	for _, p := range partitions {
		if p.degenerate() {
			continue
		}
		if global.Full() && p.upperBound() < rmsup {
			continue
		}
		out = append(out, p)
	}
	return out
}
