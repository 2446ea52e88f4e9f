package mining

// scanResult bundles the products of the single pass over a
// TransactionSource: the vertical tidset representation (C2) and the
// co-occurrence matrix (C3), built together so the database is only
// read once (spec.md §4.2/§4.3).
type scanResult struct {
	tidsets map[Item]Tidset
	co      *CoOccurrence
	nTxns   int
}

// scan consumes source to completion, building per-item tidsets and
// pairwise co-occurrence counts in one pass. Items with zero support
// never appear in tidsets since they are only ever recorded via
// transactions that contain them.
func scan(source TransactionSource) (*scanResult, error) {
	tidsets := make(map[Item]Tidset)
	co := newCoOccurrence()

	var tid Tid
	for {
		items, ok := source.Next()
		if !ok {
			break
		}
		for _, it := range items {
			tidsets[it] = append(tidsets[it], tid)
		}
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				co.bump(items[i], items[j])
			}
		}
		tid++
	}
	if err := source.Err(); err != nil {
		return nil, err
	}

	return &scanResult{tidsets: tidsets, co: co, nTxns: int(tid)}, nil
}
