// Package mining implements the Prefix-partitioned Top-K Frequent
// itemset mining engine (PTF): database preprocessing into vertical
// tidsets, prefix-partition construction, co-occurrence-driven pruning,
// and the high-support-first expansion that produces the k itemsets
// with highest support in a transaction database.
package mining

import (
	"encoding/binary"
	"sort"
)

// Item is an opaque, totally ordered item identifier.
type Item int

// Tid is a transaction id in [0, N).
type Tid int

// Itemset is a non-empty set of distinct items, always stored and
// compared in ascending order. Treat as immutable once constructed.
type Itemset []Item

// Tidset is the strictly increasing sequence of tids of every
// transaction containing an itemset. support(X) == len(Tidset(X)).
type Tidset []Tid

// Result is one (itemset, support) pair in the final top-k output.
type Result struct {
	Items   Itemset
	Support int
}

// canonicalBytes renders an ascending itemset as a little-endian byte
// sequence, the stable encoding used for hashing (§9 design notes).
// The caller must pass an already-sorted itemset.
func canonicalBytes(items Itemset) []byte {
	buf := make([]byte, 8*len(items))
	for i, it := range items {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(it))
	}
	return buf
}

// key renders the itemset as a comparable Go map key, exact (no
// collisions), suitable for the small top-k heap where correctness
// matters more than hash-map throughput.
func (s Itemset) key() string {
	return string(canonicalBytes(s))
}

func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
}

func (s Itemset) clone() Itemset {
	out := make(Itemset, len(s))
	copy(out, s)
	return out
}

// union returns a new ascending itemset equal to s ∪ {extra}, assuming
// s is already ascending and extra is not already present.
func (s Itemset) union(extra Item) Itemset {
	out := make(Itemset, len(s)+1)
	copy(out, s)
	out[len(s)] = extra
	sortItems(out)
	return out
}

// withoutLast returns s with its maximum element removed. s must be
// non-empty and ascending.
func (s Itemset) withoutLast() Itemset {
	return s[:len(s)-1].clone()
}

func (s Itemset) last() Item {
	return s[len(s)-1]
}

// intersectTidsets computes the ascending intersection of two ascending
// tid sequences via a linear two-pointer merge (spec.md §4.5).
func intersectTidsets(a, b Tidset) Tidset {
	out := make(Tidset, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
