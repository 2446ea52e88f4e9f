package mining

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"ptfmine/utils"
)

// Config controls a single Mine invocation (spec.md §6).
type Config struct {
	// K is the number of top itemsets to return. Must be positive.
	K int

	// Parallel selects the worker-pool orchestrator (C6) over the
	// sequential one. Either path is result-equivalent (spec.md §8 S6).
	Parallel bool

	// Workers bounds concurrency when Parallel is set. Zero defaults to
	// runtime.NumCPU() (spec.md §9.3 supplemented default); negative is
	// rejected.
	Workers int

	// Logger receives progress/diagnostic messages; nil disables
	// logging entirely.
	Logger *utils.Logger
}

func (c Config) validate() error {
	if c.K <= 0 {
		return fmt.Errorf("k must be positive, got %d: %w", c.K, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d: %w", c.Workers, ErrInvalidConfig)
	}
	return nil
}

func (c Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Mine runs the full PTF pipeline (C7) over source: scan into vertical
// form, bootstrap the running minimum support from every frequent
// pair, build prefix partitions over the items whose own support
// reaches that minimum, expand each (sequential or parallel per
// cfg.Parallel), and return the k highest-support itemsets of two or
// more items sorted descending by support (ties ascending by itemset).
// Single-item itemsets are not reported.
//
// An empty source (no transactions, or transactions with no items)
// yields an empty, non-error result (spec.md §7).
func Mine(ctx context.Context, source TransactionSource, cfg Config) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sr, err := scan(source)
	if err != nil {
		return nil, err
	}
	if sr.nTxns == 0 || len(sr.tidsets) == 0 {
		return nil, nil
	}

	global := NewTopKHeap(cfg.K)
	bootstrap(sr, global)

	rmsup := global.MinSupport()
	frequent := make([]Item, 0, len(sr.tidsets))
	for it, tids := range sr.tidsets {
		if len(tids) < rmsup {
			continue
		}
		frequent = append(frequent, it)
	}
	sort.Slice(frequent, func(i, j int) bool { return frequent[i] < frequent[j] })

	all := buildPartitions(sr, frequent)
	partitions := filterPartitions(all, global)

	if cfg.Logger != nil {
		cfg.Logger.Info("scanned %d transactions, %d items, %d candidate partitions, %d after filtering",
			sr.nTxns, len(frequent), len(all), len(partitions))
	}

	if cfg.Parallel {
		if err := runParallel(ctx, partitions, global, cfg.workerCount(), cfg.Logger); err != nil {
			return nil, err
		}
	} else {
		runSequential(partitions, global, cfg.Logger)
	}

	return global.DrainSorted(), nil
}

// bootstrap seeds MH (and so rmsup) from every frequent pair in the CO
// matrix before any partition is processed, establishing a non-trivial
// pruning floor up front rather than discovering it lazily partition
// by partition (spec.md §4.4, §9 Open Question resolution: the
// bootstrap pass runs to completion before any partition filter or
// expansion begins). Singleton supports are not inserted here — they
// are read directly from sr.tidsets to determine the frequent-item
// universe (spec.md §4.4, SPEC_FULL.md §9.3.3), never competing as MH
// members in their own right.
func bootstrap(sr *scanResult, global *TopKHeap) {
	for lo, row := range sr.co.counts {
		for hi, count := range row {
			global.Insert(Itemset{lo, hi}, count)
		}
	}
}
