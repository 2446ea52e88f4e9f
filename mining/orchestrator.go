package mining

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"ptfmine/utils"
)

// runSequential processes partitions one at a time, each directly
// against the shared global heap, so rmsup gained from one partition
// immediately prunes the next (the "rolling rmsup" of spec.md §5).
func runSequential(partitions []*Partition, global *TopKHeap, log *utils.Logger) {
	for _, p := range partitions {
		if p.degenerate() {
			continue
		}
		processPartition(p, global)
	}
	if log != nil {
		log.Info("sequential mining processed %d partitions", len(partitions))
	}
}

// runParallel dispatches partitions across a bounded worker pool. Each
// worker takes a dispatch-time, by-value snapshot of the current
// global heap (spec.md §4.6/§5: MH copies are by value), mines its
// partition against that local copy, and the result is folded back
// into the shared global heap under a mutex once the worker finishes.
// A snapshot taken at dispatch time may miss rmsup gains from
// partitions still in flight; correctness does not depend on the
// freshest possible rmsup, only on merge being idempotent and
// support-monotone (Invariant B), which TopKHeap.Merge guarantees.
func runParallel(ctx context.Context, partitions []*Partition, global *TopKHeap, workers int, log *utils.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex

	for _, p := range partitions {
		p := p
		if p.degenerate() {
			continue
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			mu.Lock()
			local := global.Clone()
			mu.Unlock()

			processPartition(p, local)

			mu.Lock()
			global.Merge(local)
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if log != nil {
		if err != nil {
			log.Error("parallel mining aborted: %v", err)
		} else {
			log.Info("parallel mining processed %d partitions across %d workers", len(partitions), workers)
		}
	}
	return err
}
