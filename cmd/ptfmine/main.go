package main

/*
ptfmine — prefix-partitioned top-k frequent itemset miner.

Reads a transaction database in the reference textual format (one
transaction per line, whitespace-separated non-negative integer item
ids, blank lines ignored) and prints its k highest-support itemsets
of two or more items.

Flags:
  --input=path.txt   transaction database (required)
  --k=10             number of itemsets to report
  --parallel         use the worker-pool orchestrator instead of the
                     sequential one
  --workers=0        worker count when --parallel is set; 0 uses
                     runtime.NumCPU()
*/

import (
	"context"
	"flag"
	"fmt"
	"os"

	"ptfmine/mining"
	"ptfmine/utils"
)

func main() {
	input := flag.String("input", "", "path to the transaction database (required)")
	k := flag.Int("k", 10, "number of top itemsets to report")
	parallel := flag.Bool("parallel", false, "use the parallel worker-pool orchestrator")
	workers := flag.Int("workers", 0, "worker count when --parallel is set (0 = runtime.NumCPU())")
	flag.Parse()

	log := utils.NewLogger(true)

	if *input == "" {
		log.Error("missing required --input flag")
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Error("opening %s: %v", *input, err)
		os.Exit(1)
	}
	defer f.Close()

	timer := utils.NewTimer()
	source := mining.NewTextSource(f)
	cfg := mining.Config{
		K:        *k,
		Parallel: *parallel,
		Workers:  *workers,
		Logger:   log,
	}

	results, err := mining.Mine(context.Background(), source, cfg)
	if err != nil {
		log.Error("mining failed: %v", err)
		os.Exit(1)
	}
	log.Info("mined %d itemsets in %s", len(results), timer.Elapsed())

	for _, r := range results {
		fmt.Printf("%s %d\n", formatItemset(r.Items), r.Support)
	}
}

func formatItemset(items mining.Itemset) string {
	s := "{"
	for i, it := range items {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d", it)
	}
	return s + "}"
}
