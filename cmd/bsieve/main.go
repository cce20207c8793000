// Command bsieve filters duplicate lines out of a stream using a bloom
// filter.
//
// Lines are read from standard input; lines not yet seen are printed to
// standard output and remembered. The filter can be persisted to a backing
// file and reloaded by later invocations, so deduplication state survives
// across runs:
//
//	seq 10 | bsieve -f seen.bf -w        # prints 1..10, saves the filter
//	seq 10 | bsieve -f seen.bf           # prints nothing, all seen
//	seq 10 | bsieve -f seen.bf -invert   # prints 1..10, all seen
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bsieve/bsieve"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		filterPath = flag.String("f", "", "backing filter `file` to load and/or write")
		writeBack  = flag.Bool("w", false, "write the filter to the backing file at end of run")
		limit      = flag.Uint64("l", 0, "maximum `count` of insertions, 0 for unlimited")
		invert     = flag.Bool("invert", false, "print only lines already present in the filter")
		bits       = flag.Uint64("b", 0, "explicit bit array `size`, overrides -n and -p")
		hashes     = flag.Uint("k", 1, "hash function `count`, used with -b")
		capacity   = flag.Uint64("n", 1_000_000, "expected number of distinct `lines`")
		fpRate     = flag.Float64("p", 0.01, "target false positive `rate` in (0, 1)")
		debug      = flag.Bool("debug", false, "print a run summary on stderr")
	)
	flag.Parse()

	if *writeBack && *filterPath == "" {
		fmt.Fprintln(os.Stderr, "bsieve: -w requires a backing file (-f)")
		return 1
	}

	filter, err := buildFilter(*filterPath, *bits, uint32(*hashes), *capacity, *fpRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bsieve: %v\n", err)
		return 1
	}

	proc := bsieve.NewProcessor(filter, bsieve.Options{
		Invert: *invert,
		Limit:  *limit,
	})
	if err := proc.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "bsieve: %v\n", err)
		return 1
	}

	if *writeBack {
		if err := filter.WriteFile(*filterPath); err != nil {
			fmt.Fprintf(os.Stderr, "bsieve: %v\n", err)
			return 1
		}
	}

	if *debug {
		fmt.Fprintf(os.Stderr, "bsieve: inserted %d lines this run, %d total\n", proc.Inserted(), filter.Count())
		fmt.Fprintf(os.Stderr, "bsieve: %d bits, %d hashes, %.2f%% full, est. false positive rate %.4f%%\n",
			filter.M(), filter.K(), filter.FillRatio()*100, filter.EstimatedFalsePositiveRate()*100)
	}

	return 0
}

// buildFilter resolves the run's filter. An existing backing file fixes the
// parameters for the run; otherwise explicit -b/-k win over -n/-p sizing.
func buildFilter(path string, bits uint64, hashes uint32, capacity uint64, fpRate float64) (*bsieve.Filter, error) {
	m, k := bits, hashes
	if bits == 0 {
		var err error
		m, k, err = bsieve.OptimalParams(capacity, fpRate)
		if err != nil {
			return nil, err
		}
	}

	if path == "" {
		return bsieve.NewWithParams(m, k)
	}
	return bsieve.LoadFileOrNew(path, m, k)
}
