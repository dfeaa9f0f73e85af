// Command scheduler assigns conference sessions to rooms × time slots with
// the local-search engine and reports per-instance results.
//
// Usage:
//
//	scheduler [flags] instances.json
//
// The instances file is the JSON array documented in package conference.
// With -json the per-instance result records are printed as one JSON array
// for downstream aggregation (see cmd/evaluate); otherwise a short
// human-readable report is printed per instance.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/BartMassey/time-scheduler/bench"
	"github.com/BartMassey/time-scheduler/conference"
)

func main() {
	var (
		nswaps       = flag.Int("nswaps", -1, "swap budget per restart (negative = engine default)")
		noise        = flag.Bool("noise", false, "use noise moves")
		restarts     = flag.Int("nrestarts", 0, "number of restarts (0 = no restarts)")
		proportional = flag.Bool("proportional", false, "divide one total swap budget across restarts")
		timeout      = flag.Int("timeout", 0, "wall-clock timeout in seconds, checked between restarts (0 = none)")
		seed         = flag.Int64("seed", 0, "random seed (0 = fixed default stream)")
		jsonOut      = flag.Bool("json", false, "output result records as JSON")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: scheduler [flags] instances.json")
		flag.PrintDefaults()
		os.Exit(2)
	}

	instances, err := conference.LoadInstances(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := bench.Config{
		Swaps:        *nswaps,
		Noise:        *noise,
		Restarts:     *restarts,
		Proportional: *proportional,
		TimeoutSecs:  *timeout,
		Seed:         *seed,
	}

	results := make([]bench.Result, 0, len(instances))
	for i := range instances {
		if !*jsonOut {
			fmt.Printf("Processing instance: %s\n", instances[i].ID)
		}

		r, err := bench.Run(&instances[i], cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "instance %s: %v\n", instances[i].ID, err)
			os.Exit(1)
		}
		results = append(results, r)

		if !*jsonOut {
			fmt.Printf("  Initial penalty: %.2f\n", r.InitialPenalty)
			fmt.Printf("  Final penalty:   %.2f\n", r.FinalPenalty)
			fmt.Printf("  Improvement:     %.2f\n", r.Improvement)
			fmt.Printf("  Unscheduled:     %d -> %d\n", r.UnscheduledBefore, r.UnscheduledAfter)
			fmt.Println()
		}
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
