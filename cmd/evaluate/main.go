// Command evaluate sweeps scheduler configurations over an instance file
// and aggregates summary statistics per configuration.
//
// Usage:
//
//	evaluate [flags] instances.json
//
// The sweep varies the restart count (comma-separated -restarts list) and
// repeats every configuration -repeat times with distinct seeds. A sweep
// can alternatively be described in a YAML file passed via -config:
//
//	restarts: [1, 2, 5]
//	repeat: 3
//	timeout: 3
//	noise: false
//	proportional: true
//	nswaps: 500
//
// With -json the full evaluation (config, stats, runs) is printed as JSON;
// otherwise a human-readable summary plus the best configuration by mean
// improvement.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/BartMassey/time-scheduler/bench"
	"github.com/BartMassey/time-scheduler/conference"
)

// sweep is the full description of one evaluation sweep.
type sweep struct {
	Restarts     []int `yaml:"restarts"`
	Repeat       int   `yaml:"repeat"`
	TimeoutSecs  int   `yaml:"timeout"`
	Noise        bool  `yaml:"noise"`
	Proportional bool  `yaml:"proportional"`
	Swaps        int   `yaml:"nswaps"`
	BaseSeed     int64 `yaml:"seed"`
}

// evaluation is the aggregated outcome for one configuration.
type evaluation struct {
	Config bench.Config   `json:"config"`
	Stats  bench.Stats    `json:"stats"`
	Runs   []bench.Result `json:"runs"`
}

func main() {
	var (
		restarts   = flag.String("restarts", "1,2,5", "comma-separated list of restart counts to test")
		repeat     = flag.Int("repeat", 1, "number of times to repeat each configuration for statistics")
		timeout    = flag.Int("timeout", 3, "wall-clock timeout in seconds for each run")
		noise      = flag.Bool("noise", false, "test with noise moves enabled")
		noProp     = flag.Bool("no-proportional", false, "disable proportional budget division (enabled by default)")
		nswaps     = flag.Int("nswaps", -1, "swap budget (negative = engine default)")
		baseSeed   = flag.Int64("seed", 1000, "base seed; run r of a configuration uses seed+r")
		configPath = flag.String("config", "", "YAML sweep description (overrides the flags above)")
		jsonOut    = flag.Bool("json", false, "output the full evaluation as JSON")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: evaluate [flags] instances.json")
		flag.PrintDefaults()
		os.Exit(2)
	}

	sw := sweep{
		Repeat:       *repeat,
		TimeoutSecs:  *timeout,
		Noise:        *noise,
		Proportional: !*noProp,
		Swaps:        *nswaps,
		BaseSeed:     *baseSeed,
	}
	var err error
	if sw.Restarts, err = parseRestarts(*restarts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *configPath != "" {
		if sw, err = loadSweep(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if sw.Repeat < 1 {
		sw.Repeat = 1
	}

	instances, err := conference.LoadInstances(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	evaluations := make([]evaluation, 0, len(sw.Restarts))
	for _, r := range sw.Restarts {
		cfg := bench.Config{
			Swaps:        sw.Swaps,
			Noise:        sw.Noise,
			Restarts:     r,
			Proportional: sw.Proportional,
			TimeoutSecs:  sw.TimeoutSecs,
		}

		if !*jsonOut {
			fmt.Printf("Testing config: restarts=%d, noise=%t, proportional=%t, timeout=%ds",
				r, cfg.Noise, cfg.Proportional, cfg.TimeoutSecs)
			if cfg.Swaps >= 0 {
				fmt.Printf(", nswaps=%d", cfg.Swaps)
			}
			fmt.Println()
		}

		var runs []bench.Result
		start := time.Now()
		for rep := 0; rep < sw.Repeat; rep++ {
			if !*jsonOut {
				fmt.Printf("  Run %d/%d...", rep+1, sw.Repeat)
			}

			cfg.Seed = sw.BaseSeed + int64(rep)
			results, err := bench.RunAll(instances, cfg)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			runs = append(runs, results...)

			if !*jsonOut {
				fmt.Println(" done")
			}
		}

		stats := bench.CalcStats(runs)
		if !*jsonOut {
			fmt.Println("  Results:")
			fmt.Printf("    Mean improvement: %.2f ± %.2f\n", stats.MeanImprovement, stats.StdImprovement)
			fmt.Printf("    Mean final penalty: %.2f ± %.2f\n", stats.MeanFinalPenalty, stats.StdFinalPenalty)
			fmt.Printf("    Success rate: %.1f%%\n", stats.SuccessRate)
			fmt.Printf("    Total time: %.1fs\n", time.Since(start).Seconds())
			fmt.Println()
		}

		evaluations = append(evaluations, evaluation{Config: cfg, Stats: stats, Runs: runs})
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(evaluations); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		return
	}

	fmt.Printf("Evaluation complete! Tested %d configurations.\n", len(evaluations))
	if best := bestEvaluation(evaluations); best != nil {
		fmt.Println("Best configuration:")
		fmt.Printf("  Restarts: %d\n", best.Config.Restarts)
		fmt.Printf("  Noise: %t\n", best.Config.Noise)
		fmt.Printf("  Proportional: %t\n", best.Config.Proportional)
		fmt.Printf("  Mean improvement: %.2f\n", best.Stats.MeanImprovement)
	}
}

// parseRestarts parses the comma-separated restart-count list.
func parseRestarts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("bad restart count %q", p)
		}
		out = append(out, v)
	}

	return out, nil
}

// loadSweep reads a YAML sweep description.
func loadSweep(path string) (sweep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sweep{}, fmt.Errorf("read sweep config %s: %w", path, err)
	}

	sw := sweep{Swaps: -1, Repeat: 1}
	if err = yaml.Unmarshal(data, &sw); err != nil {
		return sweep{}, fmt.Errorf("parse sweep config %s: %w", path, err)
	}
	if len(sw.Restarts) == 0 {
		return sweep{}, fmt.Errorf("sweep config %s: restarts list is empty", path)
	}

	return sw, nil
}

// bestEvaluation picks the configuration with the highest mean improvement.
func bestEvaluation(evals []evaluation) *evaluation {
	var best *evaluation
	for i := range evals {
		if best == nil || evals[i].Stats.MeanImprovement > best.Stats.MeanImprovement {
			best = &evals[i]
		}
	}

	return best
}
