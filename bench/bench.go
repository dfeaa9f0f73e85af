// Package bench runs the search engine against conference instances and
// assembles the per-run result records consumed by the CLIs and by
// downstream aggregation.
package bench

import (
	"time"

	"github.com/BartMassey/time-scheduler/conference"
	"github.com/BartMassey/time-scheduler/search"
)

// Config describes one engine configuration as it appears in result
// records. The JSON field names follow the instance-file conventions.
type Config struct {
	// Swaps is the per-run (or, with Proportional, total) swap budget.
	// Negative means the engine default and still serializes as-is; only
	// a zero (explicit no-op) budget is omitted from JSON.
	Swaps int `json:"nswaps,omitempty"`

	// Noise enables randomized noise probes.
	Noise bool `json:"noise"`

	// Restarts is the number of additional randomized restarts.
	Restarts int `json:"restarts"`

	// Proportional divides one total budget across all runs.
	Proportional bool `json:"proportional"`

	// TimeoutSecs is the restart-boundary wall-clock cutoff in seconds;
	// 0 disables it.
	TimeoutSecs int `json:"timeout,omitempty"`

	// Seed seeds the engine's random stream; 0 selects the engine's fixed
	// default stream.
	Seed int64 `json:"seed,omitempty"`
}

// options maps the record onto engine options.
func (c Config) options() []search.Option {
	opts := []search.Option{
		search.WithMaxSwaps(c.Swaps),
		search.WithRestarts(c.Restarts),
		search.WithSeed(c.Seed),
		search.WithTimeLimit(time.Duration(c.TimeoutSecs) * time.Second),
	}
	if c.Noise {
		opts = append(opts, search.WithNoise())
	}
	if c.Proportional {
		opts = append(opts, search.WithProportionalBudget())
	}

	return opts
}

// Result is the per-instance record produced by one engine run.
type Result struct {
	InstanceID string `json:"instance_id"`

	// Unscheduled session counts before and after the search.
	UnscheduledBefore int `json:"unscheduled_before"`
	UnscheduledAfter  int `json:"unscheduled_after"`

	InitialPenalty float64 `json:"initial_penalty"`
	FinalPenalty   float64 `json:"final_penalty"`
	Improvement    float64 `json:"improvement"`

	// The penalties with the empty-slot occupancy term removed: what the
	// schedule costs once the grid-filling baseline is factored out.
	InitialConflictPenalty float64 `json:"initial_conflict_penalty"`
	FinalConflictPenalty   float64 `json:"final_conflict_penalty"`

	Evaluations int     `json:"evaluations"`
	ElapsedMs   float64 `json:"elapsed_ms"`

	Config Config `json:"config"`
}

// Run builds the instance's schedule, improves it under cfg with the
// standard conference penalty, and assembles the result record.
func Run(inst *conference.Instance, cfg Config) (Result, error) {
	s := inst.NewSchedule()

	unschedBefore := len(s.Unscheduled())
	occBefore := conference.OccupancyPenalty(s)

	res, err := search.Improve(s, conference.Penalty, cfg.options()...)
	if err != nil {
		return Result{}, err
	}

	return Result{
		InstanceID:             inst.ID,
		UnscheduledBefore:      unschedBefore,
		UnscheduledAfter:       len(s.Unscheduled()),
		InitialPenalty:         res.InitialPenalty,
		FinalPenalty:           res.FinalPenalty,
		Improvement:            res.InitialPenalty - res.FinalPenalty,
		InitialConflictPenalty: res.InitialPenalty - occBefore,
		FinalConflictPenalty:   res.FinalPenalty - conference.OccupancyPenalty(s),
		Evaluations:            res.Evaluations,
		ElapsedMs:              float64(res.Duration.Microseconds()) / 1000.0,
		Config:                 cfg,
	}, nil
}

// RunAll runs every instance under cfg, in order.
func RunAll(instances []conference.Instance, cfg Config) ([]Result, error) {
	out := make([]Result, 0, len(instances))
	for i := range instances {
		r, err := Run(&instances[i], cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}
