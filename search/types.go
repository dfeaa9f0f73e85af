// Package search - option surface, sentinel errors, and result types for
// the local-search engine.
package search

import (
	"errors"
	"math/rand"
	"time"

	"github.com/BartMassey/time-scheduler/schedule"
)

// Sentinel errors returned by Improve.
var (
	// ErrNilSchedule is returned when a nil *schedule.Schedule is passed to Improve.
	ErrNilSchedule = errors.New("search: schedule is nil")

	// ErrNilPenalty is returned when no penalty function is supplied.
	ErrNilPenalty = errors.New("search: penalty function is nil")

	// ErrNegativeRestarts indicates a restart count below zero.
	ErrNegativeRestarts = errors.New("search: restart count must be non-negative")

	// ErrNegativeTimeLimit indicates a negative wall-clock budget.
	ErrNegativeTimeLimit = errors.New("search: time limit must be non-negative")
)

// Penalty scores a complete schedule state. It is supplied by the caller
// and fully opaque to the engine.
//
// Contract (not enforced, but assumed by the search):
//   - pure: no mutation of the schedule, no retained references to it;
//   - cheap: it is called O(maxSwaps·ntotal²) times per run and dominates
//     total cost;
//   - total: never panics on a schedule the engine can reach. A panicking
//     penalty is a caller programming error and propagates uncaught.
type Penalty[A any] func(*schedule.Schedule[A]) float64

// Option configures optional behavior of Improve.
// Use with Improve(s, penalty, opts...).
type Option func(*Options)

// Options holds the immutable configuration consumed by one Improve call.
// Zero values mean "engine default" throughout; DefaultOptions spells the
// defaults out.
type Options struct {
	// MaxSwaps bounds the outer iterations of each single run. A negative
	// value (the default) selects the engine default of 2·ntotal³, where
	// ntotal is the number of locations. Zero is an explicit no-op budget:
	// the schedule is left untouched.
	MaxSwaps int

	// Noise interleaves randomized single-pair probes with the exhaustive
	// best-improvement scan: when enabled, each outer iteration flips a
	// fair coin between the two. Probes never accept a worsening move.
	Noise bool

	// Restarts is the number of additional randomized restarts. R > 0
	// yields R+1 total runs with a full Reshuffle before every run after
	// the first; the best schedule seen across all runs is committed.
	Restarts int

	// Proportional divides one total swap budget evenly across the R+1
	// runs, so raising Restarts does not raise total work. When false,
	// every run receives the full MaxSwaps.
	Proportional bool

	// TimeLimit is a wall-clock cutoff checked only at restart boundaries
	// (before starting each run). An in-progress run is never interrupted,
	// so overshoot is possible and expected. Zero disables the cutoff.
	TimeLimit time.Duration

	// Seed seeds the engine's random stream (noise probes and reshuffles).
	// Seed == 0 maps to a fixed default seed; identical seeds reproduce
	// identical search trajectories.
	Seed int64

	// Rand, when non-nil, overrides Seed and is used directly. The engine
	// advances it; do not share it across concurrent Improve calls.
	Rand *rand.Rand
}

// DefaultOptions returns an Options with:
//   - engine-default swap budget (MaxSwaps = -1 ⇒ 2·ntotal³)
//   - noise probes disabled
//   - no restarts, uniform budget allocation
//   - no time limit
//   - deterministic default random stream (Seed = 0 policy)
func DefaultOptions() Options {
	return Options{
		MaxSwaps:     -1,
		Noise:        false,
		Restarts:     0,
		Proportional: false,
		TimeLimit:    0,
		Seed:         0,
		Rand:         nil,
	}
}

// WithMaxSwaps returns an Option that sets the per-run swap budget.
// Pass 0 for an explicit no-op; negative values restore the engine default.
func WithMaxSwaps(n int) Option {
	return func(o *Options) { o.MaxSwaps = n }
}

// WithNoise returns an Option that enables randomized noise probes.
func WithNoise() Option {
	return func(o *Options) { o.Noise = true }
}

// WithRestarts returns an Option that sets the additional restart count.
func WithRestarts(r int) Option {
	return func(o *Options) { o.Restarts = r }
}

// WithProportionalBudget returns an Option that divides the total swap
// budget evenly across all runs instead of granting it to each run.
func WithProportionalBudget() Option {
	return func(o *Options) { o.Proportional = true }
}

// WithTimeLimit returns an Option that sets the restart-boundary wall-clock
// cutoff. Zero disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithSeed returns an Option that seeds the engine's random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand returns an Option that injects an explicit random source,
// overriding WithSeed. A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// validateOptions checks internal consistency of an Options value.
// MaxSwaps needs no check: every negative value means "engine default".
func validateOptions(o Options) error {
	if o.Restarts < 0 {
		return ErrNegativeRestarts
	}
	if o.TimeLimit < 0 {
		return ErrNegativeTimeLimit
	}

	return nil
}

// Result reports what one Improve call did.
type Result struct {
	// InitialPenalty is the penalty of the schedule as handed in.
	InitialPenalty float64

	// FinalPenalty is the penalty of the committed schedule. It never
	// exceeds InitialPenalty.
	FinalPenalty float64

	// Runs is the number of single runs completed (1 without restarts,
	// up to Restarts+1 with them; fewer when the time limit cut in).
	Runs int

	// Evaluations counts penalty-function invocations.
	Evaluations int

	// Duration is the wall time spent inside Improve.
	Duration time.Duration
}
