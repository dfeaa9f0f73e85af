// Package search - the local-search engine and its restart controller.
//
// Improve runs bounded in-place local search over a schedule's swap
// neighborhood:
//   - Single run: up to maxSwaps outer iterations. Each iteration is either
//     a full best-improvement scan over all unordered location pairs
//     (commit only the single best strictly improving swap, if any) or —
//     with probability ½ when noise is enabled — one random-pair probe
//     accepted only on strict improvement. Trial moves are performed as
//     swap → evaluate → revert on the live grid; the engine never clones
//     a schedule to evaluate a candidate.
//   - Restarts: R additional runs, each preceded by a full Reshuffle; the
//     best schedule across all R+1 runs is committed wholesale at the end.
//   - Budgets compose orthogonally: per-run swap budget (uniform or one
//     proportionally divided total) and a wall-clock cutoff checked only
//     at restart boundaries.
//
// Deliberate behaviors worth knowing:
//   - An outer loop never stops early on stagnation; a stuck run keeps
//     scanning until its budget is spent.
//   - A run in progress is never interrupted by the time limit, so
//     overshoot past the cutoff is possible.
//
// Complexity: O(maxSwaps · ntotal²) penalty evaluations per run, where
// ntotal = places·times + pool size. Each trial move is O(1) plus one
// penalty call; the penalty function is the dominant cost center.
package search

import (
	"math/rand"
	"time"

	"github.com/BartMassey/time-scheduler/schedule"
)

// defaultBudgetFactor scales the engine-default swap budget 2·ntotal³.
// The default is deliberately generous: it is a work budget, not a
// convergence estimate.
const defaultBudgetFactor = 2

// Improve mutates s in place toward a lower penalty and reports what it
// did. The schedule is exclusively owned by the engine for the duration of
// the call; the caller must not touch it concurrently.
//
// Errors: ErrNilSchedule, ErrNilPenalty, or an option sentinel from
// types.go. On error the schedule is untouched.
func Improve[A any](s *schedule.Schedule[A], penalty Penalty[A], opts ...Option) (Result, error) {
	start := time.Now()

	if s == nil {
		return Result{}, ErrNilSchedule
	}
	if penalty == nil {
		return Result{}, ErrNilPenalty
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}

	e := &engine[A]{
		s:       s,
		penalty: penalty,
		rng:     resolveRand(o),
		locs:    s.Locations(), // fixed address list, enumerated once
	}

	initial := e.eval()

	var (
		final float64
		runs  int
	)
	if o.Restarts == 0 {
		e.runSingle(o.MaxSwaps, o.Noise)
		final = e.eval()
		runs = 1
	} else {
		final, runs = e.runRestarts(o, initial)
	}

	return Result{
		InitialPenalty: initial,
		FinalPenalty:   final,
		Runs:           runs,
		Evaluations:    e.evals,
		Duration:       time.Since(start),
	}, nil
}

// engine bundles the live schedule, the injected scoring function, and the
// injected random stream for one Improve call.
type engine[A any] struct {
	s       *schedule.Schedule[A]
	penalty Penalty[A]
	rng     *rand.Rand
	locs    []schedule.Loc
	evals   int
}

// eval scores the current schedule and counts the call.
func (e *engine[A]) eval() float64 {
	e.evals++

	return e.penalty(e.s)
}

// runSingle performs one bounded search run on the live schedule.
// maxSwaps < 0 selects the engine default 2·ntotal³; 0 is a no-op.
func (e *engine[A]) runSingle(maxSwaps int, noise bool) {
	ntotal := len(e.locs)
	if ntotal == 0 {
		return // nothing to permute
	}
	if maxSwaps < 0 {
		maxSwaps = defaultBudgetFactor * ntotal * ntotal * ntotal
	}

	cur := e.eval()

	var (
		iter, i, j    int
		bestI, bestJ  int
		bestP, trialP float64
	)
	for iter = 0; iter < maxSwaps; iter++ {
		if noise && e.rng.Intn(2) == 0 {
			// Noise probe: one uniformly random pair (with replacement),
			// kept only when strictly improving.
			i = e.rng.Intn(ntotal)
			j = e.rng.Intn(ntotal)
			e.s.Swap(e.locs[i], e.locs[j])
			trialP = e.eval()
			if trialP < cur {
				cur = trialP
			} else {
				e.s.Swap(e.locs[j], e.locs[i])
			}
			continue
		}

		// Best-improvement scan: try every unordered pair, revert each
		// trial, commit only the single best strictly improving swap.
		bestI, bestJ = 0, 1
		bestP = cur
		for i = 0; i < ntotal; i++ {
			for j = i + 1; j < ntotal; j++ {
				e.s.Swap(e.locs[i], e.locs[j])
				trialP = e.eval()
				if trialP < bestP {
					bestI, bestJ, bestP = i, j, trialP
				}
				e.s.Swap(e.locs[j], e.locs[i])
			}
		}
		if bestP < cur {
			e.s.Swap(e.locs[bestI], e.locs[bestJ])
			cur = bestP
		}
		// No improving pair: state stays as is, budget is consumed anyway.
	}
}

// runRestarts drives R+1 runs with reshuffles in between, tracking the best
// snapshot seen, and commits it wholesale. Returns the committed penalty
// and the number of runs completed.
func (e *engine[A]) runRestarts(o Options, initial float64) (float64, int) {
	perRun := o.MaxSwaps
	if o.Proportional {
		// One total budget divided evenly across all runs, so raising the
		// restart count does not raise total work.
		total := o.MaxSwaps
		if total < 0 {
			ntotal := len(e.locs)
			total = defaultBudgetFactor * ntotal * ntotal * ntotal
		}
		perRun = total / (o.Restarts + 1)
	}

	var (
		deadline    time.Time
		useDeadline = o.TimeLimit > 0
	)
	if useDeadline {
		deadline = time.Now().Add(o.TimeLimit)
	}

	var (
		bestPenalty = initial
		best        = e.s.Clone()
		runs        int
		run         int
		cur         float64
	)
	for run = 0; run <= o.Restarts; run++ {
		// Coarse cancellation: checked only here, never mid-scan.
		if useDeadline && time.Now().After(deadline) {
			break
		}
		if run > 0 {
			e.s.Reshuffle(e.rng)
		}

		e.runSingle(perRun, o.Noise)
		runs++

		cur = e.eval()
		if cur < bestPenalty {
			bestPenalty = cur
			best = e.s.Clone()
		}
	}

	// Commit the best snapshot; trailing non-best state is discarded.
	// Shapes always match: best is a clone of s.
	_ = e.s.Restore(best)

	return bestPenalty, runs
}
