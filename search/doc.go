// Package search implements iterative local search over a schedule grid:
// swap-based neighborhood moves, optional randomized noise probes,
// multi-restart escape from local optima, and swap/wall-clock budgets.
//
// The engine is generic over the activity payload and fully decoupled from
// scoring: the caller injects a pure Penalty function, and the engine only
// ever calls it — it never interprets the score beyond "strictly lower is
// better". Every candidate move is tried in place (swap, evaluate, revert);
// schedules are cloned only to snapshot the best state between restarts.
//
// Guarantees, given a budget > 0 and a fixed random source:
//   - monotonic: the committed penalty never exceeds the starting one;
//   - deterministic: identical schedule + options + seed reproduce
//     bit-identical final grids and penalties;
//   - with R restarts, the committed penalty is ≤ the minimum across all
//     completed runs.
//
// Non-goals: global optimality, simulated-annealing acceptance of worse
// states, and parallel scanning. The search is single-threaded and
// synchronous; the schedule is exclusively owned by the engine for the
// duration of one Improve call.
//
// Minimal use:
//
//	s := schedule.New(nplaces, ntimes, activities)
//	res, err := search.Improve(s, myPenalty,
//	    search.WithRestarts(2),
//	    search.WithProportionalBudget(),
//	    search.WithSeed(42),
//	)
package search
