// Package timescheduler is a combinatorial optimization toolkit for
// slot-assignment problems — placing activities into a places × times grid
// (plus an overflow pool) and polishing the placement with randomized
// local search.
//
// 🚀 What is time-scheduler?
//
//	A small, composable engine split into focused subpackages:
//		• Generic state: a Schedule[A] grid of places × times cells plus a
//		  fixed overflow pool, mutated only by O(1) swaps
//		• Local search: bounded best-improvement scans, optional noise
//		  probes, multi-restart with reshuffles, proportional budgets and
//		  wall-clock cutoffs
//		• A ready-made domain: conference sessions with priorities and
//		  topic tracks, scored by the standard penalty
//		• Batch tooling: instance generation from skewed distributions,
//		  benchmark records and summary statistics
//
// ✨ Why choose time-scheduler?
//
//   - Pluggable objective – the engine only ever sees a penalty function
//   - Deterministic – every random choice flows from one injected seed
//   - In-place – trial moves are swap → evaluate → revert, never clones
//   - Honest budgets – work is bounded by swaps and wall clock, not hope
//
// Under the hood, everything is organized under these subpackages:
//
//	schedule/   — the generic grid + pool state and its swap primitive
//	search/     — the local-search engine and its restart controller
//	conference/ — the Activity payload, standard penalty, instance files,
//	              statistical generation
//	bench/      — per-run result records and summary statistics
//	cmd/        — scheduler, geninstances and evaluate binaries
//
// Quick ASCII example:
//
//	 times →   0        1
//	place 0 [sess A] [sess B]      pool: [sess E]
//	place 1 [sess C] [sess D]
//
//	represents a 2×2 schedule with one unscheduled session; a swap may
//	exchange any two of the five addresses, pool included.
//
// Dive into the examples/ directory for runnable end-to-end scenarios.
//
//	go get github.com/BartMassey/time-scheduler
package timescheduler
