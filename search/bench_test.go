// Package search_test — benchmarks for the engine's hot paths.
// Scope:
//   - One full best-improvement scan (the O(ntotal²) inner loop) at two
//     instance sizes.
//   - A noise-heavy bounded run (cheap probes mixed with scans).
//
// Policy:
//   - Deterministic instances and fixed seeds; no wall-clock limits.
//   - Inputs are built once outside the timer; each iteration works on a
//     fresh clone so earlier iterations cannot bias later ones.
package search_test

import (
	"math/rand"
	"testing"

	"github.com/BartMassey/time-scheduler/schedule"
	"github.com/BartMassey/time-scheduler/search"
)

// benchSchedule builds a deterministic scrambled schedule with the given
// grid shape and pooled surplus.
func benchSchedule(places, times, n int) *schedule.Schedule[int] {
	rng := rand.New(rand.NewSource(1))
	acts := make([]int, n)
	for i := range acts {
		acts[i] = rng.Intn(1000)
	}

	return schedule.New(places, times, acts)
}

// benchImprove runs Improve on a fresh clone per iteration with the given
// budget and noise setting.
func benchImprove(b *testing.B, base *schedule.Schedule[int], maxSwaps int, noise bool) {
	b.Helper()

	opts := []search.Option{
		search.WithMaxSwaps(maxSwaps),
		search.WithSeed(1),
	}
	if noise {
		opts = append(opts, search.WithNoise())
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := base.Clone()
		if _, err := search.Improve(s, placementPenalty, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkImprove_Scan_n20 measures one best-improvement scan over
// C(20,2) = 190 location pairs (4×4 grid + 4 pooled).
func BenchmarkImprove_Scan_n20(b *testing.B) {
	base := benchSchedule(4, 4, 20)
	benchImprove(b, base, 1, false)
}

// BenchmarkImprove_Scan_n56 measures one scan over C(56,2) = 1540 pairs
// (6×8 grid + 8 pooled).
func BenchmarkImprove_Scan_n56(b *testing.B) {
	base := benchSchedule(6, 8, 56)
	benchImprove(b, base, 1, false)
}

// BenchmarkImprove_NoiseRun_n20 measures a 50-iteration bounded run with
// noise probes enabled, the configuration batch tooling uses most.
func BenchmarkImprove_NoiseRun_n20(b *testing.B) {
	base := benchSchedule(4, 4, 20)
	benchImprove(b, base, 50, true)
}
