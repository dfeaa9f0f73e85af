package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BartMassey/time-scheduler/bench"
	"github.com/BartMassey/time-scheduler/conference"
)

func smallInstance() conference.Instance {
	return conference.Instance{
		ID:     "bench_small",
		Places: 2,
		Times:  2,
		Activities: []conference.Activity{
			{Priority: 10, Topic: 1},
			{Priority: 8, Topic: 1},
			{Priority: 5, Topic: 2},
			{Priority: 3, Topic: 2},
			{Priority: 1, Topic: 3},
		},
	}
}

func TestRun_RecordAssembly(t *testing.T) {
	inst := smallInstance()
	cfg := bench.Config{Swaps: 20, Seed: 1}

	res, err := bench.Run(&inst, cfg)
	require.NoError(t, err)

	require.Equal(t, "bench_small", res.InstanceID)
	require.Equal(t, 1, res.UnscheduledBefore)
	require.Equal(t, cfg, res.Config)
	require.Positive(t, res.Evaluations)

	require.LessOrEqual(t, res.FinalPenalty, res.InitialPenalty)
	require.InDelta(t, res.InitialPenalty-res.FinalPenalty, res.Improvement, 1e-9)

	// The grid is oversubscribed, so no occupancy cost before or after and
	// the conflict penalties coincide with the full ones.
	require.Equal(t, res.InitialPenalty, res.InitialConflictPenalty)
	require.Equal(t, res.FinalPenalty, res.FinalConflictPenalty)
}

func TestRun_Deterministic(t *testing.T) {
	cfg := bench.Config{Swaps: 15, Noise: true, Restarts: 2, Seed: 42}

	a := smallInstance()
	resA, err := bench.Run(&a, cfg)
	require.NoError(t, err)

	b := smallInstance()
	resB, err := bench.Run(&b, cfg)
	require.NoError(t, err)

	require.Equal(t, resA.FinalPenalty, resB.FinalPenalty)
	require.Equal(t, resA.Evaluations, resB.Evaluations)
}

func TestRunAll(t *testing.T) {
	instances := []conference.Instance{smallInstance(), smallInstance()}
	instances[1].ID = "bench_small_2"

	results, err := bench.RunAll(instances, bench.Config{Swaps: 10, Seed: 7})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "bench_small", results[0].InstanceID)
	require.Equal(t, "bench_small_2", results[1].InstanceID)
}

func TestRun_InvalidConfig(t *testing.T) {
	inst := smallInstance()
	_, err := bench.Run(&inst, bench.Config{Swaps: 10, Restarts: -1})
	require.Error(t, err)
}

func TestCalcStats(t *testing.T) {
	results := []bench.Result{
		{Improvement: 10, FinalPenalty: 40},
		{Improvement: 20, FinalPenalty: 30},
		{Improvement: 0, FinalPenalty: 50},
	}

	stats := bench.CalcStats(results)

	require.Equal(t, 3, stats.N)
	require.InDelta(t, 10.0, stats.MeanImprovement, 1e-9)
	require.InDelta(t, 8.16496580927726, stats.StdImprovement, 1e-9)
	require.InDelta(t, 40.0, stats.MeanFinalPenalty, 1e-9)
	require.InDelta(t, 8.16496580927726, stats.StdFinalPenalty, 1e-9)
	// Two of three runs strictly improved.
	require.InDelta(t, 200.0/3.0, stats.SuccessRate, 1e-9)
}

func TestCalcStats_Empty(t *testing.T) {
	stats := bench.CalcStats(nil)
	require.Equal(t, 0, stats.N)
	require.Zero(t, stats.MeanImprovement)
	require.Zero(t, stats.SuccessRate)
}
