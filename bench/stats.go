package bench

import "math"

// Stats summarizes a batch of runs for one configuration.
type Stats struct {
	N                int     `json:"n"`
	MeanImprovement  float64 `json:"mean_improvement"`
	StdImprovement   float64 `json:"std_improvement"`
	MeanFinalPenalty float64 `json:"mean_final_penalty"`
	StdFinalPenalty  float64 `json:"std_final_penalty"`

	// SuccessRate is the percentage of runs that improved at all.
	SuccessRate float64 `json:"success_rate"`
}

// CalcStats aggregates per-run records into summary statistics.
// Standard deviations are population deviations, matching the downstream
// reporting convention.
func CalcStats(results []Result) Stats {
	s := Stats{N: len(results)}
	if s.N == 0 {
		return s
	}

	var impSum, finSum float64
	var successes int
	for i := range results {
		impSum += results[i].Improvement
		finSum += results[i].FinalPenalty
		if results[i].Improvement > 0 {
			successes++
		}
	}
	n := float64(s.N)
	s.MeanImprovement = impSum / n
	s.MeanFinalPenalty = finSum / n

	var impVar, finVar, d float64
	for i := range results {
		d = results[i].Improvement - s.MeanImprovement
		impVar += d * d
		d = results[i].FinalPenalty - s.MeanFinalPenalty
		finVar += d * d
	}
	s.StdImprovement = math.Sqrt(impVar / n)
	s.StdFinalPenalty = math.Sqrt(finVar / n)
	s.SuccessRate = float64(successes) / n * 100

	return s
}
