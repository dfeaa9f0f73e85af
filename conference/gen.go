// Package conference - statistical instance generation.
//
// Priorities and topics are sampled from pluggable distributions; the
// skewed ones (Zipf, Pareto, geometric) model the usual reality that a few
// sessions matter a lot and a few topics dominate the submissions.
// Sampling is driven by an injected *rand.Rand so generated fixtures are
// reproducible from a seed.
package conference

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// ErrBadDistribution indicates an unparsable distribution spec.
var ErrBadDistribution = errors.New("conference: bad distribution spec")

// DistKind enumerates the supported sampling distributions.
type DistKind int

const (
	// Uniform samples every value in [min, max] with equal probability.
	Uniform DistKind = iota
	// Zipf samples by rank with frequency ∝ 1/rank^Exponent; high values
	// get the high ranks.
	Zipf
	// Pareto samples a heavy-tailed continuous value and maps it into
	// [min, max]; most mass lands near min.
	Pareto
	// Geometric samples floor(ln(1−u)/ln(p)) folded into [min, max].
	Geometric
)

// Distribution is one parsed sampling distribution. Construct directly or
// via ParseDistribution.
type Distribution struct {
	Kind DistKind

	Exponent float64 // Zipf
	Shape    float64 // Pareto
	Scale    float64 // Pareto
	P        float64 // Geometric
}

// ParseDistribution parses the colon-separated CLI form:
//
//	uniform | zipf:EXP | pareto:SHAPE:SCALE | geometric:P
//
// Errors wrap ErrBadDistribution.
func ParseDistribution(s string) (Distribution, error) {
	parts := strings.Split(s, ":")
	switch strings.ToLower(parts[0]) {
	case "uniform":
		return Distribution{Kind: Uniform}, nil

	case "zipf":
		if len(parts) != 2 {
			return Distribution{}, fmt.Errorf("%w: zipf requires an exponent, e.g. zipf:1.5", ErrBadDistribution)
		}
		exp, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return Distribution{}, fmt.Errorf("%w: invalid zipf exponent %q", ErrBadDistribution, parts[1])
		}

		return Distribution{Kind: Zipf, Exponent: exp}, nil

	case "pareto":
		if len(parts) != 3 {
			return Distribution{}, fmt.Errorf("%w: pareto requires shape and scale, e.g. pareto:2.0:1.0", ErrBadDistribution)
		}
		shape, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return Distribution{}, fmt.Errorf("%w: invalid pareto shape %q", ErrBadDistribution, parts[1])
		}
		scale, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return Distribution{}, fmt.Errorf("%w: invalid pareto scale %q", ErrBadDistribution, parts[2])
		}

		return Distribution{Kind: Pareto, Shape: shape, Scale: scale}, nil

	case "geometric":
		if len(parts) != 2 {
			return Distribution{}, fmt.Errorf("%w: geometric requires a probability, e.g. geometric:0.3", ErrBadDistribution)
		}
		p, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || p <= 0 || p >= 1 {
			return Distribution{}, fmt.Errorf("%w: geometric probability must be in (0, 1)", ErrBadDistribution)
		}

		return Distribution{Kind: Geometric, P: p}, nil

	default:
		return Distribution{}, fmt.Errorf("%w: unknown distribution %q (options: uniform, zipf, pareto, geometric)", ErrBadDistribution, parts[0])
	}
}

// String renders the distribution back in its CLI form.
func (d Distribution) String() string {
	switch d.Kind {
	case Zipf:
		return fmt.Sprintf("zipf:%g", d.Exponent)
	case Pareto:
		return fmt.Sprintf("pareto:%g:%g", d.Shape, d.Scale)
	case Geometric:
		return fmt.Sprintf("geometric:%g", d.P)
	default:
		return "uniform"
	}
}

// Sample draws one value in [min, max] from the distribution using rng.
// Requires min ≤ max.
func (d Distribution) Sample(min, max int, rng *rand.Rand) int {
	switch d.Kind {
	case Zipf:
		return sampleZipf(min, max, d.Exponent, rng)
	case Pareto:
		return samplePareto(min, max, d.Shape, d.Scale, rng)
	case Geometric:
		return sampleGeometric(min, max, d.P, rng)
	default:
		return min + rng.Intn(max-min+1)
	}
}

// sampleZipf draws by inverse CDF over ranks 1..n with weight 1/rank^exp;
// rank 1 maps to max so that high values are the frequent ones.
func sampleZipf(min, max int, exponent float64, rng *rand.Rand) int {
	n := max - min + 1

	var sum float64
	for i := 1; i <= n; i++ {
		sum += 1 / math.Pow(float64(i), exponent)
	}

	var (
		target     = rng.Float64() * sum
		cumulative float64
	)
	for i := 1; i <= n; i++ {
		cumulative += 1 / math.Pow(float64(i), exponent)
		if cumulative >= target {
			return max - (i - 1)
		}
	}

	return max
}

// samplePareto draws from a Pareto(shape, scale) tail and squashes it into
// [min, max]; the bulk of the mass lands near min.
func samplePareto(min, max int, shape, scale float64, rng *rand.Rand) int {
	u := rng.Float64()
	value := scale * math.Pow(1-u, -1/shape)
	normalized := math.Min(math.Max((value-scale)/(10*scale), 0), 1)

	return min + int(float64(max-min)*(1-normalized))
}

// sampleGeometric draws floor(ln(1−u)/ln(p)) and folds it into the range.
func sampleGeometric(min, max int, p float64, rng *rand.Rand) int {
	u := rng.Float64()
	value := int(math.Floor(math.Log(1-u) / math.Log(p)))

	return min + value%(max-min+1)
}

// GenConfig bundles the knobs of the instance generator.
type GenConfig struct {
	MinPriority  int
	MaxPriority  int
	Topics       int
	PriorityDist Distribution
	TopicDist    Distribution
}

// DefaultGenConfig mirrors the generator's stock settings: priorities 1–100
// from zipf:1.5, five topics from pareto:2.0:1.0.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MinPriority:  1,
		MaxPriority:  100,
		Topics:       5,
		PriorityDist: Distribution{Kind: Zipf, Exponent: 1.5},
		TopicDist:    Distribution{Kind: Pareto, Shape: 2.0, Scale: 1.0},
	}
}

// UnconferenceGenConfig is the unconference preset: priorities 1–50 from
// pareto:1.8:1.0 and eight topics from zipf:1.2.
func UnconferenceGenConfig() GenConfig {
	return GenConfig{
		MinPriority:  1,
		MaxPriority:  50,
		Topics:       8,
		PriorityDist: Distribution{Kind: Pareto, Shape: 1.8, Scale: 1.0},
		TopicDist:    Distribution{Kind: Zipf, Exponent: 1.2},
	}
}

// RandomActivities samples n activities under cfg using rng.
func RandomActivities(n int, cfg GenConfig, rng *rand.Rand) []Activity {
	out := make([]Activity, n)
	for i := range out {
		out[i] = Activity{
			Priority: cfg.PriorityDist.Sample(cfg.MinPriority, cfg.MaxPriority, rng),
			Topic:    cfg.TopicDist.Sample(1, cfg.Topics, rng),
		}
	}

	return out
}

// RandomInstances samples count instances of identical shape, with ids
// instance_000, instance_001, ….
func RandomInstances(count, places, times, activities int, cfg GenConfig, rng *rand.Rand) []Instance {
	out := make([]Instance, count)
	for i := range out {
		out[i] = Instance{
			ID:         fmt.Sprintf("instance_%03d", i),
			Places:     places,
			Times:      times,
			Activities: RandomActivities(activities, cfg, rng),
		}
	}

	return out
}
