// Package conference - the Activity payload and the standard penalty.
package conference

import (
	"math"
	"sort"

	"github.com/BartMassey/time-scheduler/schedule"
)

// Weights of the standard penalty formula. An empty room-slot is far more
// expensive than any realistic conflict, so the search fills the grid
// before it balances it.
const (
	emptySlotWeight     = 10_000.0
	topicConflictWeight = 10.0
	latenessWeight      = 0.1
	topPriorityCount    = 3
)

// Activity is one conference session to be placed into a room × time slot.
type Activity struct {
	// Priority expresses how much the session matters; higher is more
	// important. Non-negative.
	Priority int `json:"priority"`

	// Topic is the session's track identifier. Positive.
	Topic int `json:"topic"`
}

// OccupancyPenalty is the empty-slot component of the standard penalty in
// isolation: 10000 per unoccupied grid cell. Useful for factoring the
// grid-filling baseline out of reported scores.
func OccupancyPenalty(s *schedule.Schedule[Activity]) float64 {
	return emptySlotWeight * float64(s.EmptySlotCount())
}

// Penalty is the standard scoring function for conference schedules.
// Lower is better. It is pure: the schedule is read through accessors only
// and never mutated, so it is safe for the engine to call it on every
// trial swap.
//
// penalty = Σ priority(unscheduled)
//
//	+ 10000 · empty slots
//	+ Σ over time slots [ sqrt(sum of the 3 largest squared priorities)
//	                      + 10 · Σ over topics count² ]
//	+ Σ over scheduled 0.1 · priority · place
//
// Complexity: O(places·times) per call (the per-slot sort is over at most
// `places` entries).
func Penalty(s *schedule.Schedule[Activity]) float64 {
	var penalty float64

	// Missed-session cost: every unscheduled activity pays its priority.
	for _, a := range s.Unscheduled() {
		penalty += float64(a.Priority)
	}

	// Empty-slot cost.
	penalty += emptySlotWeight * float64(s.EmptySlotCount())

	places, times := s.Dimensions()

	// Per-time-slot conflict costs across all places.
	var (
		p, t     int
		squares  []float64
		byTopic  = make(map[int]int, 8)
		big, sum float64
	)
	for t = 0; t < times; t++ {
		squares = squares[:0]
		clear(byTopic)

		for p = 0; p < places; p++ {
			a, _ := s.ActivityAt(p, t) // indices in range by construction
			if a == nil {
				continue
			}
			pr := float64(a.Priority)
			squares = append(squares, pr*pr)
			byTopic[a.Topic]++
		}

		// Priority conflicts: sqrt of the top-3 squared priorities.
		sort.Float64s(squares)
		big = 0
		for i := len(squares) - 1; i >= 0 && i >= len(squares)-topPriorityCount; i-- {
			big += squares[i]
		}
		penalty += math.Sqrt(big)

		// Topic conflicts: quadratic in the per-topic head count. The terms
		// are exact integers, so map iteration order cannot skew the sum.
		sum = 0
		for _, c := range byTopic {
			sum += float64(c * c)
		}
		penalty += topicConflictWeight * sum
	}

	// Lateness: high-priority sessions in high-numbered places cost extra.
	for p = 0; p < places; p++ {
		for t = 0; t < times; t++ {
			a, _ := s.ActivityAt(p, t)
			if a != nil {
				penalty += latenessWeight * float64(a.Priority) * float64(p)
			}
		}
	}

	return penalty
}
