// Package schedule - core types and sentinel errors for the schedule
// subpackage of github.com/BartMassey/time-scheduler.
package schedule

import "errors"

// Sentinel errors for schedule operations.
var (
	// ErrPlaceOutOfRange indicates a place index ≥ the configured number of places.
	ErrPlaceOutOfRange = errors.New("schedule: place index out of range")
	// ErrTimeOutOfRange indicates a time index ≥ the configured number of time slots.
	ErrTimeOutOfRange = errors.New("schedule: time index out of range")
	// ErrShapeMismatch indicates a snapshot whose dimensions or pool size
	// differ from the target schedule.
	ErrShapeMismatch = errors.New("schedule: snapshot shape mismatch")
)

// locKind discriminates the two physical stores addressed by a Loc.
type locKind uint8

const (
	// slotLoc addresses a (place, time) grid cell.
	slotLoc locKind = iota
	// poolLoc addresses an entry of the unscheduled overflow pool.
	poolLoc
)

// Loc is a uniform address over the two stores of a Schedule: grid cells
// ("scheduled" positions, even when empty) and overflow-pool entries
// ("unscheduled" positions, even when occupied). Loc values are small,
// copyable, and comparable; obtain them from SlotLoc, PoolLoc, or
// Schedule.Locations.
type Loc struct {
	kind  locKind
	place int // valid when kind == slotLoc
	time  int // valid when kind == slotLoc
	index int // valid when kind == poolLoc
}

// SlotLoc returns the address of grid cell (place, time).
func SlotLoc(place, time int) Loc {
	return Loc{kind: slotLoc, place: place, time: time}
}

// PoolLoc returns the address of overflow-pool entry i.
func PoolLoc(i int) Loc {
	return Loc{kind: poolLoc, index: i}
}

// Scheduled reports whether l addresses a grid cell (as opposed to an
// overflow-pool entry). Note this is a property of the location, not of
// its occupancy.
func (l Loc) Scheduled() bool { return l.kind == slotLoc }

// Slot returns the (place, time) coordinates of a grid-cell address.
// The second return is false for pool addresses.
func (l Loc) Slot() (place, time int, ok bool) {
	if l.kind != slotLoc {
		return 0, 0, false
	}

	return l.place, l.time, true
}

// Pool returns the overflow index of a pool address.
// The second return is false for grid-cell addresses.
func (l Loc) Pool() (index int, ok bool) {
	if l.kind != poolLoc {
		return 0, false
	}

	return l.index, true
}

// cell is one optional payload holder; ok distinguishes empty from occupied.
type cell[A any] struct {
	val A
	ok  bool
}

// Schedule owns a places×times grid of optional payloads plus a fixed-size
// overflow pool of optional payloads. The payload type A is opaque to the
// package: the engine never inspects it, only moves it between locations.
//
// Invariants held for the lifetime of a Schedule:
//   - closure: the number of occupied locations equals the activity count
//     given at construction; Swap and Reshuffle only permute payloads;
//   - fixed shape: places, times, and the pool size never change.
type Schedule[A any] struct {
	places int
	times  int
	n      int       // total payload count, fixed at construction
	slots  []cell[A] // len == places*times, row-major: slots[place*times+time]
	pool   []cell[A] // len == max(0, n − places*times)
}
