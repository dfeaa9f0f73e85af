// Package schedule - construction, accessors, and the swap/reshuffle
// primitives of the generic schedule grid.
//
// Design:
//   - Two physical stores (grid cells, overflow pool) behind one address
//     space; see types.go for Loc.
//   - Swap is the only mutation the search engine needs in its hot loop:
//     O(1), no allocation, no bookkeeping.
//   - Reshuffle destroys the arrangement wholesale; it runs only between
//     restarts, so clarity wins over micro-optimization there.
//   - All randomness is injected; a nil source maps to a fixed
//     deterministic stream so tests can reproduce exact trajectories.
package schedule

import "math/rand"

// defaultShuffleSeed is the fixed seed used when Reshuffle receives a nil
// random source. The value is arbitrary but stable to keep reproducible
// defaults.
const defaultShuffleSeed int64 = 1

// New builds a Schedule from the given dimensions and activity sequence.
// Grid cells are filled in row-major order (all times for place 0, then
// place 1, …) with the leading activities; every remaining activity becomes
// an individually occupied overflow-pool entry, preserving input order.
//
// Non-positive dimensions are legal and clamp to zero: the grid then has no
// cells and every activity lands in the pool. An empty activity slice is
// likewise legal and yields an all-empty grid with an empty pool.
//
// Complexity: O(places·times + len(activities)) time and memory.
func New[A any](places, times int, activities []A) *Schedule[A] {
	if places < 0 {
		places = 0
	}
	if times < 0 {
		times = 0
	}

	var (
		capacity = places * times
		n        = len(activities)
		s        = &Schedule[A]{
			places: places,
			times:  times,
			n:      n,
			slots:  make([]cell[A], capacity),
		}
		i int
	)

	// Leading activities occupy grid cells in row-major order.
	for i = 0; i < capacity && i < n; i++ {
		s.slots[i] = cell[A]{val: activities[i], ok: true}
	}

	// The remainder overflows into the pool, one entry per activity.
	if n > capacity {
		s.pool = make([]cell[A], n-capacity)
		for i = capacity; i < n; i++ {
			s.pool[i-capacity] = cell[A]{val: activities[i], ok: true}
		}
	}

	return s
}

// Dimensions returns the configured (places, times) of the grid.
func (s *Schedule[A]) Dimensions() (places, times int) {
	return s.places, s.times
}

// Len returns the total number of activities owned by the schedule.
// The value is fixed at construction; swaps never change it.
func (s *Schedule[A]) Len() int { return s.n }

// PoolSize returns the fixed size of the overflow pool.
func (s *Schedule[A]) PoolSize() int { return len(s.pool) }

// ActivityAt returns a read-only view of the payload in grid cell
// (place, time), or nil when the cell is empty. Indices are bounds-checked:
// a bad place reports ErrPlaceOutOfRange, a bad time ErrTimeOutOfRange.
// The returned pointer aliases internal storage and must not be written
// through or retained across mutations.
//
// Complexity: O(1).
func (s *Schedule[A]) ActivityAt(place, time int) (*A, error) {
	if place < 0 || place >= s.places {
		return nil, ErrPlaceOutOfRange
	}
	if time < 0 || time >= s.times {
		return nil, ErrTimeOutOfRange
	}
	c := &s.slots[place*s.times+time]
	if !c.ok {
		return nil, nil
	}

	return &c.val, nil
}

// Unscheduled returns the payloads of all occupied overflow-pool entries,
// in pool order. The slice is freshly allocated on every call, so multiple
// callers each observe an independent snapshot consistent with the grid
// state at call time.
//
// Complexity: O(pool size) time and memory.
func (s *Schedule[A]) Unscheduled() []A {
	out := make([]A, 0, len(s.pool))
	for i := range s.pool {
		if s.pool[i].ok {
			out = append(out, s.pool[i].val)
		}
	}

	return out
}

// EmptySlotCount returns the number of unoccupied grid cells.
// Pool entries are not counted: an empty pool entry is not a slot.
//
// Complexity: O(places·times).
func (s *Schedule[A]) EmptySlotCount() int {
	var empty int
	for i := range s.slots {
		if !s.slots[i].ok {
			empty++
		}
	}

	return empty
}

// Locations enumerates every addressable location of the schedule in its
// fixed deterministic order: grid cells row-major first, then pool entries
// by index. The slice is freshly allocated; the addresses themselves are
// stable for the lifetime of the schedule.
//
// Complexity: O(places·times + pool size) time and memory.
func (s *Schedule[A]) Locations() []Loc {
	out := make([]Loc, 0, len(s.slots)+len(s.pool))

	var p, t, i int
	for p = 0; p < s.places; p++ {
		for t = 0; t < s.times; t++ {
			out = append(out, Loc{kind: slotLoc, place: p, time: t})
		}
	}
	for i = 0; i < len(s.pool); i++ {
		out = append(out, Loc{kind: poolLoc, index: i})
	}

	return out
}

// cellAt resolves a Loc to its backing cell. Addresses must come from this
// schedule (SlotLoc/PoolLoc within bounds, or Locations); out-of-range
// addresses fault on the slice index.
func (s *Schedule[A]) cellAt(l Loc) *cell[A] {
	if l.kind == slotLoc {
		return &s.slots[l.place*s.times+l.time]
	}

	return &s.pool[l.index]
}

// Swap exchanges the contents of two locations, including empty↔occupied
// combinations. It is the sole primitive by which payload positions change
// and the hot operation of the search engine: O(1), allocation-free.
func (s *Schedule[A]) Swap(a, b Loc) {
	ca, cb := s.cellAt(a), s.cellAt(b)
	*ca, *cb = *cb, *ca
}

// Reshuffle redistributes every payload uniformly at random: all occupied
// entries across grid and pool are gathered in location order, permuted
// with a Fisher–Yates shuffle driven by rng, and written back filling grid
// cells row-major first and pool entries second. Surplus locations are left
// empty. A nil rng falls back to a fixed deterministic stream.
//
// The arrangement before the call is destroyed entirely; the closure
// invariant (payload multiset unchanged) is preserved.
//
// Complexity: O(places·times + pool size) time, O(n) transient memory.
func (s *Schedule[A]) Reshuffle(rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultShuffleSeed))
	}

	// Gather all payloads, emptying every location.
	all := make([]A, 0, s.n)
	var i int
	for i = range s.slots {
		if s.slots[i].ok {
			all = append(all, s.slots[i].val)
			s.slots[i] = cell[A]{}
		}
	}
	for i = range s.pool {
		if s.pool[i].ok {
			all = append(all, s.pool[i].val)
			s.pool[i] = cell[A]{}
		}
	}

	// Uniform Fisher–Yates permutation.
	var j int
	for i = len(all) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		all[i], all[j] = all[j], all[i]
	}

	// Refill: grid cells first, then pool, any surplus stays empty.
	var next int
	for i = range s.slots {
		if next >= len(all) {
			return
		}
		s.slots[i] = cell[A]{val: all[next], ok: true}
		next++
	}
	for i = range s.pool {
		if next >= len(all) {
			return
		}
		s.pool[i] = cell[A]{val: all[next], ok: true}
		next++
	}
}

// Clone returns a deep copy of the schedule. The copy shares no storage
// with the original; payloads are copied by value.
//
// Complexity: O(places·times + pool size).
func (s *Schedule[A]) Clone() *Schedule[A] {
	out := &Schedule[A]{
		places: s.places,
		times:  s.times,
		n:      s.n,
		slots:  make([]cell[A], len(s.slots)),
	}
	copy(out.slots, s.slots)
	if len(s.pool) > 0 {
		out.pool = make([]cell[A], len(s.pool))
		copy(out.pool, s.pool)
	}

	return out
}

// Restore overwrites the schedule's contents with those of snap, which must
// have identical dimensions and pool size (ErrShapeMismatch otherwise).
// Used to commit the best snapshot after a multi-restart search.
//
// Complexity: O(places·times + pool size).
func (s *Schedule[A]) Restore(snap *Schedule[A]) error {
	if snap == nil || snap.places != s.places || snap.times != s.times || len(snap.pool) != len(s.pool) {
		return ErrShapeMismatch
	}
	copy(s.slots, snap.slots)
	copy(s.pool, snap.pool)
	s.n = snap.n

	return nil
}
