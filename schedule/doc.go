// Package schedule implements the generic schedule grid: a places×times
// matrix of optional activity slots plus a fixed-size overflow pool for
// activities that did not fit the grid.
//
// What the package gives you:
//
//   - Schedule[A] — owns the two stores and keeps two invariants for its
//     whole lifetime: the payload multiset never changes (swaps only
//     permute), and the shape (places, times, pool size) is fixed at
//     construction.
//   - Loc — one uniform, enumerable address space over grid cells and
//     pool entries, so search code can treat both stores as a single
//     array of locations.
//   - Swap — the O(1), allocation-free primitive every neighborhood move
//     is built from.
//   - Reshuffle — a uniform re-permutation of all payloads, used to
//     escape local optima between restarts. Randomness is always injected
//     (*rand.Rand); there is no hidden global source.
//
// Semantics worth remembering: a grid cell means "scheduled" even while
// empty, and a pool entry means "unscheduled" even while occupied. The
// package never inspects the payload type A — scoring belongs to the
// caller (see package search).
//
// Degenerate inputs are valid, not errors: zero places or times yields an
// all-pool schedule, zero activities an all-empty grid.
package schedule
