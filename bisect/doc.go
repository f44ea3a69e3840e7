// Package bisect provides the classic bounds-halving ("binary") search over a
// slice sorted in non-decreasing order.
//
// Overview:
//
//   - Bisection search locates an element equal to the needle in O(log n)
//     comparisons by maintaining an inclusive candidate window [low, high]
//     and probing its midpoint on every step.
//   - The idea is famously simple and famously easy to get wrong: Jon Bentley
//     found that ninety percent of professional programmers could not produce
//     a correct implementation, and the (low+high)/2 midpoint overflow bug
//     survived in Programming Pearls and in the Java standard library for
//     many years. This package computes the midpoint as low + (high-low)/2,
//     which cannot overflow for any valid slice.
//   - Two entry points are exposed: Search for element types with a built-in
//     order, and SearchFunc for any element type plus a caller-supplied
//     comparator.
//
// Contract:
//
//   - The slice must be sorted in non-decreasing order by the comparison used
//     for the search; this is a caller obligation the package cannot verify.
//     Searching an unsorted slice yields a meaningless (but safe) result.
//   - The slice is read-only to the search and is never retained.
//   - On success the returned index i satisfies seq[i] == needle (under the
//     comparator). When duplicates are present, no particular occurrence is
//     promised — just some matching index.
//
// Complexity:
//
//   - Time:  O(log n) comparisons — the window halves on every probe.
//   - Space: O(1).
//
// Errors:
//
//   - There are no error values. Absence is reported through the NotFound
//     index sentinel (-1); no other failure mode exists.
//
// API reference:
//
//	func Search[T cmp.Ordered](seq []T, needle T) int
//	func SearchFunc[T any](seq []T, needle T, compare CompareFunc[T]) int
//
//	  - seq:     slice sorted in non-decreasing order.
//	  - needle:  the value to locate.
//	  - compare: three-way comparator; negative when a < b, zero when equal,
//	             positive when a > b (SearchFunc only).
//	  - result:  a matching index in [0, len(seq)), or NotFound.
//
// Thread safety:
//
//   - Both functions are pure and re-entrant; concurrent calls over the same
//     (unmodified) slice need no synchronization.
//
// See also:
//
//   - stride.Search: the decaying-jump formulation of the same lookup, which
//     avoids midpoint arithmetic entirely.
package bisect
