// Package stride provides the "binary stride" search over a slice sorted in
// non-decreasing order, and its generalization to monotonic predicates.
//
// Overview:
//
//   - Instead of bisecting a [low, high] window, stride search scans the
//     slice left to right with decaying jump lengths: first n/2, then n/4,
//     n/8, …, finally 1. At each jump length it greedily advances as far as
//     the needle still dominates, then commits to the finer length. After the
//     last pass either the position holds the needle or the needle is absent.
//   - The formulation needs no midpoint arithmetic at all — the overflow trap
//     of the classic bisection simply cannot occur — and it generalizes
//     naturally from "find this value" to "find where this monotone function
//     changes sign" (FindCrossover).
//   - Three entry points are exposed: Search for element types with a
//     built-in order, SearchFunc for any element type plus a comparator, and
//     FindCrossover for a caller-supplied monotone predicate over indices.
//
// Contract:
//
//   - Search/SearchFunc require the slice sorted non-decreasingly by the
//     comparison in use; FindCrossover requires the predicate monotone in the
//     "crosses zero once" sense (strictly positive below some threshold,
//     non-positive at and above it). Neither contract can be verified here;
//     violating it yields a meaningless (but safe, in-bounds) result.
//   - The slice is read-only and never retained; the predicate is only ever
//     invoked with indices inside [0, n).
//
// Complexity:
//
//   - Time:  O(log n) probes on distinct elements — the position only moves
//     forward and jump lengths shrink geometrically.
//     Long runs of equal elements degrade the inner advance toward O(n);
//     this is an inherent property of the documented technique, kept as-is.
//   - Space: O(1).
//
// Errors:
//
//   - There are no error values. Search/SearchFunc report absence through the
//     NotFound index sentinel (-1). FindCrossover has no failure outcome —
//     it always returns a boundary index; its meaning rests entirely on the
//     caller's monotonicity guarantee.
//
// API reference:
//
//	func Search[T cmp.Ordered](seq []T, needle T) int
//	func SearchFunc[T any](seq []T, needle T, compare CompareFunc[T]) int
//	func FindCrossover(fn Predicate, n int) int
//
//	  - seq:     slice sorted in non-decreasing order.
//	  - needle:  the value to locate.
//	  - compare: three-way comparator; negative when a < b, zero when equal,
//	             positive when a > b (SearchFunc only).
//	  - fn:      monotone predicate over indices; see Predicate.
//	  - n:       size of the predicate's index domain.
//	  - result:  Search/SearchFunc — a matching index in [0, len(seq)) or
//	             NotFound; FindCrossover — the first index in [0, n] at which
//	             fn is no longer strictly positive (n when it never stops
//	             being positive).
//
// Thread safety:
//
//   - All three functions are pure and re-entrant; concurrent calls over the
//     same (unmodified) slice or predicate need no synchronization.
//
// See also:
//
//   - bisect.Search: the classic bounds-halving formulation of the same
//     lookup, for contrast and for the benchmark baseline.
package stride
