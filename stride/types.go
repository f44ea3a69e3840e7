// Package stride defines the result sentinel, comparator and predicate types
// shared by the stride search entry points.
package stride

// NotFound is the index sentinel returned by Search and SearchFunc when no
// element equals the needle. It is never a valid slice index, so callers may
// test the result with a plain `< 0` check as well.
const NotFound = -1

// CompareFunc is a three-way comparator over element values.
//
// It must return:
//
//	< 0 when a orders before b,
//	  0 when a and b are equivalent,
//	> 0 when a orders after b.
//
// The comparator must agree with the order the slice was sorted by;
// cmp.Compare is the canonical choice for built-in ordered types.
type CompareFunc[T any] func(a, b T) int

// Predicate maps an index position to a signed quantity.
//
// FindCrossover requires it monotone in the "crosses zero once" sense: there
// is a threshold k such that fn(i) > 0 for every i < k and fn(i) <= 0 for
// every i >= k. The threshold may sit at either end (k = 0: never positive;
// k = n: never stops being positive).
//
// This is a caller obligation the finder cannot check. A non-monotone
// predicate produces an arbitrary in-range answer, never a crash.
type Predicate func(pos int) int
