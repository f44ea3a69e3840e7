// Package bisect defines the result sentinel and comparator type shared by
// the bisection search entry points.
package bisect

// NotFound is the index sentinel returned when no element equals the needle.
// It is never a valid slice index, so callers may test the result with a
// plain `< 0` check as well.
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
