package bisect

import "cmp"

// Search returns an index i with seq[i] == needle, or NotFound if the needle
// is absent. seq must be sorted in non-decreasing order.
//
// The empty slice yields NotFound immediately: low starts at 0, high at -1,
// so the window is empty before the first probe.
//
// Complexity: O(log n) comparisons, O(1) space.
func Search[T cmp.Ordered](seq []T, needle T) int {
	return SearchFunc(seq, needle, cmp.Compare[T])
}

// SearchFunc is Search for element types without a built-in order: compare
// supplies the three-way ordering the slice was sorted by.
//
// Returns a matching index or NotFound.
func SearchFunc[T any](seq []T, needle T, compare CompareFunc[T]) int {
	// Inclusive candidate window; empty slice gives low=0 > high=-1.
	low, high := 0, len(seq)-1
	var mid int
	for low <= high {
		// Overflow-safe midpoint: (low+high)/2 can wrap for large slices.
		mid = low + (high-low)/2
		switch c := compare(seq[mid], needle); {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return NotFound
}
