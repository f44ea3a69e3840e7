package stride

import "cmp"

// Search returns an index i with seq[i] == needle, or NotFound if the needle
// is absent. seq must be sorted in non-decreasing order.
//
// The scan starts at position 0 with jump length len(seq)/2 and halves the
// jump after each pass: at every length it advances while the next landing
// spot still holds an element <= needle, so the position converges on the
// rightmost element not exceeding the needle. One final equality probe
// decides found/not-found.
//
// Complexity: O(log n) probes on distinct elements, degrading toward O(n)
// over long runs of equal elements; O(1) space.
func Search[T cmp.Ordered](seq []T, needle T) int {
	return SearchFunc(seq, needle, cmp.Compare[T])
}

// SearchFunc is Search for element types without a built-in order: compare
// supplies the three-way ordering the slice was sorted by.
//
// Returns a matching index or NotFound.
func SearchFunc[T any](seq []T, needle T, compare CompareFunc[T]) int {
	n := len(seq)
	// The final probe reads seq[pos]; an empty slice has nothing to probe.
	if n == 0 {
		return NotFound
	}

	pos := 0
	for stride := n / 2; stride >= 1; stride /= 2 {
		// Advance while the landing spot is in bounds and still <= needle.
		for pos+stride < n && compare(seq[pos+stride], needle) <= 0 {
			pos += stride
		}
	}

	// pos now holds the rightmost element <= needle (or index 0 when every
	// element exceeds it). A single probe settles the verdict.
	if compare(seq[pos], needle) == 0 {
		return pos
	}

	return NotFound
}
