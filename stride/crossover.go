package stride

// FindCrossover returns the first index in [0, n] at which fn is no longer
// strictly positive, assuming fn is monotone per the Predicate contract.
// When fn stays positive across the whole domain the result is n; when it is
// never positive the result is 0.
//
// The traversal is the same decaying-jump scan as Search, with the needle
// comparison replaced by the predicate's sign: at each jump length the
// position advances while the landing spot is still strictly positive, so it
// converges on the last positive index. A final sign probe at the resting
// position shifts the answer onto the boundary itself.
//
// fn is only ever invoked with indices in [0, n); an empty domain returns 0
// without invoking it at all.
//
// Complexity: O(log n) predicate calls; O(1) space.
func FindCrossover(fn Predicate, n int) int {
	if n == 0 {
		return 0
	}

	pos := 0
	for stride := n / 2; stride >= 1; stride /= 2 {
		// Same bounds guard as the needle search: the landing spot must be a
		// valid domain index before the predicate may see it.
		for pos+stride < n && fn(pos+stride) > 0 {
			pos += stride
		}
	}

	// pos is the last strictly-positive index, or 0 when there is none.
	// The boundary sits one past a positive resting position.
	if fn(pos) > 0 {
		return pos + 1
	}

	return pos
}
