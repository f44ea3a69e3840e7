package stride_test

import (
	"fmt"

	"github.com/katalvlaran/strider/stride"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSearch
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Locate the needle 4 in [1..9] with decaying jumps. The scan tries a
//	jump of 4 (lands on 5 — too far), takes a jump of 2 (lands on 3),
//	then a jump of 1 (lands on 4), and the final probe confirms the hit.
//
// Complexity: O(log n) probes, O(1) memory.
func ExampleSearch() {
	seq := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	idx := stride.Search(seq, 4)
	fmt.Printf("index=%d value=%d\n", idx, seq[idx])

	fmt.Println(stride.Search(seq, 14) == stride.NotFound)
	// Output:
	// index=3 value=4
	// true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFindCrossover
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A profit curve f(day) = 90 - 10*day starts positive and sinks below
//	zero as days pass. FindCrossover locates the first unprofitable day
//	without scanning the whole range: f(9) = 0, so the boundary is day 9.
//
// Use case:
//
//	Any "first index where a monotone quantity stops being positive"
//	question — capacity exhaustion, break-even points, expiry scans.
func ExampleFindCrossover() {
	profit := func(day int) int { return 90 - 10*day }

	day := stride.FindCrossover(profit, 30)
	fmt.Printf("first non-positive day: %d (profit %d)\n", day, profit(day))
	// Output:
	// first non-positive day: 9 (profit 0)
}
