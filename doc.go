// Package strider is a compact playground for searching sorted data —
// contrasting the classic bisection search with the "binary stride"
// decaying-jump technique and its generalization to monotonic predicates.
//
// 🚀 What is strider?
//
//	A small, pure-Go library that brings together:
//		• Bisection search: the textbook divide-and-halve lookup, with the
//		  overflow-safe midpoint that famously tripped up decades of textbooks
//		• Stride search: scan left-to-right with jump lengths n/2, n/4, … 1 —
//		  no midpoint arithmetic, same O(log n) probes
//		• Crossover finder: the stride traversal applied to any monotone
//		  predicate, locating the exact index where its sign flips
//
// ✨ Why choose strider?
//
//   - Beginner-friendly – three functions, clear, intuitive naming
//   - Rock-solid guarantees – every edge case (empty, singleton, absent
//     needle) is guarded and tested, never left to an out-of-bounds read
//   - Pure Go – no cgo, no hidden deps
//   - Generic – works with any ordered element type, or any type plus a
//     comparator of your own
//
// Everything is organized under two subpackages:
//
//	bisect/ — classic bounds-halving search (Search, SearchFunc)
//	stride/ — decaying-jump search (Search, SearchFunc) and the monotonic
//	          crossover finder (FindCrossover)
//
// Quick ASCII example — both searches over [1 2 3 4 5 6 7 8 9], needle 4:
//
//	bisect:  probe 5 → go left, probe 2 → go right, probe 3, probe 4 → index 3
//	stride:  jump 4 → too far, jump 2 → pos 2, jump 1 → pos 3 → index 3
//
// Dive into the examples/ directory for runnable scenarios, and the
// per-package docs for complexity notes and the full API.
//
//	go get github.com/katalvlaran/strider
package strider
