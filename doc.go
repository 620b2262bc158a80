// Package sudocanon reduces Sudoku grids to canonical representatives of
// their structural equivalence classes — compare two canonical forms and
// you know whether two puzzles are the same puzzle wearing different
// clothes.
//
// 🚀 What is sudocanon?
//
//	A small, focused library plus a batch CLI that together:
//		• Decode 81-character puzzle strings into value-typed grids
//		• Apply the five structural generators: row swaps, band swaps, transposition
//		• Relabel digits greedily so naming never hides equivalence
//		• Enumerate the full orbit of a grid (up to 3,359,232 states) breadth-first
//		• Return the numerically smallest relabeled form as THE canonical one
//
// ✨ Why choose sudocanon?
//
//   - Deterministic – same input, same canonical form, every run
//   - Pure values – grids are copied arrays; nothing is ever mutated
//   - Observable – hooks report every discovered state without touching the loop
//   - Bounded on demand – opt-in state ceilings and context cancellation
//
// Everything is organized under five packages:
//
//	grid/          — the 81-cell value type: codec, ordering, relabeling
//	moves/         — the five structural generators as pure functions
//	orbit/         — breadth-first orbit enumeration with options & hooks
//	canon/         — the string-in, string-out canonicalization facade
//	cmd/sudocanon/ — batch CLI: puzzles in, canonical forms out
//
// Quick example:
//
//	form, err := canon.Canonicalize("530070000...080079") // 81 chars
//	// form is the canonical 81-digit string of the puzzle's class
//
// Two puzzles with equal forms differ only by row/band rearrangement,
// transposition, and digit renaming.
//
//	go get github.com/venlars/sudocanon
package sudocanon
