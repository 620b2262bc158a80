// Package moves defines the generating set of structural Sudoku
// transformations used by the orbit explorer.
//
// What:
//
//   - Move is a pure function from grid.Grid to grid.Grid.
//   - Five generators: SwapAdjacentRows, SwapOuterRows, SwapAdjacentBands,
//     SwapOuterBands, and Transpose.
//   - All returns the generators in their canonical order; exploration code
//     identifies a generator by its index in that slice (Go function values
//     are not comparable).
//
// Group structure:
//
//	The two row swaps generate the full permutation group of the three rows
//	inside band 0; the two band swaps generate the full permutation group of
//	the three bands. Conjugating through band swaps reaches the row
//	permutations of bands 1 and 2, so compositions of the four row moves
//	produce every row order that respects the band structure: 6 orders per
//	band times 6 band orders, 6^3*6 = 1296 in total. Conjugating any row
//	move through Transpose yields the corresponding column move, so no
//	column generators are needed. Digit relabeling is not part of this
//	set; grid.Relabel handles it per state.
//
// Invariants:
//
//   - Every Move is a bijection on grid states, and each generator is an
//     involution: applying it twice restores the input.
//   - Moves never mutate their input; grid.Grid's value semantics make the
//     copy implicit.
//
// Complexity: every Move runs in O(81) time and O(1) extra memory.
package moves
