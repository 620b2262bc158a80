// Package grid defines the 81-cell Sudoku grid state, its puzzle-string
// codec, the total ordering used to rank grids, and digit relabeling.
//
// What:
//
//   - Grid is a fixed [81]uint8 array, row-major (row*9+col), value 0 = empty.
//   - Decode/Encode convert between a Grid and its 81-character puzzle string.
//   - Compare/Less order grids lexicographically by their digit sequence,
//     equivalent to comparing the encoded strings as 81-digit numbers.
//   - Relabel produces the digit-minimal renumbering of a grid without moving
//     any cell.
//
// Why:
//
//   - Value semantics: assigning or passing a Grid copies all 81 cells, so
//     transformations stay referentially transparent without explicit
//     copying.
//   - Comparability: a Grid is usable directly as a map key, which is what
//     the orbit explorer's visited set needs.
//
// Decoding leniency:
//
//	Inside a length-81 string, every byte outside '1'..'9' decodes to an
//	empty cell. '.', '0', and arbitrary fillers are all valid empties; only
//	a wrong total length is an error.
//
// Complexity:
//
//   - Decode, Encode, Relabel: O(81) time, O(1) extra memory.
//   - Compare: O(81) worst case, first differing cell decides.
//
// Errors:
//
//   - ErrInvalidLength: puzzle string is not exactly 81 bytes long.
package grid
