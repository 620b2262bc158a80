// Package canon is the string-level entry point for structural
// canonicalization: it decodes an 81-character puzzle, enumerates its
// orbit under the row, band, and transposition generators (package
// orbit), and encodes the least relabeled member.
//
// Two puzzles are structurally identical exactly when their canonical
// forms are equal, so deduplicating a puzzle collection reduces to
// comparing Canonicalize outputs. Column and stack rearrangements need
// no generators of their own; transposition conjugates the row moves
// into them.
//
// Errors:
//
//   - grid.ErrInvalidLength  if the input is not 81 characters.
//   - orbit.ErrOptionViolation, orbit.ErrOrbitTooLarge, or the context's
//     error, passed through from the enumeration.
package canon
