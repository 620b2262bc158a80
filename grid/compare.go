package grid

import "bytes"

// Compare orders two grids lexicographically by their row-major digit
// sequences, with 0 (empty) ranking below every digit. The result is the
// sign of the first differing cell, or 0 when the grids are identical.
// Because cell values are single bytes 0..9, byte order and digit-string
// order coincide, so this is exactly the ordering of the encoded strings
// read as 81-digit numbers.
func (g Grid) Compare(o Grid) int {
	return bytes.Compare(g[:], o[:])
}

// Less reports whether g precedes o under Compare.
func (g Grid) Less(o Grid) bool {
	return g.Compare(o) < 0
}
