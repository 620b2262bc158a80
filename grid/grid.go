package grid

import (
	"errors"
	"fmt"
)

// Grid geometry. A grid is nine houses of nine cells; rows group into three
// bands of three, columns into three stacks of three.
const (
	// HouseSize is the number of cells in each row, column, or box.
	HouseSize = 9

	// CellCount is the number of cells in the whole grid.
	CellCount = 81

	// BandSize is the number of rows per band (and columns per stack).
	BandSize = 3
)

// ErrInvalidLength is returned when a puzzle string is not exactly 81 bytes.
var ErrInvalidLength = errors.New("grid: puzzle string must be 81 characters")

// Grid holds one digit per cell in row-major order: cell (r,c) lives at
// index r*HouseSize+c. Zero means empty; 1..9 are given or entered digits.
//
// Grid is a plain array value. Assignment copies it, equality compares all
// cells, and it may be used directly as a map key.
type Grid [CellCount]uint8

// Decode parses an 81-character puzzle string into a Grid.
// Bytes '1'..'9' become digits; every other byte becomes an empty cell.
// Returns ErrInvalidLength (wrapped with the actual length) for any other
// string length.
func Decode(puzzle string) (Grid, error) {
	var g Grid
	if len(puzzle) != CellCount {
		return g, fmt.Errorf("%w: got %d", ErrInvalidLength, len(puzzle))
	}
	for i := 0; i < CellCount; i++ {
		if c := puzzle[i]; '1' <= c && c <= '9' {
			g[i] = c - '0'
		}
	}

	return g, nil
}

// Encode renders the grid as its 81-character puzzle string, '0' for empty
// cells. Encode is total: it never fails, and Decode(g.Encode()) == g.
func (g Grid) Encode() string {
	var out [CellCount]byte
	for i, d := range g {
		out[i] = '0' + d
	}

	return string(out[:])
}

// Index maps (row, col) to the row-major cell index row*HouseSize+col.
func Index(row, col int) int {
	return row*HouseSize + col
}

// Coordinate converts a row-major cell index back to (row, col).
func Coordinate(i int) (row, col int) {
	return i / HouseSize, i % HouseSize
}
