package moves

import "github.com/venlars/sudocanon/grid"

// Move is a pure structural transformation: it returns a rearranged copy of
// its input and never mutates it.
type Move func(grid.Grid) grid.Grid

// SwapAdjacentRows exchanges rows 0 and 1, the neighboring pair inside the
// first band.
func SwapAdjacentRows(in grid.Grid) grid.Grid {
	return rearrangeRows(in, 1, 0, 2)
}

// SwapOuterRows exchanges rows 0 and 2, the outer pair inside the first band.
func SwapOuterRows(in grid.Grid) grid.Grid {
	return rearrangeRows(in, 2, 1, 0)
}

// SwapAdjacentBands exchanges the first two bands: rows {0,1,2} with rows
// {3,4,5}, leaving the third band untouched.
func SwapAdjacentBands(in grid.Grid) grid.Grid {
	return rearrangeRows(in, 3, 4, 5, 0, 1, 2, 6, 7, 8)
}

// SwapOuterBands exchanges the outer bands: rows {0,1,2} with rows {6,7,8},
// leaving the middle band untouched.
func SwapOuterBands(in grid.Grid) grid.Grid {
	return rearrangeRows(in, 6, 7, 8, 3, 4, 5, 0, 1, 2)
}

// Transpose mirrors the grid across its main diagonal: cell (r,c) moves to
// (c,r), turning rows into columns and vice versa.
func Transpose(in grid.Grid) grid.Grid {
	var out grid.Grid
	for i, d := range in {
		r, c := grid.Coordinate(i)
		out[grid.Index(c, r)] = d
	}

	return out
}

// All returns the five generators in canonical order. Callers refer to a
// generator by its index in this slice; the slice is freshly allocated on
// every call, so holding or modifying it is safe.
func All() []Move {
	return []Move{
		SwapAdjacentRows,
		SwapOuterRows,
		SwapAdjacentBands,
		SwapOuterBands,
		Transpose,
	}
}

// rearrangeRows copies in, then rewrites a prefix of its rows: output row i
// receives input row perm[i]. Rows beyond the prefix stay in place. Rows
// already in position are skipped, so an identity suffix costs nothing.
func rearrangeRows(in grid.Grid, perm ...int) grid.Grid {
	out := in
	for outRow, inRow := range perm {
		if inRow == outRow {
			continue
		}
		copy(out[outRow*grid.HouseSize:(outRow+1)*grid.HouseSize],
			in[inRow*grid.HouseSize:(inRow+1)*grid.HouseSize])
	}

	return out
}
