package grid

// Relabel renumbers the grid's digits so that, scanning cells in row-major
// order, the first nonzero digit becomes 1, the next distinct digit becomes
// 2, and so on. Cells keep their positions; empty cells stay empty.
//
// First-occurrence relabeling is the digit bijection that minimizes the
// encoded string for a fixed cell arrangement, so no search over the 9!
// candidate bijections is needed. Relabel is idempotent: an already
// relabeled grid maps to itself.
func (g Grid) Relabel() Grid {
	var out Grid
	// label[d] is the replacement assigned to digit d, 0 while unassigned.
	var label [HouseSize + 1]uint8
	next := uint8(1)
	for i, d := range g {
		if d == 0 {
			continue
		}
		if label[d] == 0 {
			label[d] = next
			next++
		}
		out[i] = label[d]
	}

	return out
}
