package orbit_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/venlars/sudocanon/grid"
	"github.com/venlars/sudocanon/moves"
	"github.com/venlars/sudocanon/orbit"
)

// fullOrbit is the transformation count for a grid with no structural
// symmetry: 1296 row rearrangements times 1296 column rearrangements,
// doubled by optional transposition.
const fullOrbit = 2 * 1296 * 1296

func mustGrid(t *testing.T, puzzle string) grid.Grid {
	t.Helper()
	g, err := grid.Decode(puzzle)
	if err != nil {
		t.Fatalf("Decode(%q): %v", puzzle, err)
	}
	return g
}

// singleClue places one digit in the top-left cell of an empty grid.
func singleClue() string { return "5" + strings.Repeat("0", 80) }

// uniformRow fills the first row with one digit, leaving the rest empty.
func uniformRow() string {
	return strings.Repeat("5", grid.HouseSize) + strings.Repeat("0", 72)
}

// rowStripes paints row r with digit r+1, giving nine pairwise distinct
// constant rows.
func rowStripes() string {
	var b strings.Builder
	for d := '1'; d <= '9'; d++ {
		b.WriteString(strings.Repeat(string(d), grid.HouseSize))
	}
	return b.String()
}

// asymmetric builds a grid whose rows all carry distinct digit multisets
// and whose second row is injective, so no transformation but the
// identity maps it to itself and the orbit realizes every transformation.
func asymmetric() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("9", grid.HouseSize))
	b.WriteString("123456789")
	for d := '1'; d <= '7'; d++ {
		b.WriteString(strings.Repeat(string(d), grid.HouseSize))
	}
	return b.String()
}

// TestExplore_OptionErrors verifies that invalid options are rejected
// before any search work happens.
func TestExplore_OptionErrors(t *testing.T) {
	res, err := orbit.Explore(grid.Grid{}, orbit.WithMaxStates(-1))
	if !errors.Is(err, orbit.ErrOptionViolation) {
		t.Errorf("negative ceiling: want ErrOptionViolation, got %v", err)
	}
	if res != nil {
		t.Errorf("negative ceiling: want nil result, got %+v", res)
	}
	res, err = orbit.Explore(grid.Grid{}, orbit.WithContext(nil))
	if !errors.Is(err, orbit.ErrOptionViolation) {
		t.Errorf("nil context: want ErrOptionViolation, got %v", err)
	}
	if res != nil {
		t.Errorf("nil context: want nil result, got %+v", res)
	}
}

// TestExplore_FixedPoint covers the empty grid, which every generator
// maps to itself.
func TestExplore_FixedPoint(t *testing.T) {
	res, err := orbit.Explore(grid.Grid{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Size != 1 {
		t.Errorf("Size = %d; want 1", res.Size)
	}
	if got, want := res.Canonical.Encode(), strings.Repeat("0", grid.CellCount); got != want {
		t.Errorf("Canonical = %q; want %q", got, want)
	}
}

// TestExplore_SingleClue checks that one placed digit reaches all 81
// cells and canonicalizes with the digit relabeled to 1 in the last cell.
func TestExplore_SingleClue(t *testing.T) {
	res, err := orbit.Explore(mustGrid(t, singleClue()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Size != grid.CellCount {
		t.Errorf("Size = %d; want %d", res.Size, grid.CellCount)
	}
	if got, want := res.Canonical.Encode(), strings.Repeat("0", 80)+"1"; got != want {
		t.Errorf("Canonical = %q; want %q", got, want)
	}
}

// TestExplore_UniformRow checks a single constant row: nine row
// placements plus nine column placements of its transpose.
func TestExplore_UniformRow(t *testing.T) {
	res, err := orbit.Explore(mustGrid(t, uniformRow()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Size != 18 {
		t.Errorf("Size = %d; want 18", res.Size)
	}
	want := strings.Repeat("0", 72) + strings.Repeat("1", grid.HouseSize)
	if got := res.Canonical.Encode(); got != want {
		t.Errorf("Canonical = %q; want %q", got, want)
	}
}

// TestExplore_RowStripes checks nine distinct constant rows: 1296 row
// arrangements plus their 1296 transposes.
func TestExplore_RowStripes(t *testing.T) {
	res, err := orbit.Explore(mustGrid(t, rowStripes()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Size != 2592 {
		t.Errorf("Size = %d; want 2592", res.Size)
	}
	if got, want := res.Canonical.Encode(), rowStripes(); got != want {
		t.Errorf("Canonical = %q; want %q", got, want)
	}
}

// TestExplore_GeneratorInvariance asserts that starting from any
// one-generator image yields the same canonical form and orbit size.
func TestExplore_GeneratorInvariance(t *testing.T) {
	start := mustGrid(t, uniformRow())
	base, err := orbit.Explore(start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, mv := range moves.All() {
		res, err := orbit.Explore(mv(start))
		if err != nil {
			t.Fatalf("generator %d: unexpected error: %v", i, err)
		}
		if res.Canonical != base.Canonical {
			t.Errorf("generator %d: Canonical = %q; want %q", i, res.Canonical.Encode(), base.Canonical.Encode())
		}
		if res.Size != base.Size {
			t.Errorf("generator %d: Size = %d; want %d", i, res.Size, base.Size)
		}
	}
}

// TestExplore_OnDiscoverSequence asserts the observer fires once per
// state with a strictly increasing visited count, starting at the start
// state with count 1.
func TestExplore_OnDiscoverSequence(t *testing.T) {
	start := mustGrid(t, singleClue())
	var states []grid.Grid
	var counts []int
	res, err := orbit.Explore(start, orbit.WithOnDiscover(func(s grid.Grid, visited int) {
		states = append(states, s)
		counts = append(counts, visited)
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(states) != res.Size {
		t.Fatalf("observer fired %d times; want %d", len(states), res.Size)
	}
	if states[0] != start {
		t.Errorf("first observed state = %q; want start %q", states[0].Encode(), start.Encode())
	}
	for i, c := range counts {
		if c != i+1 {
			t.Errorf("counts[%d] = %d; want %d", i, c, i+1)
		}
	}
	seen := make(map[grid.Grid]bool, len(states))
	for _, s := range states {
		if seen[s] {
			t.Errorf("state %q observed twice", s.Encode())
		}
		seen[s] = true
	}
}

// TestExplore_MaxStates verifies the ceiling both short of and at the
// exact orbit size.
func TestExplore_MaxStates(t *testing.T) {
	start := mustGrid(t, singleClue())

	res, err := orbit.Explore(start, orbit.WithMaxStates(80))
	if !errors.Is(err, orbit.ErrOrbitTooLarge) {
		t.Errorf("ceiling 80: want ErrOrbitTooLarge, got %v", err)
	}
	if res != nil {
		t.Errorf("ceiling 80: want nil result, got %+v", res)
	}

	res, err = orbit.Explore(start, orbit.WithMaxStates(grid.CellCount))
	if err != nil {
		t.Fatalf("ceiling 81: unexpected error: %v", err)
	}
	if res.Size != grid.CellCount {
		t.Errorf("ceiling 81: Size = %d; want %d", res.Size, grid.CellCount)
	}

	// The observer must never report a count beyond the ceiling.
	fired := 0
	_, err = orbit.Explore(start,
		orbit.WithMaxStates(10),
		orbit.WithOnDiscover(func(grid.Grid, int) { fired++ }),
	)
	if !errors.Is(err, orbit.ErrOrbitTooLarge) {
		t.Errorf("ceiling 10: want ErrOrbitTooLarge, got %v", err)
	}
	if fired > 10 {
		t.Errorf("observer fired %d times with ceiling 10", fired)
	}
}

// TestExplore_Cancellation verifies that a cancelled context halts the
// enumeration promptly with no partial result.
func TestExplore_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	res, err := orbit.Explore(mustGrid(t, rowStripes()), orbit.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
	if res != nil {
		t.Errorf("want nil result, got %+v", res)
	}
}

// TestExplore_Deterministic ensures repeated runs agree exactly.
func TestExplore_Deterministic(t *testing.T) {
	start := mustGrid(t, rowStripes())
	first, err := orbit.Explore(start)
	if err != nil {
		t.Fatal(err)
	}
	second, err := orbit.Explore(start)
	if err != nil {
		t.Fatal(err)
	}
	if *first != *second {
		t.Errorf("runs disagree: %+v vs %+v", first, second)
	}
}

// TestExplore_ConcurrentSafety ensures two concurrent enumerations of the
// same start grid do not interfere.
func TestExplore_ConcurrentSafety(t *testing.T) {
	start := mustGrid(t, uniformRow())
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := orbit.Explore(start); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("concurrent run #%d: unexpected error %v", i, err)
		}
	}
}

// TestExplore_FullOrbit enumerates a symmetry-free grid whose orbit
// realizes every transformation. Takes a few seconds and several hundred
// megabytes, so it is skipped in short mode.
func TestExplore_FullOrbit(t *testing.T) {
	if testing.Short() {
		t.Skip("full orbit enumeration skipped in short mode")
	}
	res, err := orbit.Explore(mustGrid(t, asymmetric()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Size != fullOrbit {
		t.Errorf("Size = %d; want %d", res.Size, fullOrbit)
	}
	want := "111111111123456789444444444222222222333333333" +
		"777777777555555555888888888999999999"
	if got := res.Canonical.Encode(); got != want {
		t.Errorf("Canonical = %q; want %q", got, want)
	}
}
