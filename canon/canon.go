package canon

import (
	"github.com/venlars/sudocanon/grid"
	"github.com/venlars/sudocanon/orbit"
)

// Canonicalize returns the canonical 81-character form of puzzle: the
// numerically smallest relabeled digit string over every grid reachable
// through the structural generators. Characters outside '1'..'9' read as
// empty cells.
// Returns grid.ErrInvalidLength unless the input is exactly 81
// characters, orbit.ErrOptionViolation for invalid options,
// orbit.ErrOrbitTooLarge when a WithMaxStates ceiling is exceeded, or
// the context's error on cancellation; the result string is empty
// whenever the error is non-nil.
func Canonicalize(puzzle string, opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.Decode(puzzle)
	if err != nil {
		return "", err
	}

	res, err := orbit.Explore(g, o.orbitOptions()...)
	if err != nil {
		return "", err
	}
	return res.Canonical.Encode(), nil
}
