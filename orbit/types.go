package orbit

import (
	"context"
	"errors"
	"fmt"

	"github.com/venlars/sudocanon/grid"
)

var (
	// ErrOrbitTooLarge is returned when the visited-state count exceeds the
	// ceiling configured via WithMaxStates.
	ErrOrbitTooLarge = errors.New("orbit: state ceiling exceeded")

	// ErrOptionViolation is returned by Explore when a functional option
	// received an invalid value (for example a negative state ceiling).
	ErrOptionViolation = errors.New("orbit: invalid option")
)

// Result carries the outcome of a completed orbit enumeration.
type Result struct {
	// Canonical is the least relabeled grid over the whole orbit.
	Canonical grid.Grid

	// Size is the number of distinct states in the orbit, the start
	// state included.
	Size int
}

// Options configures a single Explore run.
// Zero value is NOT ready to use; start from DefaultOptions or pass
// functional options to Explore.
type Options struct {
	// Ctx cancels a long enumeration between state expansions.
	// Defaults to context.Background().
	Ctx context.Context

	// OnDiscover, when non-nil, fires once per newly visited state with the
	// state itself and the running visited count. The start state fires with
	// count 1. Must not retain the grid beyond the call if mutation is a
	// concern; grids are values, so a plain copy is already safe.
	OnDiscover func(state grid.Grid, visited int)

	// MaxStates caps the visited-state count; 0 means unlimited.
	// Exceeding the cap aborts the run with ErrOrbitTooLarge.
	MaxStates int

	// err records the first invalid option value; surfaced by Explore
	// before any search work happens.
	err error
}

// DefaultOptions returns the baseline configuration: background context,
// no observer, no state ceiling.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxStates: 0,
	}
}

// Option adjusts one knob on Options. Supply them to Explore.
type Option func(*Options)

// WithContext installs ctx for cooperative cancellation.
// A nil ctx is recorded and surfaced as ErrOptionViolation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnDiscover installs fn as the per-state observer.
// Passing nil simply disables observation.
func WithOnDiscover(fn func(state grid.Grid, visited int)) Option {
	return func(o *Options) {
		o.OnDiscover = fn
	}
}

// WithMaxStates caps the orbit enumeration at n visited states.
// n == 0 disables the cap; n < 0 is recorded and surfaced as
// ErrOptionViolation.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: negative state ceiling %d", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}
