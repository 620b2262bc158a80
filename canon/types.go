package canon

import (
	"context"

	"github.com/venlars/sudocanon/grid"
	"github.com/venlars/sudocanon/orbit"
)

// Options configures a single Canonicalize call.
type Options struct {
	// Ctx cancels a long canonicalization between state expansions.
	// Defaults to context.Background().
	Ctx context.Context

	// Progress, when non-nil, receives the running visited-state count once
	// per newly discovered state, the start state included.
	Progress func(visited int)

	// MaxStates caps the orbit enumeration; 0 means unlimited.
	MaxStates int
}

// DefaultOptions returns the baseline configuration: background context,
// no progress observer, no state ceiling.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Option adjusts one knob on Options. Supply them to Canonicalize.
type Option func(*Options)

// WithContext installs ctx for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithProgress installs fn as the per-state progress observer.
func WithProgress(fn func(visited int)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithMaxStates caps the orbit enumeration at n visited states;
// 0 disables the cap.
func WithMaxStates(n int) Option {
	return func(o *Options) { o.MaxStates = n }
}

// orbitOptions translates the surface options into explorer options.
// Validation happens there: a nil context or a negative ceiling surfaces
// as orbit.ErrOptionViolation when the enumeration starts.
func (o Options) orbitOptions() []orbit.Option {
	opts := []orbit.Option{
		orbit.WithContext(o.Ctx),
		orbit.WithMaxStates(o.MaxStates),
	}
	if o.Progress != nil {
		fn := o.Progress
		opts = append(opts, orbit.WithOnDiscover(func(_ grid.Grid, visited int) {
			fn(visited)
		}))
	}
	return opts
}
