package orbit

import (
	"context"
	"fmt"

	"github.com/venlars/sudocanon/grid"
	"github.com/venlars/sudocanon/moves"
)

// queueItem pairs a discovered state with the index of the generator that
// produced it; skip == -1 for the start state.
type queueItem struct {
	state grid.Grid
	skip  int
}

// walker encapsulates mutable enumeration state.
type walker struct {
	moves   []moves.Move
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[grid.Grid]bool
	best    grid.Grid
}

// Explore enumerates the orbit of start under the structural generators,
// applying any number of functional Options.
// Returns ErrOptionViolation for bad options, ErrOrbitTooLarge when the
// WithMaxStates ceiling is exceeded, or the context's error on
// cancellation; the Result is nil whenever the error is non-nil.
func Explore(start grid.Grid, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	w := &walker{
		moves:   moves.All(),
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0),
		visited: make(map[grid.Grid]bool),
		best:    start.Relabel(),
	}

	// Seed with the start state; it carries no discovery generator, so every
	// generator applies on its first expansion.
	if err := w.discover(start, -1); err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	return &Result{Canonical: w.best, Size: len(w.visited)}, nil
}

// discover marks state visited, enforces the state ceiling, folds the
// state's relabeling into the canonical candidate, fires OnDiscover, and
// adds the state to the queue.
func (w *walker) discover(state grid.Grid, via int) error {
	w.visited[state] = true
	if w.opts.MaxStates > 0 && len(w.visited) > w.opts.MaxStates {
		return fmt.Errorf("%w: more than %d states", ErrOrbitTooLarge, w.opts.MaxStates)
	}
	if rel := state.Relabel(); rel.Less(w.best) {
		w.best = rel
	}
	if w.opts.OnDiscover != nil {
		w.opts.OnDiscover(state, len(w.visited))
	}
	w.queue = append(w.queue, queueItem{state: state, skip: via})
	return nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// expand applies every generator to the item's state and discovers each
// unseen image. The generator that produced the state is skipped: each
// generator is an involution, so re-applying it only rebuilds the
// already-visited predecessor.
func (w *walker) expand(item queueItem) error {
	for i, mv := range w.moves {
		if i == item.skip {
			continue
		}
		next := mv(item.state)

		// first time seen?
		if !w.visited[next] {
			if err := w.discover(next, i); err != nil {
				return err
			}
		}
	}
	return nil
}
