// Package orbit enumerates the full set of grids reachable from a start
// grid under the structural generator set, tracking the canonical (least
// relabeled) member along the way.
//
// What:
//
//   - Explore runs a breadth-first worklist over the Cayley graph whose
//     vertices are grid states and whose edges apply one generator from
//     package moves.
//   - A visited set of grid values deduplicates states; the FIFO queue holds
//     discovered states awaiting expansion.
//   - Every newly discovered state is relabeled (grid.Relabel) and compared
//     (grid.Compare) against the running canonical candidate.
//   - Returns a Result with the canonical grid and the orbit size.
//
// Why:
//
//   - Two structurally equivalent puzzles share one orbit, so they share one
//     canonical form; comparing canonical forms answers "same puzzle up to
//     rearrangement and relabeling" without enumerating transformations at
//     the call site.
//   - The worklist pattern enumerates the orbit without materializing the
//     transformation group itself.
//
// Termination and correctness:
//
//	Each generator is an involution, so a state discovered through
//	generator i re-reaches only its predecessor through i; expansion
//	therefore skips exactly that index. The start state is seeded into the
//	visited set and its relabeling seeds the candidate, which makes the
//	final visited set genuinely closed under all generators and makes
//	canonicalization idempotent. The group is finite, the visited set
//	grows strictly, hence the queue drains.
//
// Complexity (N = orbit size, up to 3,359,232 for a fully asymmetric grid):
//
//   - Time:   O(N) generator applications, relabelings, and comparisons.
//   - Memory: O(N) for the visited set and queue.
//
// Options:
//
//   - WithOnDiscover(fn): observer invoked once per newly visited state with
//     the state and the running visited count; reporting stays outside the
//     search loop.
//   - WithMaxStates(n):   abort with ErrOrbitTooLarge beyond n states
//     (0 = unlimited, the default).
//   - WithContext(ctx):   cooperative cancellation, checked once per
//     dequeue; a cancelled run returns ctx.Err() and no partial result.
//
// Errors:
//
//   - ErrOptionViolation if an option value is nonsensical (negative cap).
//   - ErrOrbitTooLarge   if the WithMaxStates ceiling is exceeded.
//   - The context's error if cancellation fires mid-search.
package orbit
