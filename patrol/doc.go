// Package patrol simulates a guard walking a grid.Grid and searches for the
// single extra obstacles that would trap it in an endless loop.
//
// What:
//
//   - Walk follows the patrol rule (straight ahead, turn right at an
//     obstacle, stop on leaving the map) and returns the visited cells.
//   - DetectLoop repeats the walk with one hypothetical obstacle and reports
//     whether a (position, direction) state repeats.
//   - FindLoopObstacles tries every cell of the baseline route, in parallel,
//     and collects the positions that cause a loop.
//   - FindLoopObstaclesExhaustive tries every empty cell instead; it is the
//     brute-force reference for the pruned search.
//   - Solve returns both counts at once.
//
// Why only the route:
//
//	An obstacle off the baseline route is never touched, so the guard
//	takes the same path and leaves. Pruning to the route is exact.
//
// Concurrency:
//
//	The grid is read-only. Each worker owns its seen-state buffer and writes
//	only its own result slots, so no locks are taken. Workers are bounded by
//	WithWorkers and stop early when WithContext's context is cancelled.
//
// Complexity:
//
//   - Walk:              O(W×H), Memory: O(W×H).
//   - DetectLoop:        O(W×H×4) transitions at most, Memory: O(W×H).
//   - FindLoopObstacles: O(V×W×H), V = route length.
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - grid.ErrMissingGuard (wrapped): the map has no guard marker.
//   - ErrInvalidStart: start state outside the grid or without a heading.
//   - ErrObstacleOnGuard: obstacle placed on the start cell.
//   - ErrObstacleOutOfBounds: obstacle outside the grid.
//   - ErrGuardLoops: the unmodified map never lets the guard leave.
//   - ErrOptionViolation: e.g. negative worker count.
package patrol
