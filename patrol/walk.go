package patrol

import (
	"fmt"

	"github.com/katalvlaran/patrol/grid"
)

// noObstacle marks a walker that runs on the unmodified grid.
const noObstacle = -1

// outcome of a single transition.
type move int

const (
	stepped move = iota // guard moved one cell
	turned              // guard rotated in place
	exited              // next cell is outside the grid
)

// walker encapsulates mutable walk state over a read-only grid.
type walker struct {
	g     *grid.Grid
	extra int // flat index of the hypothetical obstacle, or noObstacle
	guard grid.Guard
}

// advance applies one transition of the patrol rule:
// exit if the next cell is outside, turn right if it is blocked, else move.
func (w *walker) advance() move {
	next := w.guard.Pos.Step(w.guard.Dir)
	if !w.g.InBounds(next) {
		return exited
	}
	if w.blocked(next) {
		w.guard.Dir = w.guard.Dir.TurnRight()
		return turned
	}
	w.guard.Pos = next
	return stepped
}

func (w *walker) blocked(p grid.Position) bool {
	idx := w.g.Index(p)
	return idx == w.extra || w.g.At(p) == grid.Obstacle
}

// stateLimit is the number of distinct guard states on g.
func stateLimit(g *grid.Grid) int {
	return g.Len() * len(grid.Directions)
}

// validateStart checks a start state against g.
func validateStart(g *grid.Grid, start grid.Guard) error {
	if !g.InBounds(start.Pos) {
		return fmt.Errorf("%w: %s outside %dx%d grid", ErrInvalidStart, start.Pos, g.Width, g.Height)
	}
	if start.Dir.Index() < 0 {
		return fmt.Errorf("%w: heading %s", ErrInvalidStart, start.Dir)
	}
	return nil
}

// Walk runs the guard on g from its marked start until it leaves the map,
// recording every distinct cell it stands on.
//
// Behavior, repeated from the start state:
//  1. Mark the current cell visited.
//  2. Look one cell ahead. Outside the grid → stop.
//  3. Obstacle ahead → turn 90° right in place and look again.
//  4. Otherwise move forward and go to 1.
//
// Returns ErrGridNil, grid.ErrMissingGuard (wrapped) for a map without a
// guard, or ErrGuardLoops if the walk exceeds Width*Height*4 transitions,
// which can only happen when a state repeats.
//
// Complexity: O(W×H) time and memory.
func Walk(g *grid.Grid) (*Route, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	start, err := g.Guard()
	if err != nil {
		return nil, fmt.Errorf("patrol: Walk: %w", err)
	}
	return walkFrom(g, start)
}

func walkFrom(g *grid.Grid, start grid.Guard) (*Route, error) {
	if err := validateStart(g, start); err != nil {
		return nil, err
	}
	r := &Route{
		Start:   start,
		g:       g,
		visited: make([]bool, g.Len()),
	}
	w := &walker{g: g, extra: noObstacle, guard: start}
	limit := stateLimit(g)

	r.mark(start.Pos)
	for n := 0; ; n++ {
		if n >= limit {
			return nil, fmt.Errorf("%w: state repeated within %d transitions from %s", ErrGuardLoops, limit, start)
		}
		switch w.advance() {
		case exited:
			r.Final = w.guard
			return r, nil
		case turned:
			r.Turns++
		case stepped:
			r.Steps++
			r.mark(w.guard.Pos)
		}
	}
}

func (r *Route) mark(p grid.Position) {
	idx := r.g.Index(p)
	if !r.visited[idx] {
		r.visited[idx] = true
		r.Path = append(r.Path, p)
	}
}
