package patrol

import (
	"fmt"

	"github.com/katalvlaran/patrol/grid"
)

// detector runs loop trials on one grid. The seen buffer holds one bit per
// heading for every cell and is reused between trials, so a detector must
// not be shared between goroutines.
type detector struct {
	g    *grid.Grid
	seen []uint8
}

func newDetector(g *grid.Grid) *detector {
	return &detector{g: g, seen: make([]uint8, g.Len())}
}

// run walks from start with an extra obstacle at obstacle and
// reports whether a (position, direction) state repeats before the guard
// leaves the grid.
func (d *detector) run(start grid.Guard, obstacle grid.Position) Trial {
	clear(d.seen)
	w := &walker{g: d.g, extra: d.g.Index(obstacle), guard: start}
	t := Trial{Obstacle: obstacle}

	for {
		idx := d.g.Index(w.guard.Pos)
		bit := uint8(1) << w.guard.Dir.Index()
		if d.seen[idx]&bit != 0 {
			t.Looped = true
			return t
		}
		d.seen[idx] |= bit

		if w.advance() == exited {
			return t
		}
		t.Transitions++
	}
}

// DetectLoop reports whether one extra obstacle at obstacle traps a guard
// starting in state start. The grid itself is not modified.
//
// Every (position, direction) state is recorded before each transition; the
// first repeat proves a loop, leaving the grid proves there is none. As the
// state space has Width*Height*4 elements the trial always terminates within
// that many transitions.
//
// Returns ErrGridNil, ErrInvalidStart, ErrObstacleOutOfBounds, or
// ErrObstacleOnGuard when obstacle == start.Pos.
//
// Complexity: O(W×H) time and memory.
func DetectLoop(g *grid.Grid, start grid.Guard, obstacle grid.Position) (Trial, error) {
	if g == nil {
		return Trial{}, ErrGridNil
	}
	if err := validateStart(g, start); err != nil {
		return Trial{}, err
	}
	if !g.InBounds(obstacle) {
		return Trial{}, fmt.Errorf("%w: %s", ErrObstacleOutOfBounds, obstacle)
	}
	if obstacle == start.Pos {
		return Trial{}, fmt.Errorf("%w: %s", ErrObstacleOnGuard, obstacle)
	}
	return newDetector(g).run(start, obstacle), nil
}
