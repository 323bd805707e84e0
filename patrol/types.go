// Package patrol provides tunable options, results and error definitions
// for the guard walk and the loop-obstacle search.
package patrol

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/patrol/grid"
)

// Sentinel errors for simulation and search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("patrol: grid is nil")

	// ErrInvalidStart is returned when a start state lies outside the grid
	// or does not face one of the four headings.
	ErrInvalidStart = errors.New("patrol: invalid start state")

	// ErrObstacleOnGuard is returned when a hypothetical obstacle is placed
	// on the guard's starting cell.
	ErrObstacleOnGuard = errors.New("patrol: obstacle cannot be placed on the guard's start")

	// ErrObstacleOutOfBounds is returned when a hypothetical obstacle lies
	// outside the grid.
	ErrObstacleOutOfBounds = errors.New("patrol: obstacle outside the grid")

	// ErrGuardLoops is returned by Walk when the unmodified grid never lets
	// the guard leave.
	ErrGuardLoops = errors.New("patrol: guard never leaves the grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("patrol: invalid option supplied")
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds the parameters of an obstacle search.
type Options struct {
	// Ctx allows cancellation of long searches.
	Ctx context.Context

	// Workers bounds the number of goroutines running loop trials.
	// Zero means runtime.GOMAXPROCS(0); one runs every trial serially.
	Workers int

	// Logger receives Debug-level progress records.
	Logger *zap.Logger

	// OnTrial is called after each loop trial. It may be called from
	// several goroutines at once.
	OnTrial func(t Trial)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Workers == 0 (one per available CPU)
//   - a no-op logger
//   - a no-op OnTrial hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 0,
		Logger:  zap.NewNop(),
		OnTrial: func(Trial) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers limits the number of concurrent trials.
//
//	n > 0: at most n goroutines
//	n == 0: one per CPU
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes progress records to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnTrial registers a callback run after every loop trial.
func WithOnTrial(fn func(t Trial)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrial = fn
		}
	}
}

// Route is the outcome of one forward walk on an unmodified grid.
type Route struct {
	// Start is the guard's initial state.
	Start grid.Guard
	// Final is the last state inside the grid; one more step along
	// Final.Dir leaves the map.
	Final grid.Guard
	// Path lists each distinct cell once, in first-visit order.
	Path []grid.Position
	// Steps counts moves, Turns counts 90° rotations.
	Steps, Turns int

	g       *grid.Grid
	visited []bool
}

// Visited returns the number of distinct cells the guard stood on.
func (r *Route) Visited() int { return len(r.Path) }

// Contains reports whether the guard stood on p.
func (r *Route) Contains(p grid.Position) bool {
	return r.g.InBounds(p) && r.visited[r.g.Index(p)]
}

// Trial is the outcome of one loop test with a hypothetical obstacle.
type Trial struct {
	Obstacle grid.Position
	// Looped is true if the guard repeated a (position, direction) state.
	Looped bool
	// Transitions counts turns and moves made before the verdict. It never
	// exceeds Width*Height*4.
	Transitions int
}

// Search is the outcome of an obstacle search.
type Search struct {
	// Route is the baseline walk without any extra obstacle.
	Route *Route
	// Candidates is the number of positions tested.
	Candidates int
	// Obstacles lists, in row-major order, every tested position whose
	// obstacle traps the guard in a loop.
	Obstacles []grid.Position
}

// Count returns the number of loop-inducing obstacle positions.
func (s *Search) Count() int { return len(s.Obstacles) }

// Answer pairs the two puzzle results.
type Answer struct {
	// Visited is the number of distinct cells on the baseline walk.
	Visited int
	// Loops is the number of single obstacles that make the guard loop.
	Loops int
}
