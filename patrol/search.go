package patrol

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/patrol/grid"
)

// FindLoopObstacles counts the single-cell obstacles that would trap the
// guard in a loop.
//
// Only cells on the baseline route are tried: an obstacle anywhere else is
// never reached, so the guard's path and its exit stay the same. The start
// cell is never a candidate.
//
// Trials are independent and read-only against g; they fan out over
// Options.Workers goroutines, each with its own seen-state buffer, and the
// boolean results are summed.
//
// Returns ErrGridNil, ErrOptionViolation, the wrapped error of Walk, or the
// context error if the search is cancelled.
//
// Complexity: O(V×W×H) time where V is the route length; O(W×H) memory per worker.
func FindLoopObstacles(g *grid.Grid, opts ...Option) (*Search, error) {
	o, route, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	candidates := make([]grid.Position, 0, len(route.Path))
	for _, p := range route.Path {
		if p != route.Start.Pos {
			candidates = append(candidates, p)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return g.Index(candidates[i]) < g.Index(candidates[j])
	})

	return search(g, route, candidates, o)
}

// FindLoopObstaclesExhaustive is FindLoopObstacles without the route
// pruning: every Empty cell of the grid is tried. It exists to cross-check
// the pruned search and returns the same Obstacles.
func FindLoopObstaclesExhaustive(g *grid.Grid, opts ...Option) (*Search, error) {
	o, route, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	var candidates []grid.Position
	g.Each(func(p grid.Position, c grid.Cell) {
		if c == grid.Empty && p != route.Start.Pos {
			candidates = append(candidates, p)
		}
	})

	return search(g, route, candidates, o)
}

// Solve returns both puzzle answers for g.
func Solve(g *grid.Grid, opts ...Option) (Answer, error) {
	s, err := FindLoopObstacles(g, opts...)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Visited: s.Route.Visited(), Loops: s.Count()}, nil
}

// prepare applies opts and computes the baseline route.
func prepare(g *grid.Grid, opts []Option) (Options, *Route, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, nil, o.err
	}
	if g == nil {
		return o, nil, ErrGridNil
	}
	route, err := Walk(g)
	if err != nil {
		return o, nil, err
	}
	return o, route, nil
}

// search runs one loop trial per candidate. Worker k handles candidates
// k, k+n, k+2n… and writes only to its own slots of looped.
func search(g *grid.Grid, route *Route, candidates []grid.Position, o Options) (*Search, error) {
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	log := o.Logger.With(zap.Stringer("start", route.Start))
	log.Debug("obstacle search started",
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Int("candidates", len(candidates)),
		zap.Int("workers", workers))
	began := time.Now()

	looped := make([]bool, len(candidates))
	eg, ctx := errgroup.WithContext(o.Ctx)
	for k := 0; k < workers; k++ {
		k := k
		eg.Go(func() error {
			d := newDetector(g)
			for i := k; i < len(candidates); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				t := d.run(route.Start, candidates[i])
				looped[i] = t.Looped
				o.OnTrial(t)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Debug("obstacle search aborted", zap.Error(err))
		return nil, fmt.Errorf("patrol: search: %w", err)
	}

	s := &Search{Route: route, Candidates: len(candidates)}
	for i, ok := range looped {
		if ok {
			s.Obstacles = append(s.Obstacles, candidates[i])
		}
	}
	log.Debug("obstacle search finished",
		zap.Int("visited", route.Visited()),
		zap.Int("loops", s.Count()),
		zap.Duration("elapsed", time.Since(began)))

	return s, nil
}
