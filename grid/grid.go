package grid

import "fmt"

// New builds a Grid from a rectangular 2D slice of cells, rows first.
// It deep-copies the input into a flat buffer.
// Returns ErrEmptyGrid if there are no rows or no columns,
// a *RowError (ErrNonRectangular) if any row length differs,
// and ErrMultipleGuards if more than one guard marker is present.
// Complexity: O(W×H) time and memory.
func New(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Cell, 0, w*h)
	guards := 0
	for y, row := range rows {
		if len(row) != w {
			return nil, &RowError{Row: y, Got: len(row), Want: w}
		}
		for _, c := range row {
			if c.IsGuard() {
				guards++
			}
		}
		cells = append(cells, row...)
	}
	if guards > 1 {
		return nil, fmt.Errorf("%w: found %d markers", ErrMultipleGuards, guards)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p. p must be in bounds; At panics otherwise.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: position %s outside %dx%d grid", p, g.Width, g.Height))
	}
	return g.cells[g.Index(p)]
}

// IsObstacle reports whether p is inside the grid and holds an Obstacle.
func (g *Grid) IsObstacle(p Position) bool {
	return g.InBounds(p) && g.cells[g.Index(p)] == Obstacle
}

// Index maps p to its row-major offset: Y*Width + X.
// The result is meaningless for positions outside the grid.
func (g *Grid) Index(p Position) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major offset back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}

// Len returns the number of cells, Width*Height.
func (g *Grid) Len() int { return len(g.cells) }

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Position, c Cell)) {
	for i, c := range g.cells {
		fn(g.Coordinate(i), c)
	}
}

// LocateGuard scans rows top to bottom and columns left to right and returns
// the first guard marker together with the heading it encodes.
// The boolean is false if the grid has no guard.
func (g *Grid) LocateGuard() (Guard, bool) {
	for i, c := range g.cells {
		if dir, ok := c.Heading(); ok {
			return Guard{Pos: g.Coordinate(i), Dir: dir}, true
		}
	}
	return Guard{}, false
}

// Guard is LocateGuard with the missing case turned into ErrMissingGuard.
func (g *Grid) Guard() (Guard, error) {
	start, ok := g.LocateGuard()
	if !ok {
		return Guard{}, ErrMissingGuard
	}
	return start, nil
}
