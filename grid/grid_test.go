package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/grid"
)

//----------------------------------------------------------------------------//
// New, InBounds and At
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged and multi-guard inputs.
func TestNew_Errors(t *testing.T) {
	E, G := grid.Empty, grid.GuardUp
	cases := []struct {
		name string
		rows [][]grid.Cell
		err  error
	}{
		{"EmptyRows", [][]grid.Cell{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.Cell{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]grid.Cell{{E, E}, {E}}, grid.ErrNonRectangular},
		{"TwoGuards", [][]grid.Cell{{G, G}}, grid.ErrMultipleGuards},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
			if !errors.Is(err, grid.ErrMalformedInput) {
				t.Errorf("New(%v) error = %v; want it to match ErrMalformedInput", tc.rows, err)
			}
		})
	}
}

// TestNew_CopiesInput checks that later edits to the source rows do not leak in.
func TestNew_CopiesInput(t *testing.T) {
	rows := [][]grid.Cell{{grid.Empty, grid.Obstacle}}
	g, err := grid.New(rows)
	require.NoError(t, err)

	rows[0][0] = grid.Obstacle
	assert.Equal(t, grid.Empty, g.At(grid.Position{X: 0, Y: 0}))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.Parse("...\n...\n")
	require.NoError(t, err)

	valid := []grid.Position{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []grid.Position{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

// TestAt reads cells back and checks the out-of-bounds panic.
func TestAt(t *testing.T) {
	g, err := grid.Parse(".#\n^.\n")
	require.NoError(t, err)

	assert.Equal(t, grid.Empty, g.At(grid.Position{X: 0, Y: 0}))
	assert.Equal(t, grid.Obstacle, g.At(grid.Position{X: 1, Y: 0}))
	assert.Equal(t, grid.GuardUp, g.At(grid.Position{X: 0, Y: 1}))
	assert.True(t, g.IsObstacle(grid.Position{X: 1, Y: 0}))
	assert.False(t, g.IsObstacle(grid.Position{X: 5, Y: 0}))
	assert.Panics(t, func() { g.At(grid.Position{X: 2, Y: 0}) })
}

// TestIndexCoordinate round-trips every cell through Index and Coordinate.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.Parse("....\n....\n....\n")
	require.NoError(t, err)
	require.Equal(t, 12, g.Len())

	seen := 0
	g.Each(func(p grid.Position, _ grid.Cell) {
		assert.Equal(t, seen, g.Index(p))
		assert.Equal(t, p, g.Coordinate(g.Index(p)))
		seen++
	})
	assert.Equal(t, g.Len(), seen)
}

//----------------------------------------------------------------------------//
// Guard location
//----------------------------------------------------------------------------//

// TestLocateGuard maps every marker glyph to its heading.
func TestLocateGuard(t *testing.T) {
	cases := []struct {
		text string
		want grid.Guard
	}{
		{"..\n.^\n", grid.Guard{Pos: grid.Position{X: 1, Y: 1}, Dir: grid.Up}},
		{">.\n..\n", grid.Guard{Pos: grid.Position{X: 0, Y: 0}, Dir: grid.Right}},
		{"..\nv.\n", grid.Guard{Pos: grid.Position{X: 0, Y: 1}, Dir: grid.Down}},
		{".<\n..\n", grid.Guard{Pos: grid.Position{X: 1, Y: 0}, Dir: grid.Left}},
	}
	for _, tc := range cases {
		g, err := grid.Parse(tc.text)
		require.NoError(t, err)
		got, ok := g.LocateGuard()
		require.True(t, ok, "LocateGuard(%q)", tc.text)
		assert.Equal(t, tc.want, got)
	}
}

// TestGuard_Missing checks the sentinel error for a guardless grid.
func TestGuard_Missing(t *testing.T) {
	g, err := grid.Parse("..#\n...\n")
	require.NoError(t, err)

	_, ok := g.LocateGuard()
	assert.False(t, ok)
	_, err = g.Guard()
	assert.ErrorIs(t, err, grid.ErrMissingGuard)
	assert.NotErrorIs(t, err, grid.ErrMalformedInput)
}

//----------------------------------------------------------------------------//
// Directions
//----------------------------------------------------------------------------//

// TestTurnRight_FourTimesIsIdentity checks the clockwise cycle and its inverse.
func TestTurnRight_FourTimesIsIdentity(t *testing.T) {
	for i, d := range grid.Directions {
		next := grid.Directions[(i+1)%4]
		assert.Equal(t, next, d.TurnRight(), "TurnRight(%v)", d)
		assert.Equal(t, d, d.TurnRight().TurnLeft(), "TurnLeft∘TurnRight(%v)", d)
		assert.Equal(t, d, d.TurnRight().TurnRight().TurnRight().TurnRight(), "4×TurnRight(%v)", d)
		assert.Equal(t, i, d.Index())
		h, ok := d.Marker().Heading()
		assert.True(t, ok)
		assert.Equal(t, d, h)
	}
	assert.Equal(t, -1, grid.Direction{DX: 1, DY: 1}.Index())
}

// TestStep moves a position one unit along each heading.
func TestStep(t *testing.T) {
	p := grid.Position{X: 3, Y: 3}
	assert.Equal(t, grid.Position{X: 3, Y: 2}, p.Step(grid.Up))
	assert.Equal(t, grid.Position{X: 4, Y: 3}, p.Step(grid.Right))
	assert.Equal(t, grid.Position{X: 3, Y: 4}, p.Step(grid.Down))
	assert.Equal(t, grid.Position{X: 2, Y: 3}, p.Step(grid.Left))
}
