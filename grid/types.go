// Package grid defines the cell, coordinate and direction types shared by
// the patrol simulator, together with the immutable Grid itself.
package grid

import "fmt"

// Cell is the content of a single grid square.
// The guard markers only describe the initial state of the walk; for movement
// purposes a guard cell behaves exactly like Empty.
type Cell uint8

const (
	// Empty is an open square ('.').
	Empty Cell = iota
	// Obstacle blocks the guard ('#').
	Obstacle
	// GuardUp marks the guard's start, facing up ('^').
	GuardUp
	// GuardRight marks the guard's start, facing right ('>').
	GuardRight
	// GuardDown marks the guard's start, facing down ('v').
	GuardDown
	// GuardLeft marks the guard's start, facing left ('<').
	GuardLeft
)

// glyphs maps every Cell to its canonical character.
var glyphs = [...]rune{
	Empty:      '.',
	Obstacle:   '#',
	GuardUp:    '^',
	GuardRight: '>',
	GuardDown:  'v',
	GuardLeft:  '<',
}

// cellOf is the inverse of glyphs.
var cellOf = map[rune]Cell{
	'.': Empty,
	'#': Obstacle,
	'^': GuardUp,
	'>': GuardRight,
	'v': GuardDown,
	'<': GuardLeft,
}

// Glyph returns the character used for c in puzzle text.
func (c Cell) Glyph() rune {
	if int(c) < len(glyphs) {
		return glyphs[c]
	}
	return '?'
}

// IsGuard reports whether c is one of the four guard-start markers.
func (c Cell) IsGuard() bool {
	return c >= GuardUp && c <= GuardLeft
}

// Heading returns the facing direction of a guard marker.
// The boolean is false for Empty and Obstacle.
func (c Cell) Heading() (Direction, bool) {
	switch c {
	case GuardUp:
		return Up, true
	case GuardRight:
		return Right, true
	case GuardDown:
		return Down, true
	case GuardLeft:
		return Left, true
	}
	return Direction{}, false
}

func (c Cell) String() string { return string(c.Glyph()) }

// Position is a zero-based (column, row) coordinate. (0,0) is the top-left
// cell. A Position produced by Step may lie outside the grid; check it with
// Grid.InBounds before use.
type Position struct {
	X, Y int
}

// Step returns the neighbouring position one unit along d.
func (p Position) Step(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is a unit vector along one axis. The Y axis grows downwards.
type Direction struct {
	DX, DY int
}

// The four headings, in clockwise order.
var (
	Up    = Direction{DX: 0, DY: -1}
	Right = Direction{DX: 1, DY: 0}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
)

// Directions lists the four headings clockwise starting from Up.
// Direction.Index returns a heading's position in this array.
var Directions = [4]Direction{Up, Right, Down, Left}

// TurnRight rotates d by 90° clockwise: (dx,dy) → (-dy,dx).
func (d Direction) TurnRight() Direction {
	return Direction{DX: -d.DY, DY: d.DX}
}

// TurnLeft rotates d by 90° counter-clockwise: (dx,dy) → (dy,-dx).
func (d Direction) TurnLeft() Direction {
	return Direction{DX: d.DY, DY: -d.DX}
}

// Index returns 0..3 for Up, Right, Down, Left and -1 for anything else.
func (d Direction) Index() int {
	for i, h := range Directions {
		if h == d {
			return i
		}
	}
	return -1
}

// Marker returns the guard Cell facing d.
func (d Direction) Marker() Cell {
	switch d {
	case Up:
		return GuardUp
	case Right:
		return GuardRight
	case Down:
		return GuardDown
	case Left:
		return GuardLeft
	}
	return Empty
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

// Guard is the complete state of the walker: where it stands and which way
// it faces. Two guards are equal iff both fields are equal, so Guard can be
// used directly as a map key.
type Guard struct {
	Pos Position
	Dir Direction
}

func (g Guard) String() string { return fmt.Sprintf("%s facing %s", g.Pos, g.Dir) }

// Grid is an immutable rectangular map of cells.
// Cells are stored row-major in a single flat slice, so every row has
// exactly Width cells by construction.
type Grid struct {
	Width, Height int
	cells         []Cell
}
