// Package grid models the patrol map: a rectangular, immutable array of
// cells parsed from puzzle text.
//
// What:
//
//   - Grid stores Width×Height cells in one flat row-major buffer.
//   - Cells are Empty ('.'), Obstacle ('#') or a guard-start marker
//     ('^', '>', 'v', '<') that fixes the guard's initial heading.
//   - Position, Direction and Guard are small comparable values that work
//     as map keys.
//   - String gives a canonical text form; Annotate overlays a set of cells.
//
// Coordinates:
//
//   - X is the column, Y is the row, (0,0) is the top-left cell.
//   - Y grows downwards, so Up is (0,-1).
//   - Direction.TurnRight maps (dx,dy) → (-dy,dx).
//
// Errors:
//
//   - ErrEmptyGrid: no rows, or the first row is empty.
//   - ErrNonRectangular (*RowError): rows of differing lengths.
//   - ErrUnknownGlyph (*GlyphError): a character outside ".#^>v<".
//   - ErrMultipleGuards: more than one guard marker.
//   - ErrMissingGuard: Guard called on a grid without a marker.
//
// The first four all match ErrMalformedInput via errors.Is.
package grid
