package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is the parent of every structural parse failure.
	ErrMalformedInput = errors.New("grid: malformed input")
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrUnknownGlyph indicates a character outside the puzzle alphabet.
	ErrUnknownGlyph = fmt.Errorf("%w: unknown glyph", ErrMalformedInput)
	// ErrMultipleGuards indicates more than one guard marker.
	ErrMultipleGuards = fmt.Errorf("%w: more than one guard", ErrMalformedInput)
	// ErrMissingGuard indicates the grid has no guard marker at all.
	ErrMissingGuard = errors.New("grid: no guard found")
)

// GlyphError reports an unrecognised character and where it was found.
type GlyphError struct {
	Row, Col int
	Glyph    rune
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("grid: unknown glyph %q at row %d, column %d", e.Glyph, e.Row, e.Col)
}

// Unwrap lets errors.Is match ErrUnknownGlyph and ErrMalformedInput.
func (e *GlyphError) Unwrap() error { return ErrUnknownGlyph }

// RowError reports a row whose length differs from the first row.
type RowError struct {
	Row       int
	Got, Want int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("grid: row %d has %d cells; want %d", e.Row, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrNonRectangular and ErrMalformedInput.
func (e *RowError) Unwrap() error { return ErrNonRectangular }
