package grid

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads puzzle text, one grid row per line.
// A single trailing newline does not start a new row and a trailing '\r' is
// dropped from every line, so files with CRLF endings parse the same way.
//
// Errors (all match ErrMalformedInput):
//   - ErrEmptyGrid when there are no rows or the first row is empty;
//   - *RowError (ErrNonRectangular) when a row length differs from the first;
//   - *GlyphError (ErrUnknownGlyph) for a character outside ".#^>v<";
//   - ErrMultipleGuards when more than one guard marker is present.
//
// Complexity: O(W×H).
func Parse(text string) (*Grid, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]Cell, 0, len(line))
		for x, r := range []rune(line) {
			c, ok := cellOf[r]
			if !ok {
				return nil, &GlyphError{Row: y, Col: x, Glyph: r}
			}
			row = append(row, c)
		}
		rows[y] = row
	}

	return New(rows)
}

// ParseReader reads all of r and parses it with Parse.
func ParseReader(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	return Parse(string(data))
}

// Load parses the file at path.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid: load %s: %w", path, err)
	}
	g, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
