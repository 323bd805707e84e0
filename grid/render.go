package grid

// String returns the canonical text form of the grid: one line per row,
// each terminated by '\n'. Parse(g.String()) reproduces g exactly.
func (g *Grid) String() string {
	return g.render(nil, 0)
}

// Annotate renders the grid like String but overwrites every cell listed in
// marks with glyph. Positions outside the grid are ignored.
// Annotate(route, 'X') draws the guard's patrol over the map.
func (g *Grid) Annotate(marks []Position, glyph rune) string {
	return g.render(marks, glyph)
}

func (g *Grid) render(marks []Position, glyph rune) string {
	out := make([]rune, 0, (g.Width+1)*g.Height)
	for _, c := range g.cells {
		out = append(out, c.Glyph())
		if len(out)%(g.Width+1) == g.Width {
			out = append(out, '\n')
		}
	}
	for _, p := range marks {
		if g.InBounds(p) {
			// each row occupies Width+1 runes including its newline
			out[p.Y*(g.Width+1)+p.X] = glyph
		}
	}

	return string(out)
}
