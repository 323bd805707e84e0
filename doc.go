// Package patrol is the root of a small toolkit for the guard-patrol
// puzzle: a guard walks a grid, turns right at every obstacle and stops
// when it steps off the map.
//
// What it answers:
//
//   - How many distinct cells does the guard visit before leaving?
//   - How many single new obstacles would trap it in a loop instead?
//
// Under the hood, everything is organized under a few subpackages:
//
//	grid/              immutable map, positions, headings, parsing & rendering
//	patrol/            walk simulation, loop detection, parallel obstacle search
//	internal/config/   YAML run configuration for the command
//	cmd/patrol/        command line front end
//
// Quick ASCII example:
//
//	..#.
//	..^.
//	....
//
// The guard at (2,1) faces up and is blocked by '#'. It turns right, steps
// to (3,1) and leaves through the right edge.
//
//	go run ./cmd/patrol patrol/testdata/example.txt
package patrol
