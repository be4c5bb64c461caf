// Package overlap implements overlapping-model Wave Function Collapse
// texture synthesis: extracting NxN tiles from a sample image, deriving
// their adjacency rules, and solving a new grid that is everywhere
// locally consistent with the sample.
//
// The work is organized under two subpackages:
//
//	tile/   - Pixel, Pattern, TileSet, the Pattern Extractor and Adjacency Oracle
//	solver/ - Grid, Cell, entropy selection, collapse, propagation, backtracking
//
// This package is a thin facade over both:
//
//	ts, err := overlap.ExtractTiles(overlap.FromImage(sample), 3)
//	solved, err := overlap.Synthesize(ts, 20, 20, 42)
//	out := overlap.Render(solved, ts)
//
// See tile.ExtractTiles, solver.Run, and Render for the pieces wired
// together here.
package overlap
