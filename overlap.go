package overlap

import (
	"image"

	"github.com/wfcgo/overlap/solver"
	"github.com/wfcgo/overlap/tile"
)

// Sample is anything the pattern extractor can read pixels from.
type Sample = tile.Sample

// Pixel is a single RGBA sample value.
type Pixel = tile.Pixel

// TileSet is the immutable output of ExtractTiles: every distinct NxN
// tile found in a sample, its frequency, and its adjacency rules.
type TileSet = tile.TileSet

// Solved is the output of a successful Synthesize call: a grid of tile
// ids, one per output cell.
type Solved = solver.Solved

// Option customizes a Synthesize call. See the solver package for the
// full set (WithWeightFunc, WithObserver, WithCancelFunc, and so on).
type Option = solver.Option

// Observer receives progress notifications during Synthesize.
type Observer = solver.Observer

// FromImage adapts a standard library image.Image into a Sample, so any
// decoded PNG/GIF/JPEG can be fed directly to ExtractTiles.
func FromImage(img image.Image) Sample {
	return tile.FromImage(img)
}

// ExtractTiles scans sample for every distinct NxN window (under
// toroidal wrap) and derives their adjacency rules. This composes
// tile.ExtractTiles and tile.BuildAdjacency, since every caller of one
// needs the other.
func ExtractTiles(sample Sample, n int) (TileSet, error) {
	ts, err := tile.ExtractTiles(sample, n)
	if err != nil {
		return TileSet{}, err
	}
	return tile.BuildAdjacency(ts), nil
}

// Synthesize runs the solver's Attempt Controller to produce a
// width x height grid consistent with ts, seeded for reproducibility:
// the same (ts, width, height, seed) always produces the same Solved.
func Synthesize(ts TileSet, width, height int, seed int64, opts ...Option) (Solved, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, solver.WithSeed(seed))
	all = append(all, opts...)
	return solver.Run(ts, width, height, all...)
}

// Render blits each cell's tile into an output raster, tile windows
// overwriting each other at step 1 as later writes land on top of
// earlier ones (no blending): the same convention as the overlapping
// model's pattern extraction itself.
func Render(solved Solved, ts TileSet) *tile.Raster {
	out := tile.NewRaster(solved.Width+ts.N-1, solved.Height+ts.N-1)
	for y := 0; y < solved.Height; y++ {
		for x := 0; x < solved.Width; x++ {
			p := ts.Patterns[solved.At(x, y)]
			for dy := 0; dy < ts.N; dy++ {
				for dx := 0; dx < ts.N; dx++ {
					out.Set(x+dx, y+dy, p.At(dx, dy))
				}
			}
		}
	}
	return out
}
