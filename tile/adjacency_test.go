package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wfcgo/overlap/tile"
)

// Adjacency symmetry (spec's invariant 2): B in adj[A][dir] iff A in
// adj[B][opposite(dir)], checked exhaustively over a non-trivial tile set.
func TestBuildAdjacency_Symmetry(t *testing.T) {
	t.Parallel()

	sample := rasterOf(4, 4, func(x, y int) tile.Pixel {
		if x == 0 && y == 0 {
			return red
		}
		return blue
	})
	ts, err := tile.ExtractTiles(sample, 3)
	require.NoError(t, err)
	ts = tile.BuildAdjacency(ts)

	for a := 0; a < ts.Len(); a++ {
		for _, d := range tile.Directions() {
			for _, b := range ts.Adjacency[a][d].Slice() {
				require.True(t, ts.Adjacency[b][d.Opposite()].Has(a),
					"adjacency symmetry violated for a=%d b=%d dir=%v", a, b, d)
			}
		}
	}
}

// A uniform sample's single tile must be self-adjacent in all four
// directions (A==B is always tested, never skipped).
func TestBuildAdjacency_UniformSampleSelfLoops(t *testing.T) {
	t.Parallel()

	sample := rasterOf(3, 3, func(x, y int) tile.Pixel { return blue })
	ts, err := tile.ExtractTiles(sample, 2)
	require.NoError(t, err)
	ts = tile.BuildAdjacency(ts)

	require.Equal(t, 1, ts.Len())
	for _, d := range tile.Directions() {
		require.True(t, ts.Adjacency[0][d].Has(0))
		require.Equal(t, 1, ts.Adjacency[0][d].Count())
	}
}

// Scenario 1: a 2x2 red/green checkerboard at N=2 yields two tiles, each
// with exactly one legal neighbour in each direction (its toroidal shift,
// which is the other tile).
func TestBuildAdjacency_Checkerboard2x2(t *testing.T) {
	t.Parallel()

	green := tile.Pixel{G: 255, A: 255}
	pixels := [2][2]tile.Pixel{{red, green}, {green, red}}
	sample := rasterOf(2, 2, func(x, y int) tile.Pixel { return pixels[y][x] })

	ts, err := tile.ExtractTiles(sample, 2)
	require.NoError(t, err)
	ts = tile.BuildAdjacency(ts)
	require.Equal(t, 2, ts.Len())

	for a := 0; a < ts.Len(); a++ {
		for _, d := range tile.Directions() {
			require.Equal(t, 1, ts.Adjacency[a][d].Count(),
				"tile %d direction %v should have exactly one legal neighbour", a, d)
		}
	}
}

func TestBuildAdjacency_N1AllToAll(t *testing.T) {
	t.Parallel()

	pixels := [2][2]tile.Pixel{{red, blue}, {blue, red}}
	sample := rasterOf(2, 2, func(x, y int) tile.Pixel { return pixels[y][x] })

	ts, err := tile.ExtractTiles(sample, 1)
	require.NoError(t, err)
	ts = tile.BuildAdjacency(ts)

	for a := 0; a < ts.Len(); a++ {
		for _, d := range tile.Directions() {
			require.Equal(t, ts.Len(), ts.Adjacency[a][d].Count(),
				"N=1 empty overlap strips should make every pair mutually compatible")
		}
	}
}
