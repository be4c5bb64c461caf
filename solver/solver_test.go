package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wfcgo/overlap/solver"
	"github.com/wfcgo/overlap/tile"
)

func checkerboardTileSet(t *testing.T) tile.TileSet {
	t.Helper()
	red := tile.Pixel{R: 255, A: 255}
	green := tile.Pixel{G: 255, A: 255}
	pixels := [2][2]tile.Pixel{{red, green}, {green, red}}
	r := tile.NewRaster(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r.Set(x, y, pixels[y][x])
		}
	}
	ts, err := tile.ExtractTiles(r, 2)
	require.NoError(t, err)
	return tile.BuildAdjacency(ts)
}

func TestRun_RejectsOutOfRangeGrid(t *testing.T) {
	ts := checkerboardTileSet(t)
	_, err := solver.Run(ts, 2, 10, solver.WithSeed(1))
	require.ErrorIs(t, err, solver.ErrInvalidGridSize)

	_, err = solver.Run(ts, 10, 51, solver.WithSeed(1))
	require.ErrorIs(t, err, solver.ErrInvalidGridSize)
}

func TestRun_RejectsEmptyTileSet(t *testing.T) {
	_, err := solver.Run(tile.TileSet{}, 5, 5, solver.WithSeed(1))
	require.ErrorIs(t, err, solver.ErrEmptyTileSet)
}

// Scenario 1: a checkerboard tile set solves a small grid cleanly.
func TestRun_ChekerboardSolvesSmallGrid(t *testing.T) {
	ts := checkerboardTileSet(t)
	solved, err := solver.Run(ts, 4, 4, solver.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 4, solved.Width)
	require.Equal(t, 4, solved.Height)

	for y := 0; y < solved.Height; y++ {
		for x := 0; x < solved.Width; x++ {
			require.GreaterOrEqual(t, solved.At(x, y), 0)
			require.Less(t, solved.At(x, y), ts.Len())
		}
	}

	requireLocallyConsistent(t, solved, ts)
}

// requireLocallyConsistent walks every pair of orthogonally adjacent
// collapsed cells in solved and asserts that each is a legal neighbour of
// the other per ts.Adjacency, in both directions. A solver that returns
// early on a stuck, uncollapsed cell (rather than gating success on
// AllCollapsed) would either fail the bounds check above or fail this one.
func requireLocallyConsistent(t *testing.T, solved solver.Solved, ts tile.TileSet) {
	t.Helper()
	for y := 0; y < solved.Height; y++ {
		for x := 0; x < solved.Width; x++ {
			a := solved.At(x, y)
			if x+1 < solved.Width {
				b := solved.At(x+1, y)
				require.True(t, ts.Adjacency[a][tile.Right].Has(b),
					"tile %d at (%d,%d) is not a legal left neighbour of tile %d at (%d,%d)", a, x, y, b, x+1, y)
				require.True(t, ts.Adjacency[b][tile.Left].Has(a),
					"tile %d at (%d,%d) is not a legal right neighbour of tile %d at (%d,%d)", b, x+1, y, a, x, y)
			}
			if y+1 < solved.Height {
				b := solved.At(x, y+1)
				require.True(t, ts.Adjacency[a][tile.Down].Has(b),
					"tile %d at (%d,%d) is not a legal up neighbour of tile %d at (%d,%d)", a, x, y, b, x, y+1)
				require.True(t, ts.Adjacency[b][tile.Up].Has(a),
					"tile %d at (%d,%d) is not a legal down neighbour of tile %d at (%d,%d)", b, x, y+1, a, x, y)
			}
		}
	}
}

// Scenario 2: a uniform sample yields a uniform output for every cell.
func TestRun_UniformTileSetYieldsUniformOutput(t *testing.T) {
	blue := tile.Pixel{B: 255, A: 255}
	r := tile.NewRaster(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			r.Set(x, y, blue)
		}
	}
	ts, err := tile.ExtractTiles(r, 2)
	require.NoError(t, err)
	ts = tile.BuildAdjacency(ts)
	require.Equal(t, 1, ts.Len())

	solved, err := solver.Run(ts, 10, 10, solver.WithSeed(3))
	require.NoError(t, err)
	for _, id := range solved.TileIDs {
		require.Equal(t, 0, id)
	}
}

// Scenario 4 (adversarial): two tiles where adj[A][RIGHT]={B} and
// adj[B][RIGHT]={} must exhaust their attempt/backtrack budget and report
// GenerationFailed rather than loop forever.
func TestRun_AdversarialTileSetFailsCleanly(t *testing.T) {
	ts := tile.TileSet{
		N:         1,
		Patterns:  []tile.Pattern{{ID: 0, N: 1}, {ID: 1, N: 1}},
		Frequency: []int64{1, 1},
	}
	ts.Adjacency = make([][4]tile.BitSet, 2)
	for i := range ts.Adjacency {
		for d := 0; d < 4; d++ {
			ts.Adjacency[i][d] = tile.NewBitSet(2)
		}
	}
	ts.Adjacency[0][tile.Right].Set(1)
	ts.Adjacency[1][tile.Left].Set(0)
	ts.Adjacency[0][tile.Up] = tile.FullBitSet(2)
	ts.Adjacency[0][tile.Down] = tile.FullBitSet(2)
	ts.Adjacency[1][tile.Up] = tile.FullBitSet(2)
	ts.Adjacency[1][tile.Down] = tile.FullBitSet(2)
	ts.ConnectivityWeight = []int{2, 2}

	_, err := solver.Run(ts, 3, 3, solver.WithSeed(1))
	require.Error(t, err)
	require.ErrorIs(t, err, solver.ErrGenerationFailed)

	var genErr *solver.GenerationError
	require.ErrorAs(t, err, &genErr)
}

// Scenario 5: the same seed on the same tile set yields byte-identical
// output across two independent runs.
func TestRun_ReproducibleForFixedSeed(t *testing.T) {
	ts := checkerboardTileSet(t)
	a, errA := solver.Run(ts, 6, 6, solver.WithSeed(42))
	require.NoError(t, errA)
	b, errB := solver.Run(ts, 6, 6, solver.WithSeed(42))
	require.NoError(t, errB)
	require.Equal(t, a.TileIDs, b.TileIDs)

	requireLocallyConsistent(t, a, ts)
}

// Scenario 6: cancellation is observed at the next yield boundary.
func TestRun_Cancellation(t *testing.T) {
	ts := checkerboardTileSet(t)
	calls := 0
	cancel := func() bool {
		calls++
		return calls > 2
	}
	_, err := solver.Run(ts, 40, 40, solver.WithSeed(1), solver.WithCancelFunc(cancel))
	require.ErrorIs(t, err, solver.ErrCancelled)
}

func TestRun_ObserverFiresWithoutAlteringOutcome(t *testing.T) {
	ts := checkerboardTileSet(t)
	var attempts int
	var progressCalls int
	obs := &solver.Observer{
		OnAttempt:  func(attempt, max int) { attempts++ },
		OnProgress: func(collapsed, total int) { progressCalls++ },
	}

	solved, err := solver.Run(ts, 4, 4, solver.WithSeed(7), solver.WithObserver(obs))
	require.NoError(t, err)
	require.GreaterOrEqual(t, attempts, 1)
	require.Greater(t, progressCalls, 0)
	require.Equal(t, 16, len(solved.TileIDs))

	plain, err := solver.Run(ts, 4, 4, solver.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, plain.TileIDs, solved.TileIDs)
}
