package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRollbackDepth_Schedule(t *testing.T) {
	cases := []struct {
		recent, historyLen, maxDepth, want int
	}{
		{0, 100, 32, 2},
		{1, 100, 32, 2},
		{2, 100, 32, 4},
		{3, 100, 32, 4},
		{4, 100, 32, 8},
		{6, 100, 32, 8},
		{7, 100, 32, 32},
		{100, 100, 32, 32},
		// capped at half of history length even if the schedule wants more
		{7, 10, 32, 5},
		// capped at maxDepth even when history is deep enough for more
		{100, 1000, 16, 16},
	}
	for _, tc := range cases {
		got := rollbackDepth(tc.recent, tc.historyLen, tc.maxDepth)
		require.Equal(t, tc.want, got, "recent=%d historyLen=%d maxDepth=%d", tc.recent, tc.historyLen, tc.maxDepth)
	}
}

func TestEngineBacktrack_RestoresFromSnapshotAndReplays(t *testing.T) {
	ts := uniformTileSet(2)
	cfg := newConfig()
	cfg.snapshotInterval = 1
	e := &engine{ts: ts, cfg: cfg, grid: NewGrid(2, 2, ts.Len())}

	for _, xy := range [][2]int{{0, 0}, {1, 0}, {0, 1}} {
		c := e.grid.At(xy[0], xy[1])
		e.commit(c, 0)
		require.True(t, e.propagate(orthogonalNeighbors(&e.grid, c)))
	}
	require.Len(t, e.history, 3)
	require.NotEmpty(t, e.snapshots)

	ok := e.backtrack()
	require.True(t, ok)
	require.LessOrEqual(t, len(e.history), 3)
}

func TestEngineBacktrack_FallsBackToFullReinitWithoutSnapshot(t *testing.T) {
	ts := uniformTileSet(2)
	cfg := newConfig()
	e := &engine{ts: ts, cfg: cfg, grid: NewGrid(2, 2, ts.Len())}

	c := e.grid.At(0, 0)
	e.commit(c, 0)
	require.True(t, e.propagate(orthogonalNeighbors(&e.grid, c)))
	require.Empty(t, e.snapshots)

	ok := e.backtrack()
	require.True(t, ok)
}
