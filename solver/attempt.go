package solver

import (
	"math"

	"github.com/wfcgo/overlap/tile"
)

// engine holds all mutable state for one synthesis attempt: the grid
// being collapsed, its decision history and snapshots, and the
// contradiction-rate counter that drives the adaptive rollback schedule.
// Like tsp/bb.go's bbEngine, this is a single struct with explicit fields
// rather than a tangle of closures, so the search is easy to reason about
// and to unit test piece by piece.
type engine struct {
	ts  tile.TileSet
	cfg *config

	grid      Grid
	history   []historyEntry
	snapshots []snapshot

	recentContradictions int
	lastContradiction    Coord
	hadContradiction     bool
}

// newEngine sets up fresh per-attempt state: a blank grid, empty history
// and snapshots, and a zeroed contradiction counter.
func newEngine(ts tile.TileSet, width, height int, cfg *config) *engine {
	return &engine{
		ts:   ts,
		cfg:  cfg,
		grid: NewGrid(width, height, ts.Len()),
	}
}

// Run is the outer retry loop: it seeds, collapses, propagates, and
// backtracks until the grid is solved or every attempt's budget is
// exhausted.
func Run(ts tile.TileSet, width, height int, opts ...Option) (Solved, error) {
	if width < 3 || width > 50 || height < 3 || height > 50 {
		return Solved{}, ErrInvalidGridSize
	}
	if ts.Len() == 0 {
		return Solved{}, ErrEmptyTileSet
	}

	cfg := newConfig()
	for _, o := range opts {
		o(cfg)
	}

	cells := width * height
	maxAttempts := cfg.maxAttemptsOverride
	if maxAttempts == 0 {
		maxAttempts = int(math.Ceil(4 + float64(cells)/15))
		if maxAttempts > 12 {
			maxAttempts = 12
		}
	}
	maxBacktracks := cells * 10
	if maxBacktracks > 500 {
		maxBacktracks = 500
	}
	maxIterations := 3 * cells

	var lastErr engine
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		cfg.observer.attempt(attempt, maxAttempts)
		if cfg.cancelled() {
			return Solved{}, ErrCancelled
		}

		e := newEngine(ts, width, height, cfg)
		if !e.seed(width, height) {
			lastErr = *e
			continue
		}

		solved, ok, cancelled := e.mainLoop(maxIterations, maxBacktracks, cells)
		if cancelled {
			return Solved{}, ErrCancelled
		}
		if ok {
			return solved, nil
		}
		lastErr = *e
	}

	return Solved{}, &GenerationError{
		Attempts:         maxAttempts,
		GridWidth:        width,
		GridHeight:       height,
		TileCount:        ts.Len(),
		LastContra:       lastErr.lastContradiction,
		HadContradiction: lastErr.hadContradiction,
	}
}

// mainLoop runs the collapse/propagate/backtrack cycle for one attempt.
func (e *engine) mainLoop(maxIterations, maxBacktracks, cells int) (solved Solved, ok bool, cancelled bool) {
	iterations := 0
	backtracks := 0

	for {
		if e.cfg.cancelled() {
			return Solved{}, false, true
		}

		c := selectCell(&e.grid, e.ts, e.cfg)
		if c == nil {
			if e.grid.AllCollapsed() {
				return toSolved(&e.grid), true, false
			}
			// Every uncollapsed cell has an empty Possible set (its
			// entropy is +Inf), so selectCell had nothing finite to pick.
			// That is a contradiction in its own right, not a solution.
			if !e.recoverFromContradiction(&backtracks, maxBacktracks) {
				return Solved{}, false, false
			}
			continue
		}
		if iterations >= maxIterations {
			return Solved{}, false, false
		}
		iterations++

		e.collapse(c)
		seeds := orthogonalNeighbors(&e.grid, c)

		if e.propagate(seeds) {
			e.cfg.observer.progress(len(e.history), cells)
			if e.recentContradictions > 0 {
				e.recentContradictions--
			}
			continue
		}

		if !e.recoverFromContradiction(&backtracks, maxBacktracks) {
			return Solved{}, false, false
		}
	}
}

// recoverFromContradiction charges one contradiction against the attempt's
// backtrack budget and keeps retrying e.backtrack() until it succeeds. A
// failed backtrack means replay itself hit a fresh contradiction further
// back in the grid; that is charged against the same budget and retried
// rather than silently left in place, so a stuck attempt is bounded by
// maxBacktracks instead of running forever or escaping as a false success.
func (e *engine) recoverFromContradiction(backtracks *int, maxBacktracks int) bool {
	for {
		e.recentContradictions++
		*backtracks++
		if *backtracks > maxBacktracks {
			return false
		}
		if e.backtrack() {
			return true
		}
	}
}

// seed force-collapses a random cell, then (scaled by grid size) the four
// corners, scattered extra seeds, or a coarse grid of seeds. Any seed
// contradiction ends the attempt immediately, not the whole request.
func (e *engine) seed(width, height int) bool {
	cells := width * height

	rx, ry := e.cfg.rng.Intn(width), e.cfg.rng.Intn(height)
	if !e.forceSeed(rx, ry) {
		return false
	}

	if cells > 50 {
		corners := [4][2]int{{0, 0}, {width - 1, 0}, {0, height - 1}, {width - 1, height - 1}}
		for _, p := range corners {
			if !e.forceSeed(p[0], p[1]) {
				return false
			}
		}
	}

	if cells >= 100 && cells < 400 {
		extra := int(math.Sqrt(float64(cells)) / 2)
		for i := 0; i < extra; i++ {
			x, y := e.cfg.rng.Intn(width), e.cfg.rng.Intn(height)
			if !e.forceSeed(x, y) {
				return false
			}
		}
	}

	if cells >= 400 {
		spacing := int(math.Sqrt(float64(cells)) / 5)
		if spacing < 1 {
			spacing = 1
		}
		for y := 0; y < height; y += spacing {
			for x := 0; x < width; x += spacing {
				if !e.forceSeed(x, y) {
					return false
				}
			}
		}
	}

	return true
}

// forceSeed collapses (x,y) to a uniformly random tile id (deliberately
// unweighted) and propagates. It is a no-op returning true if the cell is
// already collapsed, since seeding strategies (corners, scatter, coarse
// grid) may legitimately overlap.
func (e *engine) forceSeed(x, y int) bool {
	c := e.grid.At(x, y)
	if c.Collapsed {
		return true
	}
	t := e.cfg.rng.Intn(e.ts.Len())
	e.commit(c, t)
	return e.propagate(orthogonalNeighbors(&e.grid, c))
}
