package solver

// rollbackDepth implements the adaptive rollback schedule, keyed on
// recentContradictions, capped at maxDepth or half the current history
// length, whichever is smaller:
//
//	0-1 recent: 2 steps
//	2-3:        4 steps
//	4-6:        8 steps
//	>6:         up to maxDepth
//
// It is a pure function so the thresholds are independently testable.
func rollbackDepth(recentContradictions, historyLen, maxDepth int) int {
	var steps int
	switch {
	case recentContradictions <= 1:
		steps = 2
	case recentContradictions <= 3:
		steps = 4
	case recentContradictions <= 6:
		steps = 8
	default:
		steps = maxDepth
	}
	if half := historyLen / 2; steps > half {
		steps = half
	}
	if steps > maxDepth {
		steps = maxDepth
	}
	if steps < 0 {
		steps = 0
	}
	return steps
}

// backtrack rewinds the engine's grid and history by an adaptively-chosen
// number of steps, restoring the nearest eligible snapshot and replaying
// any decisions past it. It returns false if replay itself
// produces a new contradiction, in which case the caller should treat
// this as a fresh contradiction toward the attempt's backtrack budget
// rather than assume success.
func (e *engine) backtrack() bool {
	steps := rollbackDepth(e.recentContradictions, len(e.history), e.cfg.maxBacktrackDepth)
	newLen := len(e.history) - steps
	if newLen < 0 {
		newLen = 0
	}
	e.history = e.history[:newLen]
	e.discardSnapshotsAfter(newLen)

	if snap, ok := e.latestSnapshotUpTo(newLen); ok {
		e.grid = snap.grid.Clone()
		return e.replayFrom(snap.historyLen)
	}

	e.grid = NewGrid(e.grid.Width, e.grid.Height, e.ts.Len())
	return e.replayFrom(0)
}
