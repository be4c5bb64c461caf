package solver

// historyEntry is one deliberate collapse decision. Propagation-induced
// narrowings are never recorded here; they are reconstructed by replay
// from the decisions that caused them.
type historyEntry struct {
	X, Y, TileID int
}

// snapshot is a full grid copy plus the history length at capture time,
// used as a fast rewind point.
type snapshot struct {
	grid       Grid
	historyLen int
}

// recordHistory appends a decision and, if the new history length is a
// multiple of the configured snapshot interval, captures a snapshot.
func (e *engine) recordHistory(h historyEntry) {
	e.history = append(e.history, h)
	if len(e.history)%e.cfg.snapshotInterval == 0 {
		e.captureSnapshot()
	}
}

// captureSnapshot appends a new snapshot, evicting the oldest (FIFO) once
// more than maxSnapshots are retained.
func (e *engine) captureSnapshot() {
	e.snapshots = append(e.snapshots, snapshot{grid: e.grid.Clone(), historyLen: len(e.history)})
	if len(e.snapshots) > e.cfg.maxSnapshots {
		e.snapshots = e.snapshots[1:]
	}
	e.cfg.observer.snapshot()
}

// latestSnapshotUpTo returns the most recent retained snapshot whose
// captured history length is <= historyLen, or (snapshot{}, false) if
// none qualifies (either none were captured yet, or all retained ones
// were taken after the point we're rewinding to).
func (e *engine) latestSnapshotUpTo(historyLen int) (snapshot, bool) {
	for i := len(e.snapshots) - 1; i >= 0; i-- {
		if e.snapshots[i].historyLen <= historyLen {
			return e.snapshots[i], true
		}
	}
	return snapshot{}, false
}

// discardSnapshotsAfter drops snapshots captured beyond historyLen, since
// they describe a state that backtracking has now unwound past.
func (e *engine) discardSnapshotsAfter(historyLen int) {
	kept := e.snapshots[:0]
	for _, s := range e.snapshots {
		if s.historyLen <= historyLen {
			kept = append(kept, s)
		}
	}
	e.snapshots = kept
}

// replayFrom forces every history entry from index start onward back onto
// the (already-restored-up-to-start) grid, running propagation after each
// one, exactly as the original collapse did. It stops and returns false if
// any replayed decision produces a contradiction — in principle
// impossible, since these are the same decisions that soft-resolved the
// first time, but a prior decision now further back may have changed the
// neighbourhood, so this is checked rather than assumed.
func (e *engine) replayFrom(start int) bool {
	for i := start; i < len(e.history); i++ {
		h := e.history[i]
		c := e.grid.At(h.X, h.Y)
		c.Collapsed = true
		c.TileID = h.TileID
		c.Possible = singleton(e.ts.Len(), h.TileID)
		seeds := orthogonalNeighbors(&e.grid, c)
		if !e.propagate(seeds) {
			return false
		}
	}
	return true
}
