package solver

import (
	"sort"

	"github.com/wfcgo/overlap/tile"
)

// weightedCandidate pairs a tile id with its random-priority key, for the
// weighted-random ordering step of the collapse chooser.
type weightedCandidate struct {
	id  int
	key float64
}

// weightedOrder returns possible's members ordered by descending
// random()*w(t): a precomputed sort key computed once per candidate, then
// sorted, so the caller can walk candidates from most to least preferred.
func weightedOrder(possible tile.BitSet, ts tile.TileSet, cfg *config) []int {
	cands := make([]weightedCandidate, 0, possible.Count())
	possible.Iter(func(t int) bool {
		w := cfg.weightFunc(t, ts)
		cands = append(cands, weightedCandidate{id: t, key: cfg.rng.Float64() * w})
		return true
	})
	sort.Slice(cands, func(i, j int) bool { return cands[i].key > cands[j].key })
	out := make([]int, len(cands))
	for i, c := range cands {
		out[i] = c.id
	}
	return out
}

// passesLookAhead reports whether committing cell c to tile t would leave
// every uncollapsed orthogonal neighbour with at least one possibility
// remaining.
func passesLookAhead(g *Grid, c *Cell, t int, ts tile.TileSet) bool {
	for _, d := range tile.Directions() {
		nb := g.Neighbor(c.X, c.Y, d)
		if nb == nil || nb.Collapsed {
			continue
		}
		inter := nb.Possible.And(ts.Adjacency[t][d])
		if inter.IsEmpty() {
			return false
		}
	}
	return true
}

// collapse commits cell c to a single tile id chosen by weighted-random
// ordering with one-step look-ahead. A failed look-ahead on every
// candidate is not an error: the first (highest-priority) candidate is
// used anyway, and propagation is left to surface the contradiction.
func (e *engine) collapse(c *Cell) int {
	order := weightedOrder(c.Possible, e.ts, e.cfg)
	chosen := order[0]
	for _, t := range order {
		if passesLookAhead(&e.grid, c, t, e.ts) {
			chosen = t
			break
		}
	}
	e.commit(c, chosen)
	return chosen
}

// commit marks c collapsed to t and records the decision in history.
func (e *engine) commit(c *Cell, t int) {
	c.Collapsed = true
	c.TileID = t
	c.Possible = tile.NewBitSet(e.ts.Len())
	c.Possible.Set(t)
	e.recordHistory(historyEntry{X: c.X, Y: c.Y, TileID: t})
}
