package solver

import (
	"math"

	"github.com/wfcgo/overlap/tile"
)

// weightSum computes S = sum(w(t)) and the weighted-log term
// sum(w(t)*log(w(t))) over a cell's possibility set, for use in the
// entropy formula.
func weightSum(possible tile.BitSet, ts tile.TileSet, wf WeightFunc) (sum, weightedLog float64) {
	possible.Iter(func(t int) bool {
		w := wf(t, ts)
		sum += w
		if w > 0 {
			weightedLog += w * math.Log(w)
		}
		return true
	})
	return sum, weightedLog
}

// collapsedNeighbors counts how many of (x,y)'s orthogonal neighbours are
// already collapsed, for the degree tie-breaker in the entropy formula.
func collapsedNeighbors(g *Grid, x, y int) int {
	count := 0
	for _, d := range tile.Directions() {
		if n := g.Neighbor(x, y, d); n != nil && n.Collapsed {
			count++
		}
	}
	return count
}

// cellEntropy computes the weighted Shannon entropy of a single
// uncollapsed cell:
//
//	H = log(S) - (sum w(t)*log(w(t))) / S
//	H += degreeBonus * (# collapsed orthogonal neighbours)
//	H += jitter
func cellEntropy(g *Grid, c *Cell, ts tile.TileSet, cfg *config) float64 {
	sum, weightedLog := weightSum(c.Possible, ts, cfg.weightFunc)
	if sum <= 0 {
		// An empty possibility set (a contradiction) lands here, as does
		// the rare set whose remaining tiles all have zero weight; neither
		// may divide by zero, and neither draws from the RNG.
		return math.Inf(1)
	}
	h := math.Log(sum) - weightedLog/sum
	h += cfg.degreeBonus * float64(collapsedNeighbors(g, c.X, c.Y))
	h += cfg.rng.Float64() * 0.001
	return h
}

// SelectCell returns a pointer to the uncollapsed cell with minimum
// weighted entropy, or nil if no uncollapsed cell has a finite entropy:
// either every cell is already collapsed, or every remaining one has an
// empty possibility set. Ties are broken by the entropy formula's own RNG
// jitter term, drawn once per uncollapsed cell with a positive weight sum,
// so the draws stay deterministic for a given seed.
func SelectCell(g *Grid, ts tile.TileSet, opts ...Option) *Cell {
	cfg := newConfig()
	for _, o := range opts {
		o(cfg)
	}
	return selectCell(g, ts, cfg)
}

func selectCell(g *Grid, ts tile.TileSet, cfg *config) *Cell {
	var best *Cell
	bestH := math.Inf(1)
	for i := range g.Cells {
		c := &g.Cells[i]
		if c.Collapsed {
			continue
		}
		h := cellEntropy(g, c, ts, cfg)
		if h < bestH {
			bestH = h
			best = c
		}
	}
	return best
}
