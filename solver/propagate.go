package solver

import "github.com/wfcgo/overlap/tile"

// propagate runs a worklist arc-consistency pass seeded with seeds. Only
// collapsed neighbours constrain an uncollapsed cell: this is AC-2-style
// with respect to committed decisions, not full AC-3 over every
// superposition — a deliberate tradeoff of contradiction rate for
// per-step cost.
//
// It returns false, and records the contradiction's coordinates, the
// moment any cell's possibility set becomes empty.
func (e *engine) propagate(seeds []*Cell) bool {
	queued := make([]bool, len(e.grid.Cells))
	stack := make([]*Cell, 0, len(seeds))
	for _, c := range seeds {
		if c.Collapsed {
			continue
		}
		idx := c.Y*e.grid.Width + c.X
		if !queued[idx] {
			queued[idx] = true
			stack = append(stack, c)
		}
	}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		idx := c.Y*e.grid.Width + c.X
		queued[idx] = false

		if c.Collapsed {
			continue
		}

		narrowed := c.Possible.Clone()
		for _, d := range tile.Directions() {
			nb := e.grid.Neighbor(c.X, c.Y, d)
			if nb == nil || !nb.Collapsed {
				continue
			}
			narrowed.AndInto(e.ts.Adjacency[nb.TileID][d.Opposite()])
		}

		if narrowed.Count() == c.Possible.Count() {
			continue
		}

		c.Possible = narrowed
		if c.Possible.IsEmpty() {
			e.lastContradiction = Coord{X: c.X, Y: c.Y}
			e.hadContradiction = true
			return false
		}

		for _, d := range tile.Directions() {
			nb := e.grid.Neighbor(c.X, c.Y, d)
			if nb == nil || nb.Collapsed {
				continue
			}
			nidx := nb.Y*e.grid.Width + nb.X
			if !queued[nidx] {
				queued[nidx] = true
				stack = append(stack, nb)
			}
		}
	}

	return true
}
