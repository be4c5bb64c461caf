package solver

import "github.com/wfcgo/overlap/tile"

// singleton returns a BitSet over universe n containing only id.
func singleton(n, id int) tile.BitSet {
	b := tile.NewBitSet(n)
	b.Set(id)
	return b
}

// orthogonalNeighbors returns the existing (in-bounds) neighbours of c, in
// a fixed direction order, for use as a propagation worklist seed.
func orthogonalNeighbors(g *Grid, c *Cell) []*Cell {
	out := make([]*Cell, 0, 4)
	for _, d := range tile.Directions() {
		if nb := g.Neighbor(c.X, c.Y, d); nb != nil {
			out = append(out, nb)
		}
	}
	return out
}
