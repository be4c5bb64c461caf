package solver

import "github.com/wfcgo/overlap/tile"

// Coord is a grid coordinate.
type Coord struct{ X, Y int }

// Cell is one slot in the output grid. Collapsed implies Possible has
// exactly one member, TileID. A cell with Collapsed false and an empty
// Possible is a contradiction.
type Cell struct {
	X, Y      int
	Possible  tile.BitSet
	Collapsed bool
	TileID    int
}

// Grid is a width*height array of Cells.
type Grid struct {
	Width, Height int
	Cells         []Cell
}

// NewGrid allocates a grid of the given dimensions with every cell in full
// superposition over numTiles tile ids.
func NewGrid(width, height, numTiles int) Grid {
	g := Grid{Width: width, Height: height, Cells: make([]Cell, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Cells[y*width+x] = Cell{X: x, Y: y, Possible: tile.FullBitSet(numTiles)}
		}
	}
	return g
}

// At returns a pointer to the cell at (x, y).
func (g *Grid) At(x, y int) *Cell {
	return &g.Cells[y*g.Width+x]
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Neighbor returns the cell adjacent to (x, y) in direction d, or nil if
// that neighbour would fall outside the grid: output has hard borders,
// unlike the toroidal sample the tile set was extracted from.
func (g *Grid) Neighbor(x, y int, d tile.Direction) *Cell {
	nx, ny := x, y
	switch d {
	case tile.Up:
		ny--
	case tile.Down:
		ny++
	case tile.Left:
		nx--
	case tile.Right:
		nx++
	}
	if !g.InBounds(nx, ny) {
		return nil
	}
	return g.At(nx, ny)
}

// Clone deep-copies the grid, for use as a snapshot.
func (g *Grid) Clone() Grid {
	out := Grid{Width: g.Width, Height: g.Height, Cells: make([]Cell, len(g.Cells))}
	for i, c := range g.Cells {
		c.Possible = c.Possible.Clone()
		out.Cells[i] = c
	}
	return out
}

// AllCollapsed reports whether every cell is collapsed.
func (g *Grid) AllCollapsed() bool {
	for i := range g.Cells {
		if !g.Cells[i].Collapsed {
			return false
		}
	}
	return true
}

// Solved is the output of a successful synthesis: a width*height array of
// tile ids, row-major.
type Solved struct {
	Width, Height int
	TileIDs       []int
}

// At returns the tile id placed at (x, y).
func (s Solved) At(x, y int) int {
	return s.TileIDs[y*s.Width+x]
}

// toSolved converts a fully-collapsed Grid into a Solved result.
func toSolved(g *Grid) Solved {
	out := Solved{Width: g.Width, Height: g.Height, TileIDs: make([]int, len(g.Cells))}
	for i, c := range g.Cells {
		out.TileIDs[i] = c.TileID
	}
	return out
}
