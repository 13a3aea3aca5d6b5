package cascade

import "cascade/internal/core"

// mooreOffsets lists the eight (dr, dc) pairs around a cell.
var mooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NeighborCount returns how many of the 8-connected neighbours of (row, col)
// are present. Neighbours outside the grid do not count; there is no wrapping.
func NeighborCount(g *core.ByteGrid, row, col int) int {
	cells := g.Cells()
	n := 0
	for _, d := range mooreOffsets {
		r, c := row+d[0], col+d[1]
		if !g.InBounds(r, c) {
			continue
		}
		if cells[r*g.Cols+c] == StatePresent {
			n++
		}
	}
	return n
}
