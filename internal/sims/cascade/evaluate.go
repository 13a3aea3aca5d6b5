package cascade

import (
	"golang.org/x/sync/errgroup"

	"cascade/internal/core"
)

// AccessThreshold is the neighbour count at which a present cell stops being
// removable.
const AccessThreshold = 4

// Coord addresses a single cell.
type Coord struct {
	Row, Col int
}

// Evaluator computes removable sets, optionally splitting the rows into bands
// that are evaluated concurrently.
type Evaluator struct {
	Workers int
}

// Removable returns every present cell of g with fewer than AccessThreshold
// present neighbours, in row-major order. g is only read.
func (e Evaluator) Removable(g *core.ByteGrid) []Coord {
	workers := min(e.Workers, g.Rows)
	if workers <= 1 {
		return appendRemovable(nil, g, 0, g.Rows)
	}

	band := (g.Rows + workers - 1) / workers
	parts := make([][]Coord, workers)
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := 0; i < workers; i++ {
		lo := i * band
		hi := min(lo+band, g.Rows)
		if lo >= hi {
			continue
		}
		eg.Go(func() error {
			parts[i] = appendRemovable(nil, g, lo, hi)
			return nil
		})
	}
	_ = eg.Wait()

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]Coord, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Removable evaluates g sequentially.
func Removable(g *core.ByteGrid) []Coord {
	return Evaluator{}.Removable(g)
}

// Accessible returns the single-pass answer: the number of cells of g that are
// removable right now. g is not modified.
func Accessible(g *core.ByteGrid) int {
	return len(Removable(g))
}

func appendRemovable(dst []Coord, g *core.ByteGrid, rowLo, rowHi int) []Coord {
	cells := g.Cells()
	for row := rowLo; row < rowHi; row++ {
		base := row * g.Cols
		for col := 0; col < g.Cols; col++ {
			if cells[base+col] != StatePresent {
				continue
			}
			if NeighborCount(g, row, col) < AccessThreshold {
				dst = append(dst, Coord{Row: row, Col: col})
			}
		}
	}
	return dst
}
