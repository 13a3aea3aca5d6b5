package core

// ByteGrid stores a rows×cols grid of byte-sized cell values in row-major order.
// Dimensions are fixed at construction.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewByteGrid(rows, cols int) *ByteGrid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Size reports the grid dimensions in the Sim convention (W = cols, H = rows).
func (g *ByteGrid) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) lies inside the grid.
func (g *ByteGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the value at (row, col), or zero outside the grid.
func (g *ByteGrid) At(row, col int) uint8 {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.data[row*g.Cols+col]
}

// Set stores v at (row, col). Out-of-range writes are ignored.
func (g *ByteGrid) Set(row, col int, v uint8) {
	if !g.InBounds(row, col) {
		return
	}
	g.data[row*g.Cols+col] = v
}

// Count returns how many cells hold v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	out := &ByteGrid{Rows: g.Rows, Cols: g.Cols, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

// CopyFrom overwrites g with the contents of src. Grids of different shape are
// left untouched and false is returned.
func (g *ByteGrid) CopyFrom(src *ByteGrid) bool {
	if src == nil || src.Rows != g.Rows || src.Cols != g.Cols {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
