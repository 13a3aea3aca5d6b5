package cascade

import (
	"fmt"

	"cascade/internal/core"
)

const (
	// StateAbsent marks an empty cell.
	StateAbsent uint8 = 0
	// StatePresent marks an occupied cell.
	StatePresent uint8 = 1

	// DefaultMarker is the occupied-cell symbol in text grids.
	DefaultMarker byte = '@'
	// DefaultBlank is written for absent cells when formatting a grid.
	DefaultBlank byte = '.'
)

// Parser converts text lines into a grid of cell states.
type Parser struct {
	Marker byte
	Strict bool
}

// NewParser returns a Parser using the marker and strictness from cfg.
func NewParser(cfg Config) Parser {
	marker := cfg.Marker
	if marker == 0 {
		marker = DefaultMarker
	}
	return Parser{Marker: marker, Strict: cfg.Strict}
}

// Parse builds a grid from lines. The column count is the length of the first
// line. Positions past the end of a shorter line are absent and characters past
// the column count are ignored. In strict mode any line whose length differs
// from the first fails with ErrMalformedGrid.
func (p Parser) Parse(lines []string) (*core.ByteGrid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	marker := p.Marker
	if marker == 0 {
		marker = DefaultMarker
	}

	cols := len(lines[0])
	g := core.NewByteGrid(len(lines), cols)
	cells := g.Cells()
	for row, line := range lines {
		if p.Strict && len(line) != cols {
			return nil, fmt.Errorf("line %d has length %d, expected %d: %w", row+1, len(line), cols, ErrMalformedGrid)
		}
		n := min(len(line), cols)
		base := row * cols
		for col := 0; col < n; col++ {
			if line[col] == marker {
				cells[base+col] = StatePresent
			}
		}
	}
	return g, nil
}

// Parse is shorthand for a non-strict Parser with the given marker.
func Parse(lines []string, marker byte) (*core.ByteGrid, error) {
	return Parser{Marker: marker}.Parse(lines)
}

// Format renders g as text, one line per row.
func Format(g *core.ByteGrid, marker, blank byte) []string {
	lines := make([]string, g.Rows)
	buf := make([]byte, g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.At(row, col) == StatePresent {
				buf[col] = marker
				continue
			}
			buf[col] = blank
		}
		lines[row] = string(buf)
	}
	return lines
}
