package primitives

import (
	"errors"
	"fmt"
	"iter"
)

// ErrEmptyGrid is returned when the input contains no rows or no columns.
var ErrEmptyGrid = errors.New("grid has no cells")

// ErrRaggedRows is returned when the input rows have unequal lengths.
var ErrRaggedRows = errors.New("grid rows have unequal lengths")

// ErrNoStart is returned when the input contains no start marker.
var ErrNoStart = errors.New("grid has no start marker")

// ErrDuplicateStart is returned when the input contains more than one start marker.
var ErrDuplicateStart = errors.New("grid has more than one start marker")

const (
	obstructionMarker = '#'
	startMarker       = '^'
	altStartMarker    = 'V'
)

// Grid is an immutable obstruction map with a designated start cell.
// It never changes after construction; walks consult it but do not
// mutate it, so a single Grid can be shared across goroutines freely.
type Grid struct {
	rows  int
	cols  int
	tiles []bool
	start Position
}

// GridFromLines builds a Grid from the textual rows of a puzzle map.
// '#' marks an obstruction and '^' (or 'V') marks the start cell; any
// other character is an open cell. The agent always starts facing up.
func GridFromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		rows:  len(lines),
		cols:  len(lines[0]),
		tiles: make([]bool, len(lines)*len(lines[0])),
		start: Position{Row: -1},
	}

	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, r, len(line), g.cols)
		}
		for c, char := range line {
			switch char {
			case obstructionMarker:
				g.tiles[r*g.cols+c] = true
			case startMarker, altStartMarker:
				if g.start.Row >= 0 {
					return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateStart, g.start, Position{Row: r, Col: c})
				}
				g.start = Position{Row: r, Col: c}
			}
		}
	}

	if g.start.Row < 0 {
		return nil, ErrNoStart
	}
	return g, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// Start returns the agent's starting cell.
func (g *Grid) Start() Position {
	return g.start
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Obstructed reports whether the cell at p is an obstruction. Cells
// outside the grid are not obstructed; the agent exits through them.
func (g *Grid) Obstructed(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.tiles[p.Row*g.cols+p.Col]
}

// WalkRay returns the sequence of cells from p (inclusive) to the grid
// edge in direction d. The sequence is pure and restartable: ranging
// over it twice produces the same cells, and it never yields a cell
// outside the grid.
func (g *Grid) WalkRay(p Position, d Direction) iter.Seq[Position] {
	dr, dc := d.Offset()
	return func(yield func(Position) bool) {
		for cell := p; g.InBounds(cell); cell.Row, cell.Col = cell.Row+dr, cell.Col+dc {
			if !yield(cell) {
				return
			}
		}
	}
}
