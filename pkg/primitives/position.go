package primitives

import "fmt"

// Position identifies a single cell on the grid by row and column.
// Positions are plain values: equality and map keys work as expected.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Step is one state of the patrol agent: the cell it occupies and the
// direction it is facing.
type Step struct {
	Pos Position
	Dir Direction
}

func (s Step) String() string {
	return fmt.Sprintf("%s %s", s.Pos, s.Dir)
}
