package primitives

import "strings"

// Route represents the cells an agent visited on a grid.
type Route struct {
	Grid  *Grid
	Cells *CellSet
}

// Length returns the number of distinct visited cells.
func (r *Route) Length() int {
	return r.Cells.Count()
}

func (r *Route) String() string {
	var b strings.Builder
	for row := 0; row < r.Grid.Rows(); row++ {
		for col := 0; col < r.Grid.Cols(); col++ {
			p := Position{Row: row, Col: col}
			switch {
			case p == r.Grid.Start():
				b.WriteByte(startMarker)
			case r.Grid.Obstructed(p):
				b.WriteByte(obstructionMarker)
			case r.Cells.Contains(p):
				b.WriteByte('X')
			default:
				b.WriteByte('.')
			}
		}
		if row < r.Grid.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
