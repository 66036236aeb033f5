package primitives

// Direction is one of the four axis-aligned travel directions, ordered
// clockwise starting from Up.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left

	numDirections = 4
)

// Turn returns the direction after a 90° clockwise rotation.
func (d Direction) Turn() Direction {
	return (d + 1) % numDirections
}

// Offset returns the row and column deltas of a single move in d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	panic("invalid direction")
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "invalid"
}
