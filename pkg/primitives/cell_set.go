package primitives

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// CellSet efficiently represents a set of grid cells using bit manipulation.
// It is sized for a fixed rows×cols grid at construction time; each cell
// occupies one bit of the backing words.
type CellSet struct {
	words []uint64
	rows  int
	cols  int
	count int
}

// NewCellSet creates an empty cell set for a rows×cols grid.
func NewCellSet(rows, cols int) *CellSet {
	return &CellSet{
		words: make([]uint64, (rows*cols+63)/64),
		rows:  rows,
		cols:  cols,
	}
}

func (s *CellSet) index(p Position) (word int, bit uint, ok bool) {
	if p.Row < 0 || p.Row >= s.rows || p.Col < 0 || p.Col >= s.cols {
		return 0, 0, false
	}
	i := p.Row*s.cols + p.Col
	return i / 64, uint(i % 64), true
}

// Add adds a cell to the set.
func (s *CellSet) Add(p Position) error {
	word, bit, ok := s.index(p)
	if !ok {
		return fmt.Errorf("cell %s is out of range", p)
	}
	if s.words[word]&(1<<bit) == 0 {
		s.words[word] |= 1 << bit
		s.count++
	}
	return nil
}

// Contains checks if a cell is in the set.
func (s *CellSet) Contains(p Position) bool {
	word, bit, ok := s.index(p)
	if !ok {
		return false
	}
	return s.words[word]&(1<<bit) != 0
}

// Count returns the number of cells in the set.
func (s *CellSet) Count() int {
	return s.count
}

// Capacity returns the number of cells the set can hold.
func (s *CellSet) Capacity() int {
	return s.rows * s.cols
}

// Clear removes all cells from the set.
func (s *CellSet) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
	s.count = 0
}

// All returns a sequence of the cells in the set, in row-major order.
func (s *CellSet) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for w, word := range s.words {
			for word != 0 {
				bit := bits.TrailingZeros64(word)
				word &^= 1 << uint(bit)
				i := w*64 + bit
				if !yield(Position{Row: i / s.cols, Col: i % s.cols}) {
					return
				}
			}
		}
	}
}

// String returns a string representation of the set.
func (s *CellSet) String() string {
	const maxPrint = 3

	var cells []string
	for p := range s.All() {
		if len(cells) == maxPrint {
			cells = append(cells, "...")
			break
		}
		cells = append(cells, p.String())
	}
	return fmt.Sprintf("cells [%s] (%d/%d)", strings.Join(cells, ", "), s.count, s.Capacity())
}
