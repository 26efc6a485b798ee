package core

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrBoardShape is returned by ParseBoard when the rows do not form a square grid.
var ErrBoardShape = errors.New("core: board must be square")

// Board is a square grid of cells stored row-major.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard creates a board of the given size with every cell empty.
func NewBoard(size int) *Board {
	if size < 0 {
		size = 0
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// ParseBoard builds a board from one string per row using the characters of
// Cell.Char: '.' empty, '0'-'9' token colors, 'B' bomb, 'R' rainbow.
// Whitespace inside a row is ignored so rows can be written as "0 1 2".
func ParseBoard(rows ...string) (*Board, error) {
	b := NewBoard(len(rows))
	for r, row := range rows {
		col := 0
		for _, ch := range row {
			if unicode.IsSpace(ch) {
				continue
			}
			cell, ok := parseCell(ch)
			if !ok {
				return nil, fmt.Errorf("core: row %d: invalid cell %q", r, ch)
			}
			if col >= b.size {
				return nil, fmt.Errorf("%w: row %d is longer than %d", ErrBoardShape, r, b.size)
			}
			b.cells[r*b.size+col] = cell
			col++
		}
		if col != b.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrBoardShape, r, col, b.size)
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on error. Intended for fixtures.
func MustParseBoard(rows ...string) *Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// Size returns the number of rows (and columns).
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether c addresses a cell of the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// Get returns the cell at c. Out-of-bounds coordinates read as empty.
func (b *Board) Get(c Coord) Cell {
	if !b.InBounds(c) {
		return Empty()
	}
	return b.cells[c.Row*b.size+c.Col]
}

// Set writes a cell. Out-of-bounds coordinates are silently ignored.
func (b *Board) Set(c Coord, cell Cell) {
	if !b.InBounds(c) {
		return
	}
	b.cells[c.Row*b.size+c.Col] = cell
}

// Swap exchanges the contents of two cells.
func (b *Board) Swap(a, c Coord) {
	if !b.InBounds(a) || !b.InBounds(c) {
		return
	}
	i, j := a.Row*b.size+a.Col, c.Row*b.size+c.Col
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{size: b.size, cells: make([]Cell, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells for which pred holds.
func (b *Board) Count(pred func(Cell) bool) int {
	n := 0
	for _, c := range b.cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// CountNonEmpty returns the number of occupied cells.
func (b *Board) CountNonEmpty() int {
	return b.Count(func(c Cell) bool { return !c.IsEmpty() })
}

// Find returns the coordinates of every cell for which pred holds, row-major.
func (b *Board) Find(pred func(Cell) bool) []Coord {
	var out []Coord
	for i, c := range b.cells {
		if pred(c) {
			out = append(out, Coord{Row: i / b.size, Col: i % b.size})
		}
	}
	return out
}

// Rows returns the board as one string per row in ParseBoard notation.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		sb.Reset()
		for c := 0; c < b.size; c++ {
			sb.WriteRune(b.cells[r*b.size+c].Char())
		}
		rows[r] = sb.String()
	}
	return rows
}

// String returns the rows joined by newlines.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

// mustBeFull panics if any cell is empty. Refill is expected to leave none.
func (b *Board) mustBeFull() {
	for i, c := range b.cells {
		if c.IsEmpty() {
			panic(fmt.Sprintf("core: cell (%d,%d) empty after refill", i/b.size, i%b.size))
		}
	}
}
