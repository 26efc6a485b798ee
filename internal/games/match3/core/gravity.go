package core

// Move records one cell falling within its column.
type Move struct {
	Col     int
	FromRow int
	ToRow   int
}

// Placed records a new cell written into the board by Refill.
type Placed struct {
	At   Coord
	Cell Cell
}

// ApplyGravity compacts every column toward the bottom, preserving the
// relative order of occupied cells. Empty cells end up at the top.
func ApplyGravity(b *Board) []Move {
	var moves []Move
	for c := 0; c < b.size; c++ {
		write := b.size - 1
		for r := b.size - 1; r >= 0; r-- {
			cell := b.Get(At(r, c))
			if cell.IsEmpty() {
				continue
			}
			if r != write {
				b.Set(At(write, c), cell)
				b.Set(At(r, c), Empty())
				moves = append(moves, Move{Col: c, FromRow: r, ToRow: write})
			}
			write--
		}
	}
	return moves
}

// Refill writes a random ordinary token into every empty cell, column by
// column from the top.
func Refill(b *Board, colors int, rng Source) []Placed {
	var placed []Placed
	for c := 0; c < b.size; c++ {
		for r := 0; r < b.size; r++ {
			at := At(r, c)
			if !b.Get(at).IsEmpty() {
				continue
			}
			cell := Token(rng.Intn(colors))
			b.Set(at, cell)
			placed = append(placed, Placed{At: at, Cell: cell})
		}
	}
	return placed
}
