package core_test

import (
	"testing"

	"github.com/vovakirdan/match3-arcade/internal/games/match3/core"
)

func TestApplyGravityCompactsColumns(t *testing.T) {
	b := core.MustParseBoard(
		"0.2",
		".B.",
		"1.3",
	)

	moves := core.ApplyGravity(b)

	expected := []string{
		"...",
		"0.2",
		"1B3",
	}
	for i, row := range b.Rows() {
		if row != expected[i] {
			t.Errorf("row %d = %q, expected %q", i, row, expected[i])
		}
	}
	if len(moves) != 3 {
		t.Errorf("expected 3 moves, got %d: %+v", len(moves), moves)
	}
	for _, m := range moves {
		if m.ToRow <= m.FromRow {
			t.Errorf("move %+v does not fall down", m)
		}
	}
}

func TestApplyGravityConservesCells(t *testing.T) {
	b := core.MustParseBoard(
		"0.12.",
		".3..4",
		"5.R..",
		"..B.0",
		"1...2",
	)
	before := b.CountNonEmpty()
	colOrder := columnContents(b)

	core.ApplyGravity(b)

	if after := b.CountNonEmpty(); after != before {
		t.Errorf("gravity changed cell count: %d -> %d", before, after)
	}
	after := columnContents(b)
	for c := range colOrder {
		if len(colOrder[c]) != len(after[c]) {
			t.Fatalf("column %d changed length", c)
		}
		for i := range colOrder[c] {
			if colOrder[c][i] != after[c][i] {
				t.Errorf("column %d order changed: %v -> %v", c, colOrder[c], after[c])
				break
			}
		}
	}

	// Empties must be at the top of each column.
	n := b.Size()
	for c := 0; c < n; c++ {
		seenFilled := false
		for r := 0; r < n; r++ {
			filled := !b.Get(core.At(r, c)).IsEmpty()
			if seenFilled && !filled {
				t.Errorf("column %d has a hole below an occupied cell at row %d", c, r)
			}
			seenFilled = seenFilled || filled
		}
	}
}

func TestRefillFillsEveryEmptyCell(t *testing.T) {
	b := core.MustParseBoard(
		"..1",
		".01",
		"201",
	)

	placed := core.Refill(b, 4, core.NewSource(3))

	if len(placed) != 3 {
		t.Errorf("expected 3 placed cells, got %d", len(placed))
	}
	if b.CountNonEmpty() != 9 {
		t.Errorf("expected full board, got %d", b.CountNonEmpty())
	}
	for _, p := range placed {
		if b.Get(p.At) != p.Cell || !p.Cell.IsToken() || p.Cell.Color >= 4 {
			t.Errorf("bad placed cell %+v", p)
		}
	}
}

// columnContents lists the occupied cells of each column from top to bottom.
func columnContents(b *core.Board) [][]core.Cell {
	n := b.Size()
	out := make([][]core.Cell, n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			if cell := b.Get(core.At(r, c)); !cell.IsEmpty() {
				out[c] = append(out[c], cell)
			}
		}
	}
	return out
}
