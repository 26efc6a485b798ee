// Package core implements the match-3 board rules: match detection, swaps,
// cascades, special tokens, scoring and level progression.
// It has no UI or terminal dependencies and is deterministic given a
// Source and a Clock.
package core

import "strconv"

// Kind identifies what occupies a board cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindToken
	KindBomb
	KindRainbow
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindToken:
		return "token"
	case KindBomb:
		return "bomb"
	case KindRainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

// Cell is the content of one board position.
// Color is meaningful only for KindToken.
type Cell struct {
	Kind  Kind
	Color int
}

// Empty returns a vacated cell.
func Empty() Cell { return Cell{Kind: KindEmpty} }

// Token returns an ordinary token of the given color index.
func Token(color int) Cell { return Cell{Kind: KindToken, Color: color} }

// Bomb returns a bomb special.
func Bomb() Cell { return Cell{Kind: KindBomb} }

// Rainbow returns a rainbow special.
func Rainbow() Cell { return Cell{Kind: KindRainbow} }

// IsEmpty reports whether the cell is vacated.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// IsToken reports whether the cell holds an ordinary token.
func (c Cell) IsToken() bool { return c.Kind == KindToken }

// IsSpecial reports whether the cell holds a bomb or a rainbow.
func (c Cell) IsSpecial() bool { return c.Kind == KindBomb || c.Kind == KindRainbow }

// Matches reports whether both cells are tokens of the same color.
// Specials and empty cells never match anything.
func (c Cell) Matches(other Cell) bool {
	return c.Kind == KindToken && other.Kind == KindToken && c.Color == other.Color
}

// Char returns the single character used by Board.String and ParseBoard.
// Colors above 9 fall back to '?' and cannot be parsed back.
func (c Cell) Char() rune {
	switch c.Kind {
	case KindEmpty:
		return '.'
	case KindBomb:
		return 'B'
	case KindRainbow:
		return 'R'
	}
	if c.Color >= 0 && c.Color <= 9 {
		return rune('0' + c.Color)
	}
	return '?'
}

// String returns a readable form of the cell.
func (c Cell) String() string {
	if c.Kind == KindToken {
		return "token(" + strconv.Itoa(c.Color) + ")"
	}
	return c.Kind.String()
}

// parseCell is the inverse of Cell.Char.
func parseCell(r rune) (Cell, bool) {
	switch {
	case r == '.':
		return Empty(), true
	case r == 'B':
		return Bomb(), true
	case r == 'R':
		return Rainbow(), true
	case r >= '0' && r <= '9':
		return Token(int(r - '0')), true
	}
	return Cell{}, false
}
