package core

// minRun is the shortest line of equal tokens that counts as a match.
const minRun = 3

// Match is one matched cell.
// Run is the length of the longest run the cell belongs to.
type Match struct {
	At    Coord
	Color int
	Run   int
}

// MatchSet is the result of a board scan: row runs first (top to bottom,
// left to right) then column runs (left to right, top to bottom).
// A cell on both a row and a column run appears once, at its first position.
type MatchSet []Match

// Coords returns the matched coordinates in scan order.
func (m MatchSet) Coords() []Coord {
	out := make([]Coord, len(m))
	for i, match := range m {
		out[i] = match.At
	}
	return out
}

// Contains reports whether c is part of the set.
func (m MatchSet) Contains(c Coord) bool {
	for _, match := range m {
		if match.At == c {
			return true
		}
	}
	return false
}

// Center returns the cell at the middle index of the set, floor(len/2).
// It is where a special token spawns. Panics on an empty set.
func (m MatchSet) Center() Coord {
	return m[len(m)/2].At
}

// FindMatches returns every cell that is part of a horizontal or vertical
// run of at least three same-colored tokens. It does not modify the board.
func FindMatches(b *Board) MatchSet {
	var set MatchSet
	index := make(map[Coord]int)

	emit := func(run []Coord, color int) {
		for _, c := range run {
			if i, ok := index[c]; ok {
				if len(run) > set[i].Run {
					set[i].Run = len(run)
				}
				continue
			}
			index[c] = len(set)
			set = append(set, Match{At: c, Color: color, Run: len(run)})
		}
	}

	n := b.Size()
	for r := 0; r < n; r++ {
		row := r
		scanLine(b, n, func(i int) Coord { return At(row, i) }, emit)
	}
	for c := 0; c < n; c++ {
		col := c
		scanLine(b, n, func(i int) Coord { return At(i, col) }, emit)
	}
	return set
}

// HasMatches reports whether the board contains at least one run.
func HasMatches(b *Board) bool {
	found := false
	n := b.Size()
	stop := func([]Coord, int) { found = true }
	for i := 0; i < n && !found; i++ {
		line := i
		scanLine(b, n, func(k int) Coord { return At(line, k) }, stop)
		scanLine(b, n, func(k int) Coord { return At(k, line) }, stop)
	}
	return found
}

// scanLine walks one row or column and reports each maximal run of
// matching tokens of length minRun or more.
func scanLine(b *Board, n int, at func(int) Coord, emit func([]Coord, int)) {
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && b.Get(at(i)).Matches(b.Get(at(start))) {
			continue
		}
		if i-start >= minRun {
			run := make([]Coord, 0, i-start)
			for k := start; k < i; k++ {
				run = append(run, at(k))
			}
			emit(run, b.Get(at(start)).Color)
		}
		start = i
	}
}
