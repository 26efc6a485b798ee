package core

import "fmt"

// maxGenerateAttempts bounds rejection sampling before the generator falls
// back to a fixed run-free pattern.
const maxGenerateAttempts = 1000

// Generate returns a fully populated board of ordinary tokens with no runs.
// It samples uniformly and rejects boards with matches; if that keeps
// failing it returns a two-color pattern that can never contain a run.
// colors must be at least 2 for boards of size 3 or more.
func Generate(size, colors int, rng Source) *Board {
	b := NewBoard(size)
	if size < minRun {
		fillRandom(b, colors, rng)
		return b
	}
	if colors < 2 {
		panic(fmt.Sprintf("core: cannot generate a match-free board with %d colors", colors))
	}
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		fillRandom(b, colors, rng)
		if !HasMatches(b) {
			return b
		}
	}
	return fallbackPattern(size, colors, rng)
}

func fillRandom(b *Board, colors int, rng Source) {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			b.Set(At(r, c), Token(rng.Intn(colors)))
		}
	}
}

// fallbackPattern lays out pairs AABB along rows and alternates them down
// columns, so no line holds three equal tokens in a row.
func fallbackPattern(size, colors int, rng Source) *Board {
	first := rng.Intn(colors)
	second := (first + 1 + rng.Intn(colors-1)) % colors
	b := NewBoard(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			color := first
			if (r+c/2)%2 == 1 {
				color = second
			}
			b.Set(At(r, c), Token(color))
		}
	}
	return b
}
