package core_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/match3-arcade/internal/games/match3/core"
)

// scriptedSource returns the given values first (reduced modulo n), then
// falls back to a seeded generator.
type scriptedSource struct {
	values   []int
	next     int
	fallback *rand.Rand
}

func newScriptedSource(values ...int) *scriptedSource {
	return &scriptedSource{values: values, fallback: rand.New(rand.NewSource(1))}
}

func (s *scriptedSource) Intn(n int) int {
	if s.next < len(s.values) {
		v := s.values[s.next] % n
		s.next++
		return v
	}
	return s.fallback.Intn(n)
}

// constSource always returns the same value.
type constSource int

func (c constSource) Intn(n int) int { return int(c) % n }

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// patternRows is a 6x6 layout with no runs. Rows alternate 001100 / 110011.
func patternRows() []string {
	return []string{
		"001100",
		"110011",
		"001100",
		"110011",
		"001100",
		"110011",
	}
}

// newEngine builds an engine on the given layout with a manual clock.
func newEngine(t *testing.T, rows []string, mutate func(*core.Options)) (*core.Engine, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(epoch)
	opts := core.DefaultOptions()
	opts.Seed = 42
	opts.Clock = clock
	if rows != nil {
		opts.Board = core.MustParseBoard(rows...)
	}
	if mutate != nil {
		mutate(&opts)
	}
	e, err := core.New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e, clock
}

// eventsOf returns the events of type T in order.
func eventsOf[T core.Event](events []core.Event) []T {
	var out []T
	for _, ev := range events {
		if v, ok := ev.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// assertSettled checks the stability invariant: full board, no runs.
func assertSettled(t *testing.T, b *core.Board) {
	t.Helper()
	if n := b.CountNonEmpty(); n != b.Size()*b.Size() {
		t.Errorf("expected full board, got %d of %d cells occupied\n%s", n, b.Size()*b.Size(), b)
	}
	if core.HasMatches(b) {
		t.Errorf("expected settled board without runs\n%s", b)
	}
}
