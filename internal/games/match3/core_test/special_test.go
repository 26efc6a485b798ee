package core_test

import (
	"testing"

	"github.com/vovakirdan/match3-arcade/internal/games/match3/core"
)

func TestSpecialFor(t *testing.T) {
	rules := core.DefaultRules()
	tests := []struct {
		count int
		kind  core.Kind
		ok    bool
	}{
		{3, core.KindEmpty, false},
		{4, core.KindBomb, true},
		{5, core.KindRainbow, true},
		{9, core.KindRainbow, true},
	}

	for _, tt := range tests {
		kind, ok := rules.SpecialFor(tt.count)
		if kind != tt.kind || ok != tt.ok {
			t.Errorf("SpecialFor(%d) = (%v, %v), expected (%v, %v)", tt.count, kind, ok, tt.kind, tt.ok)
		}
	}
}

func TestBombArea(t *testing.T) {
	b := core.MustParseBoard(patternRows()...)

	tests := []struct {
		name string
		at   core.Coord
		want int
	}{
		{"center", core.At(2, 2), 9},
		{"corner", core.At(0, 0), 4},
		{"edge", core.At(0, 3), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := core.BombArea(b, tt.at)
			if len(area) != tt.want {
				t.Errorf("BombArea(%v) has %d cells, expected %d", tt.at, len(area), tt.want)
			}
		})
	}
}

func TestBombAreaSkipsEmpty(t *testing.T) {
	b := core.MustParseBoard(
		"0.1",
		"1B.",
		"R01",
	)
	area := core.BombArea(b, core.At(1, 1))
	if len(area) != 7 {
		t.Errorf("expected 7 occupied cells, got %d: %v", len(area), area)
	}
}

func TestRainbowTargets(t *testing.T) {
	b := core.MustParseBoard(
		"012",
		"2R0",
		"120",
	)
	targets := core.RainbowTargets(b, core.At(1, 1), 0)

	expected := map[core.Coord]bool{
		core.At(0, 0): true,
		core.At(1, 2): true,
		core.At(2, 2): true,
		core.At(1, 1): true,
	}
	if len(targets) != len(expected) {
		t.Fatalf("expected %d targets, got %d: %v", len(expected), len(targets), targets)
	}
	for _, c := range targets {
		if !expected[c] {
			t.Errorf("unexpected target %v", c)
		}
	}
}
