package match3

import (
	"fmt"

	engine "github.com/vovakirdan/match3-arcade/internal/games/match3/core"
)

// Playback durations in milliseconds.
const (
	clearDuration    = 250
	specialDuration  = 300
	refillDuration   = 150
	bannerDuration   = 600
	rejectedDuration = 200
)

// enqueue appends engine events to the playback queue.
func (g *Game) enqueue(events []engine.Event) {
	g.queue = append(g.queue, events...)
}

// advancePlayback counts down the current event and starts the next one.
// Events without a visible effect are consumed in the same tick.
func (g *Game) advancePlayback() {
	if g.ticksLeft > 0 {
		g.ticksLeft--
		if g.ticksLeft > 0 {
			return
		}
		g.current = nil
		g.flash = nil
	}

	for len(g.queue) > 0 {
		ev := g.queue[0]
		g.queue = g.queue[1:]
		ms := g.present(ev)
		if ms > 0 {
			g.current = ev
			g.ticksLeft = g.ticks(ms)
			return
		}
	}
}

// present updates status and highlight for an event and returns how long
// it stays on screen.
func (g *Game) present(ev engine.Event) int {
	switch e := ev.(type) {
	case engine.SwapRejected:
		g.setFlash(e.A, e.B)
		return rejectedDuration
	case engine.MatchesCleared:
		g.setFlash(e.Cells...)
		if e.Pass > 1 {
			g.status = fmt.Sprintf("Cascade x%d  +%d", e.Pass, e.Points)
		} else {
			g.status = fmt.Sprintf("%d matched  +%d", e.Matched, e.Points)
		}
		return clearDuration
	case engine.SpecialSpawned:
		g.setFlash(e.At)
		g.status = fmt.Sprintf("%s created at %v", specialName(e.Kind), e.At)
		return specialDuration
	case engine.SpecialActivated:
		g.setFlash(e.Affected...)
		g.status = fmt.Sprintf("%s cleared %d  +%d", specialName(e.Kind), len(e.Affected), e.Points)
		return specialDuration
	case engine.BoardRefilled:
		cells := make([]engine.Coord, len(e.Cells))
		for i, p := range e.Cells {
			cells[i] = p.At
		}
		g.setFlash(cells...)
		return refillDuration
	case engine.FeverEntered:
		g.status = "FEVER! Points doubled"
		return bannerDuration
	case engine.CrazyEntered:
		g.status = fmt.Sprintf("CRAZY! Score doubled  +%d", e.Bonus)
		return bannerDuration
	case engine.GoldenRain:
		g.status = fmt.Sprintf("Golden rain  +%d", e.Bonus)
		return bannerDuration
	case engine.LevelCleared:
		g.status = fmt.Sprintf("Level %d cleared!", e.Level)
		return bannerDuration * 2
	case engine.BoardRegenerated:
		if e.Reason == engine.ReasonCascadeLimit {
			g.status = "Board reshuffled"
		}
		return 0
	case engine.GameOver:
		g.status = fmt.Sprintf("Out of moves at %d/%d", e.Score, e.Target)
		return 0
	default:
		return 0
	}
}

func (g *Game) setFlash(cells ...engine.Coord) {
	g.flash = make(map[engine.Coord]bool, len(cells))
	for _, c := range cells {
		g.flash[c] = true
	}
}

func specialName(k engine.Kind) string {
	switch k {
	case engine.KindBomb:
		return "Bomb"
	case engine.KindRainbow:
		return "Rainbow"
	default:
		return k.String()
	}
}
