package match3

import "github.com/vovakirdan/match3-arcade/internal/games/match3/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Board     []string // Rows in board notation
	Session   core.Session
	Cursor    core.Coord
	Selection *core.Coord
	Pending   int // Events waiting for playback
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.Busy():
		state = StateResolving
	case g.engine.Session().GameOver:
		state = StateGameOver
	}

	var sel *core.Coord
	if c, ok := g.engine.Selection(); ok {
		sel = &c
	}

	return Snapshot{
		Tick:      g.tick,
		Board:     g.engine.Board().Rows(),
		Session:   g.engine.Session(),
		Cursor:    g.cursor,
		Selection: sel,
		Pending:   len(g.queue),
		State:     state,
	}
}
