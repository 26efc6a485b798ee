// Package match3 adapts the match-3 engine to the arcade platform: cursor
// input, paced event playback and rendering into a core.Screen.
package match3

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match3-arcade/internal/config"
	"github.com/vovakirdan/match3-arcade/internal/core"
	engine "github.com/vovakirdan/match3-arcade/internal/games/match3/core"
	"github.com/vovakirdan/match3-arcade/internal/games/match3/layouts"
	"github.com/vovakirdan/match3-arcade/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "match3"

// Package-level defaults picked up by New.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the default difficulty preset. Unknown names are
// ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		logger.Warn("ignoring difficulty", "err", err)
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger handed to engines.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for match-3.
type Game struct {
	difficulty config.DifficultyPreset
	layout     string

	engine  *engine.Engine
	runtime core.RuntimeConfig
	tick    uint64

	cursor engine.Coord

	// Event playback
	queue     []engine.Event
	current   engine.Event
	ticksLeft int
	flash     map[engine.Coord]bool
	status    string

	hintA, hintB engine.Coord
	hintTicks    int

	pressed    engine.Coord
	hasPressed bool

	paused   bool
	tooSmall bool
}

// New creates a new match-3 game. Call Reset before use.
func New() *Game {
	return &Game{difficulty: difficultyPreset}
}

// SetDifficulty overrides the difficulty for this game from the next Reset.
func (g *Game) SetDifficulty(name string) error {
	p, err := config.ParseDifficulty(name)
	if err != nil {
		return err
	}
	g.difficulty = p
	return nil
}

// Difficulty returns the preset applied on Reset.
func (g *Game) Difficulty() string {
	if g.difficulty == "" {
		return string(config.DifficultyNormal)
	}
	return string(g.difficulty)
}

// SetLayout sets the layout file for this game; empty deals a random board.
func (g *Game) SetLayout(path string) {
	g.layout = path
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Match-3"
}

// Reset starts a new game with the config file, this game's difficulty and
// its layout, if any.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}

	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultMatch3Config()
	}
	if g.difficulty != "" {
		config.ApplyMatch3Preset(&cfg, g.difficulty)
	}

	opts := OptionsFromConfig(cfg)
	opts.Seed = runtime.Seed
	opts.Logger = logger
	if g.layout != "" {
		lay, err := layouts.LoadFile(g.layout)
		if err != nil {
			logger.Warn("ignoring layout", "path", g.layout, "err", err)
		} else {
			lay.Apply(&opts)
		}
	}

	e, err := engine.New(opts)
	if err != nil {
		logger.Warn("invalid config, using defaults", "err", err)
		fallback := engine.DefaultOptions()
		fallback.Seed = runtime.Seed
		fallback.Logger = logger
		e, err = engine.New(fallback)
		if err != nil {
			panic(fmt.Sprintf("match3: default options are invalid: %v", err))
		}
	}
	g.useEngine(e)
}

// useEngine installs an engine and clears all front-end state.
func (g *Game) useEngine(e *engine.Engine) {
	g.engine = e
	g.tick = 0
	g.cursor = engine.At(0, 0)
	g.queue = nil
	g.current = nil
	g.ticksLeft = 0
	g.flash = nil
	g.status = "Select a token, then a neighbour to swap"
	g.hintTicks = 0
	g.hasPressed = false
	g.paused = false
	g.checkScreenSize()

	// A layout may start with runs on it.
	if engine.HasMatches(e.Board()) {
		g.enqueue(e.Resolve().Events)
	}
}

// Engine returns the engine driving the game.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Resize adapts to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, h := layoutSize(g.engine.Options().Size)
	g.tooSmall = g.runtime.ScreenW < w || g.runtime.ScreenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	session := g.engine.Session()
	if in.Has(core.ActionPause) && !session.GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.enqueue(g.engine.Tick().Events)
	g.advancePlayback()
	if g.hintTicks > 0 {
		g.hintTicks--
	}

	// Input waits until the previous action has been shown.
	if g.Busy() || session.GameOver {
		return core.StepResult{State: g.State()}
	}

	n := g.engine.Options().Size
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, n-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, n-1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, n-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, n-1)
	case in.Has(core.ActionConfirm):
		g.apply(g.engine.Select(g.cursor))
	case in.Has(core.ActionShuffle):
		g.apply(g.engine.Shuffle())
	case in.Has(core.ActionHint):
		g.showHint()
	case in.Has(core.ActionRestart):
		g.restart()
	}

	return core.StepResult{State: g.State()}
}

// Press records the cell under a pointer press.
func (g *Game) Press(x, y int) {
	c, ok := g.cellAt(x, y)
	g.pressed, g.hasPressed = c, ok
}

// Release completes a pointer gesture. Releasing on the pressed cell taps
// it; releasing on a neighbour swaps the two directly.
func (g *Game) Release(x, y int) {
	from, ok := g.pressed, g.hasPressed
	g.hasPressed = false
	if !ok || g.paused || g.tooSmall || g.Busy() {
		return
	}
	to, ok := g.cellAt(x, y)
	if !ok {
		return
	}
	g.cursor = to
	if from == to {
		g.apply(g.engine.Select(to))
		return
	}
	if from.Adjacent(to) {
		g.apply(g.engine.Swap(from, to))
	}
}

// apply queues the events of an engine action for playback.
func (g *Game) apply(res engine.Result) {
	switch res.Outcome {
	case engine.OutcomeSwapRejected:
		g.status = "No match"
	case engine.OutcomeShuffled:
		g.status = "Shuffled"
	case engine.OutcomeGameOver:
		g.status = "Game over"
	}
	g.hintTicks = 0
	g.enqueue(res.Events)
}

// restart deals a new game on the same engine.
func (g *Game) restart() {
	res := g.engine.NewGame()
	g.queue = nil
	g.current = nil
	g.ticksLeft = 0
	g.flash = nil
	g.hintTicks = 0
	g.cursor = engine.At(0, 0)
	g.status = "New game"
	if res.Outcome != engine.OutcomeNewGame {
		g.enqueue(res.Events)
	}
}

func (g *Game) showHint() {
	a, b, ok := g.engine.Hint()
	if !ok {
		g.status = "No moves left, press S to shuffle"
		return
	}
	g.hintA, g.hintB = a, b
	g.hintTicks = g.ticks(2000)
	g.status = fmt.Sprintf("Try %v with %v", a, b)
}

// Busy reports whether events are still being played back.
func (g *Game) Busy() bool {
	return g.ticksLeft > 0 || len(g.queue) > 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.engine.Session()
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		MaxCombo: s.MaxCombo,
		GameOver: s.GameOver && !g.Busy(),
		Paused:   g.paused || g.tooSmall,
	}
}

// ticks converts milliseconds to simulation ticks.
func (g *Game) ticks(ms int) int {
	return core.Max(1, ms*g.runtime.TickRate/1000)
}
