package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/match3-arcade/internal/core"
	"github.com/vovakirdan/match3-arcade/internal/platform/tui"
	"github.com/vovakirdan/match3-arcade/internal/registry"
	"github.com/vovakirdan/match3-arcade/internal/storage"
)

var flagLayout string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game directly, skipping the menu.

Controls:
  Arrows/HJKL    - Move cursor
  Space/Enter    - Select; select a neighbour to swap
  Mouse          - Click to select, drag to swap
  S              - Shuffle (costs a move)
  ?              - Hint
  P              - Pause
  R              - Restart
  B/Esc          - Back (when paused or game over)
  Ctrl+S         - Screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - 5 colors, 10 extra moves
  normal - Standard rules
  hard   - 7 colors, 5 fewer moves
  fixed  - Move budget never grows

Examples:
  match3 play
  match3 play --difficulty easy
  match3 play --seed 42
  match3 play --layout ./layouts/specials.yaml
  match3 play --config ./my-match3.yaml`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{interactive: "true"},
	Run:         runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Starting board layout file")
}

func runPlay(cmd *cobra.Command, args []string) {
	game, err := newGame(difficulty(), flagLayout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Player:     playerName(),
		Difficulty: difficulty(),
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// tunable is implemented by games with per-instance difficulty and layout.
type tunable interface {
	SetDifficulty(name string) error
	SetLayout(path string)
}

// newGame creates the match-3 game with the given preset and layout.
func newGame(preset, layout string) (registry.Game, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if t, ok := game.(tunable); ok {
		if err := t.SetDifficulty(preset); err != nil {
			return nil, err
		}
		t.SetLayout(layout)
	}
	return game, nil
}

// runtimeConfig sizes the game to the terminal, 80x24 if unknown.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; the game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}
