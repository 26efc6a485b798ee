package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3-arcade/internal/games/match3/layouts"
	"github.com/vovakirdan/match3-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the title menu",
	Long: `Open the title menu to pick a difficulty and a starting board, browse
high scores, and play. Boards are read from the --layouts directory.

Controls:
  Up/Down       - Navigate
  Left/Right    - Change option
  Enter/Space   - Select
  Tab           - High scores
  Q/Ctrl+C      - Quit`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{interactive: "true"},
	Run:         runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	opts := tui.MenuOptions{
		GameID:     gameID,
		Difficulty: difficulty(),
		Boards:     boardChoices(),
	}
	cfg := runtimeConfig()

	for {
		res, err := tui.RunMenu(store, cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}
		cfg = res.Config
		opts.Difficulty = res.Difficulty

		switch {
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, gameID, "Match-3", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
				os.Exit(1)
			}
			if !back {
				return
			}

		case res.Play:
			game, err := newGame(res.Difficulty, res.LayoutPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				os.Exit(1)
			}
			back, err := tui.Run(game, cfg, tui.Options{
				Store:      store,
				Player:     playerName(),
				Difficulty: res.Difficulty,
				Logger:     logger,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				os.Exit(1)
			}
			if !back {
				return
			}

		default:
			return
		}
	}
}

// boardChoices lists the layouts directory for the menu. A missing or
// unreadable directory just means no fixed boards.
func boardChoices() []tui.BoardChoice {
	all, err := layouts.NewLoader(flagLayoutsDir).LoadAll()
	if err != nil {
		logger.Debug("no layouts loaded", "dir", flagLayoutsDir, "err", err)
		return nil
	}
	choices := make([]tui.BoardChoice, 0, len(all))
	for _, l := range all {
		name := l.Name
		if name == "" {
			name = l.ID
		}
		choices = append(choices, tui.BoardChoice{Name: name, Path: l.FilePath})
	}
	return choices
}
