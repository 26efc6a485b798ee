// match3 is a terminal match-3 game: swap tokens, chain cascades, clear
// level targets before the moves run out.
//
// Usage:
//
//	match3 list              - List available games
//	match3 play              - Play directly
//	match3 menu              - Title menu with difficulty and board pickers
//	match3 serve             - Start SSH server for remote play
//	match3 scores            - Show high scores
//	match3 sim               - Play headless games with a bot
//	match3 levels            - Print level targets and move budgets
//	match3 layouts           - List starting boards
//	match3 config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3-arcade/internal/config"
	"github.com/vovakirdan/match3-arcade/internal/games/match3"
)

const gameID = match3.GameID

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLayoutsDir string
	flagLogLevel   string
	flagLogFile    string
)

// logger is configured by the root command before any subcommand runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "match3",
})

// interactive marks commands that own the terminal; they log to a file or
// nowhere instead of stderr.
const interactive = "interactive"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap, match and cascade in your terminal",
	Long: `Match-3 is a terminal puzzle game. Swap neighbouring tokens to line up
three or more of a color, chain cascades for combos, and reach each level's
target before the moves run out.

Available commands:
  play     - Play directly
  menu     - Title menu with difficulty and board pickers
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Play headless games with a bot
  levels   - Print level targets and move budgets
  layouts  - List starting boards
  config   - Print the effective configuration

Examples:
  match3 play
  match3 play --difficulty hard --seed 42
  match3 menu
  match3 serve --ssh :2222
  match3 sim --games 20 --record`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLayoutsDir, "layouts", "./layouts", "Directory of starting board layouts")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup configures logging and hands the global flags to the game package.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(level)

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(expandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logger.SetOutput(f)
	case cmd.Annotations[interactive] != "":
		logger.SetOutput(io.Discard)
	}

	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}

	match3.SetLogger(logger)
	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(flagDifficulty)
	return nil
}

// loadConfig returns the effective config: file or defaults, then preset.
func loadConfig() config.Match3Config {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultMatch3Config()
	}
	if preset, err := config.ParseDifficulty(flagDifficulty); err == nil {
		config.ApplyMatch3Preset(&cfg, preset)
	}
	return cfg
}

// difficulty returns the preset name the flags select.
func difficulty() string {
	p, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return string(config.DifficultyNormal)
	}
	return string(p)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
