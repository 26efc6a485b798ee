package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3-arcade/internal/games/match3"
	engine "github.com/vovakirdan/match3-arcade/internal/games/match3/core"
	"github.com/vovakirdan/match3-arcade/internal/storage"
)

var (
	flagSimGames    int
	flagSimStrategy string
	flagSimTurns    int
	flagSimThink    time.Duration
	flagSimRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play headless games with a bot",
	Long: `Play games without a terminal UI and print a summary per game.
Runs are deterministic for a given --seed: game N uses seed+N.

Strategies:
  hint    - Fire any special, else play the first hinted swap, else shuffle
  random  - Try a random neighbouring swap, shuffle when the board is stuck

Examples:
  match3 sim
  match3 sim --games 50 --seed 7
  match3 sim --strategy random --difficulty hard
  match3 sim --games 5 --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 10, "Number of games to play")
	simCmd.Flags().StringVar(&flagSimStrategy, "strategy", "hint", "Bot strategy: hint, random")
	simCmd.Flags().IntVar(&flagSimTurns, "max-turns", 5000, "Turn limit per game")
	simCmd.Flags().DurationVar(&flagSimThink, "think", 1500*time.Millisecond, "Simulated time between turns")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save results to the scores database as player \"sim\"")
}

// simRun is the outcome of one bot game.
type simRun struct {
	Seed     int64
	Score    int
	Level    int
	MaxCombo int
	Turns    int
	Moves    int
	Passes   int
	Specials int
	Fevers   int
	Crazies  int
	Shuffles int
	Finished bool // False when the turn limit stopped the game
}

func runSim(cmd *cobra.Command, args []string) {
	if flagSimStrategy != "hint" && flagSimStrategy != "random" {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", flagSimStrategy)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimRecord {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	opts := match3.OptionsFromConfig(loadConfig())
	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	fmt.Printf("Simulating %d games (%s, %s)\n", flagSimGames, flagSimStrategy, difficulty())
	fmt.Println()
	fmt.Printf("  %-20s  %-8s  %-5s  %-5s  %-5s  %-6s  %-8s  %-5s  %s\n",
		"Seed", "Score", "Level", "Combo", "Moves", "Passes", "Specials", "Fever", "Crazy")

	var total, best int
	for i := range flagSimGames {
		run, err := simulate(opts, base+int64(i), flagSimStrategy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mark := ""
		if !run.Finished {
			mark = " (turn limit)"
		}
		fmt.Printf("  %-20d  %-8d  %-5d  %-5d  %-5d  %-6d  %-8d  %-5d  %d%s\n",
			run.Seed, run.Score, run.Level, run.MaxCombo, run.Moves, run.Passes, run.Specials, run.Fevers, run.Crazies, mark)

		total += run.Score
		best = max(best, run.Score)
		if store != nil {
			record(store, run)
		}
	}

	if flagSimGames > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %d\n", best, total/flagSimGames)
	}
}

// simulate plays one game to the end with a manual clock, so fever and
// crazy windows depend only on the turn count.
func simulate(opts engine.Options, seed int64, strategy string) (simRun, error) {
	clock := engine.NewManualClock(time.Unix(0, 0))
	opts.Seed = seed
	opts.Source = nil
	opts.Clock = clock
	opts.Logger = logger.With("seed", seed)

	e, err := engine.New(opts)
	if err != nil {
		return simRun{}, err
	}

	run := simRun{Seed: seed}
	e.Subscribe(func(ev engine.Event) {
		switch ev := ev.(type) {
		case engine.MovesChanged:
			run.Moves++
		case engine.MatchesCleared:
			run.Passes++
		case engine.SpecialSpawned:
			run.Specials++
		case engine.FeverEntered:
			run.Fevers++
		case engine.CrazyEntered:
			run.Crazies++
		case engine.BoardRegenerated:
			if ev.Reason == engine.ReasonShuffle {
				run.Shuffles++
			}
		}
	})

	rng := rand.New(rand.NewSource(seed))
	for ; run.Turns < flagSimTurns && !e.Session().GameOver; run.Turns++ {
		clock.Advance(flagSimThink)
		if strategy == "random" {
			playRandom(e, rng)
		} else {
			playHint(e)
		}
	}

	s := e.Session()
	run.Score = s.Score
	run.Level = s.Level
	run.MaxCombo = s.MaxCombo
	run.Finished = s.GameOver
	return run, nil
}

// playHint fires the first special, else plays the hinted swap, else
// shuffles.
func playHint(e *engine.Engine) {
	if specials := e.Board().Find(engine.Cell.IsSpecial); len(specials) > 0 {
		e.Activate(specials[0])
		return
	}
	if a, b, ok := e.Hint(); ok {
		e.Swap(a, b)
		return
	}
	e.Shuffle()
}

// playRandom tries one random neighbouring swap; a rejected one still spends
// a move. A board with no swap left is shuffled.
func playRandom(e *engine.Engine, rng *rand.Rand) {
	if !e.HasMoves() {
		e.Shuffle()
		return
	}
	n := e.Options().Size
	a := engine.At(rng.Intn(n), rng.Intn(n))
	b := a.Add(0, 1)
	if rng.Intn(2) == 0 {
		b = a.Add(1, 0)
	}
	if b.Row >= n || b.Col >= n {
		return
	}
	e.Swap(a, b)
}

func record(store *storage.Store, run simRun) {
	if !run.Finished || run.Score == 0 {
		return
	}
	_, err := store.SaveResult(&storage.Result{
		GameID:     gameID,
		Player:     "sim",
		Score:      run.Score,
		Level:      run.Level,
		MaxCombo:   run.MaxCombo,
		Seed:       run.Seed,
		Difficulty: difficulty(),
	})
	if err != nil {
		logger.Warn("could not record run", "seed", run.Seed, "err", err)
	}
}
