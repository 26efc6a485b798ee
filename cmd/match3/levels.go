package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3-arcade/internal/games/match3"
)

var flagLevelsCount int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print level targets and move budgets",
	Long: `Print the score target and move budget of each level under the
effective configuration and difficulty.

Examples:
  match3 levels
  match3 levels --count 20 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelsCount, "count", 10, "Number of levels to print")
}

func runLevels(cmd *cobra.Command, args []string) {
	rules := match3.OptionsFromConfig(loadConfig()).Rules

	fmt.Printf("Levels - %s\n", difficulty())
	fmt.Println()
	fmt.Printf("  %-5s  %-8s  %s\n", "Level", "Target", "Moves")
	fmt.Printf("  %-5s  %-8s  %s\n", "-----", "------", "-----")
	for level := 1; level <= flagLevelsCount; level++ {
		fmt.Printf("  %-5d  %-8d  %d\n", level, rules.TargetForLevel(level), rules.MovesForLevel(level))
	}
}
