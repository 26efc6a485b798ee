package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3-arcade/internal/games/match3/layouts"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts [id]",
	Short: "List starting boards",
	Long: `List the starting boards in the --layouts directory, or print one.

Examples:
  match3 layouts
  match3 layouts specials
  match3 --layouts ./my-boards layouts`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLayouts,
}

func runLayouts(cmd *cobra.Command, args []string) {
	loader := layouts.NewLoader(flagLayoutsDir)

	if len(args) == 1 {
		l, err := loader.LoadByID(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if ids, idsErr := loader.ListIDs(); idsErr == nil && len(ids) > 0 {
				fmt.Fprintf(os.Stderr, "Available: %s\n", strings.Join(ids, ", "))
			}
			os.Exit(1)
		}
		fmt.Printf("%s (%s)\n", l.Name, l.FilePath)
		fmt.Println()
		for _, row := range l.Board.Rows() {
			fmt.Printf("  %s\n", row)
		}
		if hint := l.Metadata["hint"]; hint != "" {
			fmt.Println()
			fmt.Println(hint)
		}
		return
	}

	all, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layouts from %s: %v\n", flagLayoutsDir, err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Printf("No layouts in %s.\n", flagLayoutsDir)
		return
	}

	fmt.Printf("  %-12s  %-16s  %s\n", "ID", "Name", "Size")
	fmt.Printf("  %-12s  %-16s  %s\n", "--", "----", "----")
	for _, l := range all {
		n := l.Board.Size()
		fmt.Printf("  %-12s  %-16s  %dx%d\n", l.ID, l.Name, n, n)
	}
	fmt.Println()
	fmt.Println("Run 'match3 play --layout <file>' to start on one.")
}
