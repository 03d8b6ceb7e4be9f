package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate maze files",
	Long: `Parse and validate maze files without playing them. Every problem in a
file is reported. Exits with status 1 if any file is invalid.

Examples:
  chase check ./my-maze.yaml
  chase check mazes/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		m, err := mazes.LoadFile(path)
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s\n", path)
			fmt.Printf("      %v\n", err)
			continue
		}
		rows, cols := m.Size()
		fmt.Printf("ok    %s  (%s, %dx%d, %d dots)\n", path, m.ID, cols, rows, m.Collectibles())
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d of %d maze files are invalid\n", failed, len(args))
		os.Exit(1)
	}
}
