package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/platform/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available mazes",
	Long:  `Shows the built-in mazes and any user mazes found in the maze directory.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "chase")
	if err != nil {
		fail("%v", err)
	}
	// Keep the listing clean; only problems are reported.
	if logger.GetLevel() < log.WarnLevel {
		logger.SetLevel(log.WarnLevel)
	}
	if _, err := prepare(logger, 0, 0); err != nil {
		fail("%v", err)
	}

	items := tui.MenuItems()
	if len(items) == 0 {
		fmt.Println("No mazes available.")
		return
	}

	fmt.Println("Available mazes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, item := range items {
		maxIDLen = max(maxIDLen, len(item.GameID))
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-4s  %s\n", maxIDLen, "ID", "Size", "Dots", "Name")
	fmt.Printf("  %-*s  %-7s  %-4s  %s\n", maxIDLen, "--", "----", "----", "----")

	for _, item := range items {
		size := fmt.Sprintf("%dx%d", item.Cols, item.Rows)
		fmt.Printf("  %-*s  %-7s  %-4d  %s\n", maxIDLen, item.GameID, size, item.Collectibles, item.Title)
	}

	fmt.Println()
	fmt.Println("Run 'chase play <id>' to play a maze.")
}
