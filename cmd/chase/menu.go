package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chase/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a maze picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a maze.
Press Esc or B during a round to return to the picker.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select maze
  Q            - Quit

Examples:
  chase menu
  chase menu --difficulty easy
  chase menu --mazes ./mazes`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logFile, err := openLogFile()
	if err != nil {
		fail("opening log file: %v", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "chase")
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := prepare(logger, width, height)
	if err != nil {
		fail("%v", err)
	}

	if err := tui.RunSession(cfg, logger); err != nil {
		fail("%v", err)
	}
}
