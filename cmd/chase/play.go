package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
	"github.com/vovakirdan/tui-chase/internal/platform/tui"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [maze|file]",
	Short: "Play a maze",
	Long: `Start playing the given maze. The argument is a maze ID from 'chase list'
or the path to a maze file. Without an argument the classic maze is played.

Controls:
  Arrows/WASD/hjkl  - Steer
  R                 - Restart (after the round ends)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower player and pursuer
  normal - Configured speeds
  hard   - Faster player and pursuer
  fixed  - Configured speeds, ignoring presets

Examples:
  chase play
  chase play arena
  chase play crossroads --difficulty hard
  chase play ./my-maze.yaml --config ./my-chase.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	target := mazes.DefaultID
	if len(args) == 1 {
		target = args[0]
	}

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
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := prepare(logger, width, height)
	if err != nil {
		fail("%v", err)
	}

	game, err := resolveGame(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'chase list' to see available mazes.")
		os.Exit(1)
	}
	logger.Info("maze loaded", "maze", game.ID(), "title", game.Title())

	if err := tui.Run(game, cfg, logger); err != nil {
		fail("running game: %v", err)
	}
}

// resolveGame creates the game for a registered maze ID or a maze file path.
func resolveGame(target string) (registry.Game, error) {
	if registry.Exists(target) {
		return registry.Create(target)
	}

	if !mazes.IsMazeFile(target) {
		return nil, fmt.Errorf("unknown maze %q", target)
	}
	m, err := mazes.LoadFile(target)
	if err != nil {
		return nil, err
	}
	return chase.New(m)
}
