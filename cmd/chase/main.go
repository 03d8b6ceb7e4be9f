// chase is a terminal maze chase game: collect every dot before the pursuer
// catches you.
//
// Usage:
//
//	chase list               - List available mazes
//	chase play [maze|file]   - Play a maze (default: classic)
//	chase menu               - Pick mazes interactively
//	chase check <file>...    - Validate maze files
//	chase serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--mazes <dir>        - Directory of user maze files
//	--log-level <level>  - Log level (default: info)
//	--log-file <path>    - Log file for local play (default: ~/.chase/chase.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagMazesDir   string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Chase - collect the dots, dodge the pursuer",
	Long: `Chase is a terminal maze game. Steer through the maze, collect every
dot and stay away from the pursuer.

Available commands:
  list     - Show all available mazes
  play     - Play a maze directly
  menu     - Interactive maze picker
  check    - Validate maze files
  serve    - Start SSH server for remote play

Examples:
  chase list
  chase play
  chase play arena --difficulty hard
  chase play ./my-maze.yaml
  chase menu --mazes ~/mazes
  chase serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagMazesDir, "mazes", "", "Directory of user maze files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for local play (default: ~/.chase/chase.log)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
