// runner is an endless runner played in the terminal, locally or over SSH.
//
// Usage:
//
//	runner play [game]       - Start a run
//	runner menu              - Title menu with difficulty picker and scores
//	runner list              - List available games
//	runner scores [game]     - Show recorded runs
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.runner/scores.db)
//	--log-file <path>   - Write logs to a file (the TUI owns the terminal)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Endless runner for your terminal",
	Long: `An endless runner played in the terminal. Jump over cacti, crouch
under flying obstacles and see how far you get as the world speeds up.

Available commands:
  play     - Start a run directly
  menu     - Title menu with difficulty picker
  list     - Show all available games
  scores   - View recorded runs
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard
  runner play --config ./runner.yaml --watch
  runner serve --ssh :2222
  runner scores --plain`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// gameArg returns the game named on the command line, defaulting to the runner.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return runner.GameID
}
