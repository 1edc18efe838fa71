// tracker is a TUI attention game: follow the highlighted balls while they
// move, then click them once they stop.
//
// Usage:
//
//	tracker play              - Play in the terminal
//	tracker history <id>      - Show a player's attempt history
//	tracker export <id>       - Export a player's history as CSV
//	tracker serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.tracker/tracker.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Tracker - a perceptual attention game for your terminal",
	Long: `Tracker is a terminal game that tests how many moving balls you can
follow at once. Targets light up briefly, mix into the crowd, and after the
balls stop you click the ones you followed. Clear a level and the next one
adds more balls.

Available commands:
  play     - Play in the terminal
  history  - Show a player's attempt history
  export   - Export a player's history as CSV
  serve    - Start SSH server for remote play

Examples:
  tracker play
  tracker play --user 42
  tracker history 42
  tracker export 42
  tracker serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tracker/tracker.db", "Path to attempts database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}
