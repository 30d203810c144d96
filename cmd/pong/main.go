// pong is a terminal pong game with power-ups and a CPU opponent.
//
// Usage:
//
//	pong play              - Play locally in the terminal
//	pong serve             - Start SSH server for remote play
//	pong history           - Show recent match results
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 120)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pong/matches.db)
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
	Use:   "pong",
	Short: "Pong - the classic paddle game in your terminal",
	Long: `Pong is a terminal rendition of the classic two-paddle game, with
power-ups, particles, and a predictive CPU opponent.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  history  - View recent match results

Examples:
  pong play
  pong play --mode 2p
  pong play --difficulty hard
  pong serve --ssh :2222
  pong history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 120, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/matches.db", "Path to match database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
