package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paddlegames/tui-pong/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent match results",
	Long: `Display the most recent matches and overall win counts.

Examples:
  pong history
  pong history --limit 50`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of matches to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	matches, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' to record the first match!")
		return
	}

	fmt.Printf("  %-5s  %-8s  %-7s  %-6s  %-9s  %s\n", "Mode", "Level", "Score", "Winner", "Duration", "Date")
	fmt.Printf("  %-5s  %-8s  %-7s  %-6s  %-9s  %s\n", "----", "-----", "-----", "------", "--------", "----")

	for _, m := range matches {
		winner := "Left"
		if m.Winner == 2 {
			winner = "Right"
		}
		level := m.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-5s  %-8s  %2d:%-4d  %-6s  %7ds  %s\n",
			m.Mode, level, m.ScoreL, m.ScoreR, winner, m.DurationSecs,
			m.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Played: %d   Left wins: %d   Right wins: %d\n",
			stats.Played, stats.LeftWins, stats.RightWins)
	}
}
