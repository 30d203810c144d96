package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/paddlegames/tui-pong/internal/config"
	"github.com/paddlegames/tui-pong/internal/core"
	"github.com/paddlegames/tui-pong/internal/platform/tui"
	"github.com/paddlegames/tui-pong/internal/pong"
	"github.com/paddlegames/tui-pong/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play pong in the terminal",
	Long: `Start a local game.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle (two-player mode)
  P          - Pause
  R          - Abandon match, back to menu
  Enter      - Confirm menu selection
  Q/Ctrl+C   - Quit

The menu lets you pick the mode and difficulty; the flags below preselect
them so the match starts with your choice highlighted.

Examples:
  pong play
  pong play --mode 2p
  pong play --difficulty hard
  pong play --config ./my-pong.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "CPU difficulty preset: easy, medium, hard")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Player mode: 1p, 2p")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadPong(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.RunWithPreset(gameCfg, store, cfg, parseMode(flagMode), parseDifficulty(flagDifficulty))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// parseMode maps the --mode flag to a session mode, defaulting to one player.
func parseMode(s string) pong.Mode {
	if strings.EqualFold(s, "2p") {
		return pong.ModeTwoPlayer
	}
	return pong.ModeOnePlayer
}

// parseDifficulty maps the --difficulty flag to a preset, defaulting to medium.
func parseDifficulty(s string) pong.Difficulty {
	switch strings.ToLower(s) {
	case "easy":
		return pong.DifficultyEasy
	case "hard":
		return pong.DifficultyHard
	default:
		return pong.DifficultyMedium
	}
}
