package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagEndless bool
	flagLevel   int
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Start a game of breakout in the terminal.

Controls:
  Left/Right, A/D  - Move paddle
  Space            - Launch the ball
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or over)
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  breakout play
  breakout play --endless
  breakout play --level 4 --difficulty hard
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode instead of the campaign")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Starting level (1-based)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your scores (default: current user)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	if flagLevel < 1 || flagLevel > breakout.LevelCount() {
		return fmt.Errorf("level must be between 1 and %d, got %d", breakout.LevelCount(), flagLevel)
	}

	opts := []breakout.Option{breakout.WithStartLevel(flagLevel - 1)}
	game := breakout.New(opts...)
	if flagEndless {
		game = breakout.NewEndless(opts...)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	player := flagPlayer
	if player == "" {
		player = playerName()
	}

	cmd.SilenceUsage = true
	if err := tui.Run(game, store, runtimeConfig(), player); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
