package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagLimit        int
	flagClear        bool
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for a mode (default: breakout).

Examples:
  breakout scores
  breakout scores breakout_endless --limit 20
  breakout scores --player alice
  breakout scores breakout --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score for the mode")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show scores of this player")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "breakout"
	if len(args) == 1 {
		gameID = args[0]
	}

	mode, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 'breakout modes' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	p := message.NewPrinter(language.English)

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		p.Fprintf(out, "Cleared scores for %s\n", mode.Title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(gameID, flagScoresPlayer, flagLimit)
	} else {
		scores, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	p.Fprintf(out, "High Scores - %s\n\n", mode.Title)

	if len(scores) == 0 {
		p.Fprintln(out, "No scores recorded yet.")
		p.Fprintln(out)
		p.Fprintf(out, "Play 'breakout play' to set the first high score!\n")
		return nil
	}

	p.Fprintf(out, "  %-4s  %-12s  %10s  %5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	p.Fprintf(out, "  %-4s  %-12s  %10s  %5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		p.Fprintf(out, "  %-4d  %-12s  %10d  %5d  %s\n",
			i+1, player, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.Stats(gameID); err == nil {
		p.Fprintf(out, "\nGames: %d  Best: %d  Average: %.1f  Players: %d\n",
			st.Games, st.Best, st.Average, st.Players)
	}
	return nil
}
