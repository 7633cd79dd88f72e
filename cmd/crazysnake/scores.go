package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crazysnake/internal/platform/tui"
	"github.com/vovakirdan/crazysnake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best high score of each player profile.
The local player is stored as "local"; SSH players by user name.

Examples:
  crazysnake scores
  crazysnake scores --limit 5
  crazysnake scores --tui
  crazysnake scores --clear local`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of profiles to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().StringVar(&flagScoresClear, "clear", "", "Delete the high score of a profile")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear != "" {
		if err := store.ClearHighScore(flagScoresClear); err != nil {
			return err
		}
		fmt.Printf("Cleared high score for %q\n", flagScoresClear)
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - CrazySnake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crazysnake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "Rank", "Player", "Score", "Updated")
	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "----", "------", "-----", "-------")
	for i, entry := range scores {
		updated := "-"
		if !entry.UpdatedAt.IsZero() {
			updated = entry.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-20s  %-6d  %s\n", i+1, entry.Profile, entry.Score, updated)
	}
	return nil
}
