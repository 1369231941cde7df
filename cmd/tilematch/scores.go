package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akarpenko/tilematch/internal/registry"
	"github.com/akarpenko/tilematch/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode. For the duel
mode this also shows the aggregate win/loss record against the CPU.

Examples:
  tilematch scores match
  tilematch scores match_duel`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilematch list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tilematch play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	// Duel record and recent duels
	if gameID == "match_duel" {
		rec, err := store.GetDuelRecord()
		if err == nil {
			fmt.Printf("Record vs CPU: %dW %dL %dD\n", rec.Wins, rec.Losses, rec.Draws)
		}

		recent, err := store.RecentDuels(5)
		if err == nil && len(recent) > 0 {
			fmt.Println()
			fmt.Println("Recent duels:")
			for _, d := range recent {
				fmt.Printf("  %s  you %d - %d cpu  (%s)\n",
					d.CreatedAt.Format("2006-01-02 15:04"),
					d.PlayerScore, d.CPUScore, d.Winner)
			}
		}
	}
}
