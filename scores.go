package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the best runs",
	Long: `Display the top 10 runs, optionally only those that ended on a level.

Examples:
  platformer scores
  platformer scores 1-2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	level := ""
	if len(args) > 0 {
		level = levels.Trim(args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(level, 10)
	if err != nil {
		return err
	}

	if level == "" {
		fmt.Println("High Scores")
	} else {
		fmt.Printf("High Scores - %s\n", level)
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Coins", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")
	for i, e := range scores {
		lvl := e.Run.Level
		if e.Run.Cleared {
			lvl += "*"
		}
		fmt.Printf("  %-4d  %-10s  %-8d  %-6s  %-5d  %s\n",
			i+1, e.Run.Player, e.Run.Score, lvl, e.Run.Coins, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  (* cleared the game)\n", best)
	}
	return nil
}
