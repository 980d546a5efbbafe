package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sidescroller/internal/adventure"
	"github.com/vovakirdan/tui-sidescroller/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the best finished runs, highest score first.

Examples:
  sidescroller scores
  sidescroller scores --limit 25
  sidescroller scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		n, err := store.ClearRuns(adventure.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d runs.\n", n)
		return nil
	}

	runs, err := store.TopRuns(adventure.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", adventure.Title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'sidescroller play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %-9s  %s\n", "Rank", "Player", "Score", "Level", "Outcome", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %-9s  %s\n", "----", "------", "-----", "-----", "-------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-12.12s  %-8d  %-5d  %-9s  %s\n",
			i+1, r.Player, r.Score, r.Level, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(adventure.ID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Runs: %d  Completed: %d  Average: %.0f\n",
			stats.HighScore, stats.Runs, stats.Completed, stats.AvgScore)
	}
	return nil
}
