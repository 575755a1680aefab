package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paint-hit/internal/platform/tui"
	"github.com/vovakirdan/paint-hit/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top 10 high scores and per-mode run statistics.

Examples:
  painthit scores
  painthit scores -i          # Browse in an interactive table
  painthit scores --clear     # Delete every high score`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every high score")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("cannot open scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("High scores cleared.")
		return
	case flagInteractive:
		if err := tui.RunScoreboard(store); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	top, err := store.TopScores(0)
	if err != nil {
		store.Close()
		fail("cannot retrieve scores: %v", err)
	}

	fmt.Println("Top 10 High Scores")
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'painthit play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "----", "----", "-----", "----")
	for i, e := range top {
		fmt.Printf("  %-4d  %-20s  %-8d  %s\n", i+1, e.Name, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil || len(stats) == 0 {
		return
	}
	modes := make([]string, 0, len(stats))
	for mode := range stats {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-6s  %s\n", "Mode", "Runs", "Best", "Average")
	for _, mode := range modes {
		s := stats[mode]
		fmt.Printf("  %-8s  %-5d  %-6d  %.1f\n", s.Mode, s.Runs, s.BestScore, s.AvgScore)
	}
}
