package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ndsweeper/internal/registry"
	"github.com/vovakirdan/ndsweeper/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show best times",
	Long: `Display the ten fastest wins for a preset, or a summary of every
preset played when no preset is given.

Examples:
  ndsweeper scores
  ndsweeper scores cube
  ndsweeper scores cube --recent
  ndsweeper scores cube --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest games instead of the best times")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every result of the preset")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer closeStore(store)

	if len(args) == 0 {
		if flagRecent || flagClear {
			fmt.Fprintln(os.Stderr, "Error: --recent and --clear need a preset")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	presetID := args[0]
	title := presetID
	if game, err := registry.Create(presetID); err == nil {
		title = game.Title()
	}

	if flagClear {
		if err := store.ClearResults(presetID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %s.\n", title)
		return
	}

	var results []storage.Result
	if flagRecent {
		fmt.Printf("Recent Games - %s\n\n", title)
		results, err = store.RecentResults(presetID, 10)
	} else {
		fmt.Printf("Best Times - %s\n\n", title)
		results, err = store.BestTimes(presetID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ndsweeper play %s' to set the first time!\n", presetID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %-6s  %s\n", "#", "Time", "Moves", "Result", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %-6s  %s\n", "-", "----", "-----", "------", "----", "----")
	for i, r := range results {
		outcome := "won"
		if !r.Won {
			outcome = fmt.Sprintf("%.0f%%", r.Progress()*100)
		}
		fmt.Printf("  %-4d  %-8s  %-6d  %-8s  %-6d  %s\n",
			i+1, formatTime(r.Duration), r.Moves, outcome, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(presetID); err == nil {
		fmt.Println()
		fmt.Printf("Played %d, won %d (%.0f%%)\n", stats.Played, stats.Wins, stats.WinRate()*100)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-5s  %-8s  %s\n", "Preset", "Played", "Won", "Best", "Last played")
	fmt.Printf("  %-16s  %-6s  %-5s  %-8s  %s\n", "------", "------", "---", "----", "-----------")
	for _, id := range ids {
		s := all[id]
		best := "-"
		if s.BestTime > 0 {
			best = formatTime(s.BestTime)
		}
		fmt.Printf("  %-16s  %-6d  %-5d  %-8s  %s\n", id, s.Played, s.Wins, best, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func formatTime(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	return fmt.Sprintf("%d:%04.1f", int(d.Minutes()), (d % time.Minute).Seconds())
}
