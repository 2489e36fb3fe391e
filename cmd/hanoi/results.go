package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagResultsDiscs int
	flagLimit        int
	flagBrowse       bool
	flagClear        bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded trials",
	Long: `Display recorded trials.

Without --discs a summary per disc count and the most recent trials are
printed. With --discs the fastest trials for that count are listed.

Examples:
  hanoi results
  hanoi results --discs 5 --limit 20
  hanoi results --browse
  hanoi results --clear --discs 3`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsDiscs, "discs", 0, "Only show trials with this many discs")
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of trials to list")
	resultsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive results board")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete trials (all, or only --discs)")
}

func runResults(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = clearResults(store)
	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunResultsBoard(store, width, height, flagResultsDiscs)
	case flagResultsDiscs > 0:
		err = printBestTrials(store, flagResultsDiscs, flagLimit)
	default:
		err = printSummary(store, flagLimit)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearResults(store *storage.Store) error {
	if err := store.ClearTrials(flagResultsDiscs); err != nil {
		return err
	}
	if flagResultsDiscs > 0 {
		fmt.Printf("Cleared trials with %d discs.\n", flagResultsDiscs)
	} else {
		fmt.Println("Cleared all trials.")
	}
	return nil
}

func printBestTrials(store *storage.Store, discs, limit int) error {
	trials, err := store.BestTrials(discs, limit)
	if err != nil {
		return err
	}

	fmt.Printf("Fastest trials - %d discs (minimum %d moves)\n", discs, hanoi.MinMoves(discs))
	fmt.Println()

	if len(trials) == 0 {
		fmt.Println("No trials recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'hanoi play --discs %d' to record the first one!\n", discs)
		return nil
	}

	printTrials(trials)

	stats, err := store.DiscStats(discs)
	if err != nil {
		return err
	}
	if stats != nil {
		fmt.Println()
		fmt.Printf("Trials: %d  Best: %.2f s  Avg: %.2f s  Avg moves: %.1f\n",
			stats.Trials, stats.BestElapsed.Seconds(), stats.AvgElapsed.Seconds(), stats.AvgMoves)
	}
	return nil
}

func printSummary(store *storage.Store, limit int) error {
	counts, err := store.PlayedDiscCounts()
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		fmt.Println("No trials recorded yet.")
		fmt.Println()
		fmt.Println("Run 'hanoi play' to record the first one!")
		return nil
	}

	fmt.Println("Summary")
	fmt.Println()
	fmt.Printf("  %-5s  %-6s  %-9s  %-9s  %-6s  %s\n", "Discs", "Trials", "Best (s)", "Avg (s)", "Fewest", "Last played")
	fmt.Printf("  %-5s  %-6s  %-9s  %-9s  %-6s  %s\n", "-----", "------", "--------", "-------", "------", "-----------")
	for _, n := range counts {
		stats, err := store.DiscStats(n)
		if err != nil {
			return err
		}
		if stats == nil {
			continue
		}
		fmt.Printf("  %-5d  %-6d  %-9.2f  %-9.2f  %-6d  %s\n",
			n, stats.Trials, stats.BestElapsed.Seconds(), stats.AvgElapsed.Seconds(),
			stats.FewestMoves, stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentTrials(limit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent trials")
	fmt.Println()
	printTrials(recent)
	return nil
}

func printTrials(trials []storage.Trial) {
	fmt.Printf("  %-4s  %-5s  %-9s  %-5s  %-12s  %s\n", "Rank", "Discs", "Time (s)", "Moves", "Participant", "Date")
	fmt.Printf("  %-4s  %-5s  %-9s  %-5s  %-12s  %s\n", "----", "-----", "--------", "-----", "-----------", "----")
	for i, t := range trials {
		participant := t.Participant
		if participant == "" {
			participant = "-"
		}
		fmt.Printf("  %-4d  %-5d  %-9.2f  %-5d  %-12s  %s\n",
			i+1, t.DiscCount, t.Elapsed.Seconds(), t.Moves, participant,
			t.FinishedAt.Local().Format("2006-01-02 15:04"))
	}
}
