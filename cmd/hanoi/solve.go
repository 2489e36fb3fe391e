package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

// maxSolveDiscs keeps the printed solution to a readable length.
const maxSolveDiscs = 20

var flagQuiet bool

var solveCmd = &cobra.Command{
	Use:   "solve <discs>",
	Short: "Print the optimal move sequence",
	Long: `Print the shortest solution for the given number of discs and
verify it by replaying it on a fresh puzzle.

The target peg comes from session.target_peg in the config.

Examples:
  hanoi solve 3
  hanoi solve 10 --quiet`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Only print the move count")
}

func runSolve(_ *cobra.Command, args []string) {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > maxSolveDiscs {
		fmt.Fprintf(os.Stderr, "Error: disc count must be between 1 and %d, got %q\n", maxSolveDiscs, args[0])
		os.Exit(1)
	}

	cfg := loadConfig()
	target := cfg.Session.TargetPeg
	spare := hanoi.PegCount - target // pegs are 0, 1, 2 and the source is 0

	moves := hanoi.Solve(n, 0, target, spare)

	p := hanoi.MustNew(n)
	if bad := p.Replay(moves); bad >= 0 {
		fmt.Fprintf(os.Stderr, "Error: move %d (%s) was rejected\n", bad+1, moves[bad])
		os.Exit(1)
	}
	if !p.HasWon(target, n) {
		fmt.Fprintln(os.Stderr, "Error: solution does not finish the puzzle")
		os.Exit(1)
	}

	if !flagQuiet {
		for i, m := range moves {
			fmt.Printf("%4d. peg %d -> peg %d\n", i+1, m.From+1, m.To+1)
		}
		fmt.Println()
	}
	fmt.Printf("%d discs solved in %d moves (minimum %d)\n", n, p.Moves(), hanoi.MinMoves(n))
}
