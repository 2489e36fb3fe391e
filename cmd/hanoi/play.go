package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
)

var (
	flagDiscs       int
	flagParticipant string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the task in this terminal",
	Long: `Start the Tower of Hanoi task.

Pick a disc count from the menu, then move the whole stack to the
rightmost peg. The clock starts when the puzzle appears and stops on
the move that completes it.

Controls:
  3/5/6/7       - Choose disc count (menu)
  1/2/3         - Select a peg
  Left/Right    - Move peg focus
  Space/Enter   - Lift or drop on the focused peg
  Mouse click   - Select a peg or menu button
  Space         - Play again (results screen)
  Ctrl+S        - Save a screenshot
  Esc/Q         - Quit

Examples:
  hanoi play
  hanoi play --discs 5
  hanoi play --participant p07 --log-file ./hanoi.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagDiscs, "discs", 0, "Start directly with this many discs (must be an allowed count)")
	playCmd.Flags().StringVar(&flagParticipant, "participant", "", "Name stored with recorded trials (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	if flagDiscs != 0 && !cfg.Session.Allows(flagDiscs) {
		fmt.Fprintf(os.Stderr, "Error: %d discs is not an allowed count (presets: %v)\n",
			flagDiscs, cfg.Session.SortedPresets())
		os.Exit(1)
	}

	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	participant := flagParticipant
	if participant == "" {
		if u, err := user.Current(); err == nil {
			participant = u.Username
		}
	}

	store := openStore(cfg, logger)

	summary, runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Display.FPS,
		},
		Logger:       logger,
		Store:        store,
		Participant:  participant,
		InitialDiscs: flagDiscs,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running task: %v\n", runErr)
		os.Exit(1)
	}

	logger.Info("session finished", "completed", summary.Completed, "duration", summary.Duration)
	if summary.Completed > 0 {
		fmt.Printf("Solved %d puzzle(s).", summary.Completed)
		if summary.SessionID != "" {
			fmt.Printf(" Session %s", summary.SessionID)
		}
		fmt.Println()
	}
}
