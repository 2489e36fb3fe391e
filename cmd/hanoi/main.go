// hanoi is a timed Tower of Hanoi task for the terminal.
//
// Usage:
//
//	hanoi play [--discs N]     - Run the task locally
//	hanoi serve                - Serve the task over SSH
//	hanoi results              - Show recorded trials
//	hanoi solve <discs>        - Print the optimal solution
//
// Global flags:
//
//	--config <path>     - Custom YAML config
//	--db <path>         - Results database (default: from config)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Tower of Hanoi - a timed puzzle task in your terminal",
	Long: `Move a stack of discs from the leftmost peg to the rightmost peg,
one disc at a time, never placing a larger disc on a smaller one.
Every solved puzzle is timed and recorded.

Available commands:
  play     - Run the task in this terminal
  serve    - Start SSH server for remote participants
  results  - View recorded trials
  solve    - Print the optimal move sequence

Examples:
  hanoi play
  hanoi play --discs 5
  hanoi serve --ssh :2222
  hanoi results --discs 3
  hanoi solve 4`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default: storage.db_path from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(solveCmd)
}

// loadConfig loads the config selected by --config, exiting on error.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback, which is io.Discard while a TUI owns the terminal.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err == nil {
			var f *os.File
			f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hanoi",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger, closeFn
}

// dbPath returns --db if set, otherwise the configured path.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DBPath
}

// openStore opens the results database for recording. Recording is
// best-effort: a failure is reported and the task runs without it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	if !cfg.Storage.Enabled {
		return nil
	}
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("running without trial recording", "error", err)
		return nil
	}
	return store
}
