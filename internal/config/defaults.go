package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hanoi.yaml
var defaultHanoiYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/hanoi.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			Presets:            []int{3, 5, 6, 7},
			FreeEntry:          false,
			MaxFreeEntry:       10,
			TargetPeg:          2,
			FeedbackWindow:     2 * time.Second,
			IllegalMoveMessage: "Can't move there!",
		},
		Display: DisplayConfig{
			FPS:       30,
			ShowHelp:  true,
			ShowTimer: true,
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.hanoi/results.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHanoiYAML
}
