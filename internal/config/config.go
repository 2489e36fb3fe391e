// Package config provides YAML-based configuration loading for the
// Tower of Hanoi task. Disc-count presets live here rather than in the
// puzzle model, which accepts any count of one or more.
package config

import (
	"fmt"
	"slices"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
}

// SessionConfig controls the task itself.
type SessionConfig struct {
	Presets            []int         `yaml:"presets"`
	FreeEntry          bool          `yaml:"free_entry"`
	MaxFreeEntry       int           `yaml:"max_free_entry"`
	TargetPeg          int           `yaml:"target_peg"`
	FeedbackWindow     time.Duration `yaml:"feedback_window"`
	IllegalMoveMessage string        `yaml:"illegal_move_message"`
}

// DisplayConfig controls the terminal front end.
type DisplayConfig struct {
	FPS       int  `yaml:"fps"`
	ShowHelp  bool `yaml:"show_help"`
	ShowTimer bool `yaml:"show_timer"`
}

// StorageConfig controls where finished trials are recorded.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// Validate checks the configuration for values the front end cannot use.
func (c Config) Validate() error {
	if len(c.Session.Presets) == 0 && !c.Session.FreeEntry {
		return fmt.Errorf("config: session.presets is empty and free_entry is off")
	}
	for _, n := range c.Session.Presets {
		if n < 1 {
			return fmt.Errorf("config: preset %d must be at least 1", n)
		}
	}
	if c.Session.FreeEntry && c.Session.MaxFreeEntry < 1 {
		return fmt.Errorf("config: max_free_entry must be at least 1, got %d", c.Session.MaxFreeEntry)
	}
	if c.Session.TargetPeg != 1 && c.Session.TargetPeg != 2 {
		return fmt.Errorf("config: target_peg must be 1 or 2, got %d", c.Session.TargetPeg)
	}
	if c.Session.FeedbackWindow <= 0 {
		return fmt.Errorf("config: feedback_window must be positive, got %s", c.Session.FeedbackWindow)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("config: display.fps must be positive, got %d", c.Display.FPS)
	}
	return nil
}

// Allows reports whether n may be chosen on the selection screen.
func (s SessionConfig) Allows(n int) bool {
	if n < 1 {
		return false
	}
	if slices.Contains(s.Presets, n) {
		return true
	}
	return s.FreeEntry && n <= s.MaxFreeEntry
}

// SortedPresets returns the presets in ascending order without duplicates.
func (s SessionConfig) SortedPresets() []int {
	out := slices.Clone(s.Presets)
	slices.Sort(out)
	return slices.Compact(out)
}
