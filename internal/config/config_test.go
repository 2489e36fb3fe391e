package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults = %+v\nhardcoded = %+v", cfg, DefaultConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte(`
session:
  presets: [4, 8]
  feedback_window: 1500ms
display:
  fps: 60
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if !reflect.DeepEqual(cfg.Session.Presets, []int{4, 8}) {
		t.Errorf("Presets = %v, want [4 8]", cfg.Session.Presets)
	}
	if cfg.Session.FeedbackWindow != 1500*time.Millisecond {
		t.Errorf("FeedbackWindow = %v, want 1.5s", cfg.Session.FeedbackWindow)
	}
	if cfg.Display.FPS != 60 {
		t.Errorf("FPS = %d, want 60", cfg.Display.FPS)
	}
	// Untouched keys keep their defaults
	if cfg.Session.TargetPeg != 2 || cfg.Storage.DBPath != "~/.hanoi/results.db" {
		t.Errorf("defaults lost: target=%d db=%q", cfg.Session.TargetPeg, cfg.Storage.DBPath)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "session: [", ""},
		{"zero preset", "session:\n  presets: [0, 3]", "preset 0"},
		{"empty presets", "session:\n  presets: []", "presets is empty"},
		{"target peg zero", "session:\n  target_peg: 0", "target_peg"},
		{"target peg three", "session:\n  target_peg: 3", "target_peg"},
		{"negative window", "session:\n  feedback_window: -1s", "feedback_window"},
		{"zero fps", "display:\n  fps: 0", "fps"},
		{"free entry without max", "session:\n  free_entry: true\n  max_free_entry: 0", "max_free_entry"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tc.wantErr != "" && !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("session:\n  target_peg: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Session.TargetPeg != 1 {
		t.Errorf("TargetPeg = %d, want 1", cfg.Session.TargetPeg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() with missing custom path should fail")
	}
}

func TestLoadFallsBackToValidConfig(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
}

func TestAllows(t *testing.T) {
	presetsOnly := DefaultConfig().Session
	free := presetsOnly
	free.FreeEntry = true
	free.MaxFreeEntry = 9

	tests := []struct {
		name     string
		cfg      SessionConfig
		n        int
		expected bool
	}{
		{"preset", presetsOnly, 5, true},
		{"not a preset", presetsOnly, 4, false},
		{"zero", presetsOnly, 0, false},
		{"free entry in range", free, 4, true},
		{"free entry over max", free, 12, false},
		{"free entry negative", free, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Allows(tc.n); got != tc.expected {
				t.Errorf("Allows(%d) = %v, want %v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestSortedPresets(t *testing.T) {
	s := SessionConfig{Presets: []int{7, 3, 5, 3}}
	if got := s.SortedPresets(); !reflect.DeepEqual(got, []int{3, 5, 7}) {
		t.Errorf("SortedPresets() = %v, want [3 5 7]", got)
	}
	if !reflect.DeepEqual(s.Presets, []int{7, 3, 5, 3}) {
		t.Error("SortedPresets() modified the original slice")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.hanoi/results.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".hanoi", "results.db") {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
