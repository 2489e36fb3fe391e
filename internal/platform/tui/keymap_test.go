package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/session"
)

// keyPress builds the key message Bubble Tea would deliver for s.
func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func presetTranslator() keyTranslator {
	cfg := config.DefaultConfig().Session
	return newKeyTranslator(DefaultKeyMap(), cfg.Allows, false)
}

func TestTranslateSelecting(t *testing.T) {
	tr := presetTranslator()

	tests := []struct {
		name     string
		key      string
		expected session.Event
	}{
		{"preset 3", "3", session.ChooseDiscCount(3)},
		{"preset 7", "7", session.ChooseDiscCount(7)},
		{"not a preset", "4", session.Event{}},
		{"zero", "0", session.Event{}},
		{"letter", "x", session.Event{}},
		{"space", " ", session.Event{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, action := tr.translate(keyPress(tc.key), session.PhaseSelectingDiscCount, 0)
			if ev != tc.expected {
				t.Errorf("Translate(%q) = %v, want %v", tc.key, ev, tc.expected)
			}
			if action != keyNone {
				t.Errorf("Translate(%q) action = %d, want none", tc.key, action)
			}
		})
	}
}

func TestTranslateSelectingFreeEntry(t *testing.T) {
	cfg := config.DefaultConfig().Session
	cfg.FreeEntry = true
	tr := newKeyTranslator(DefaultKeyMap(), cfg.Allows, true)

	tests := []struct {
		key    string
		action keyAction
	}{
		{"4", keyEntryDigit},
		{"0", keyEntryDigit},
		{"backspace", keyEntryErase},
		{"enter", keyEntrySubmit},
		{"x", keyNone},
	}

	for _, tc := range tests {
		ev, action := tr.translate(keyPress(tc.key), session.PhaseSelectingDiscCount, 0)
		if action != tc.action {
			t.Errorf("Translate(%q) action = %d, want %d", tc.key, action, tc.action)
		}
		if ev.Kind != session.EventNone {
			t.Errorf("Translate(%q) = %v, free entry digits should not start a puzzle directly", tc.key, ev)
		}
	}
}

func TestTranslatePlaying(t *testing.T) {
	tr := presetTranslator()

	tests := []struct {
		name     string
		key      string
		focus    int
		expected session.Event
		action   keyAction
	}{
		{"peg 1", "1", 0, session.ClickPeg(0), keyNone},
		{"peg 3", "3", 0, session.ClickPeg(2), keyNone},
		{"peg 4 does not exist", "4", 0, session.Event{}, keyNone},
		{"space clicks focus", " ", 1, session.ClickPeg(1), keyNone},
		{"enter clicks focus", "enter", 2, session.ClickPeg(2), keyNone},
		{"focus out of range is clamped", " ", 9, session.ClickPeg(2), keyNone},
		{"left", "left", 0, session.Event{}, keyFocusLeft},
		{"vim right", "l", 0, session.Event{}, keyFocusRight},
		{"restart key ignored", "r", 0, session.Event{}, keyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, action := tr.translate(keyPress(tc.key), session.PhasePlaying, tc.focus)
			if ev != tc.expected || action != tc.action {
				t.Errorf("Translate(%q) = (%v, %d), want (%v, %d)", tc.key, ev, action, tc.expected, tc.action)
			}
		})
	}
}

func TestTranslateResults(t *testing.T) {
	tr := presetTranslator()

	for _, k := range []string{" ", "enter", "r"} {
		if ev, _ := tr.translate(keyPress(k), session.PhaseResults, 0); ev != session.Restart() {
			t.Errorf("Translate(%q) in results = %v, want Restart", k, ev)
		}
	}
	if ev, _ := tr.translate(keyPress("1"), session.PhaseResults, 0); ev.Kind != session.EventNone {
		t.Errorf("peg key in results = %v, want none", ev)
	}
}

func TestTranslateGlobalKeys(t *testing.T) {
	tr := presetTranslator()
	phases := []session.Phase{session.PhaseSelectingDiscCount, session.PhasePlaying, session.PhaseResults}

	for _, phase := range phases {
		for _, k := range []string{"esc", "q", "ctrl+c"} {
			ev, action := tr.translate(keyPress(k), phase, 0)
			if ev != session.Cancel() || action != keyQuit {
				t.Errorf("Translate(%q) in %v = (%v, %d), want Cancel/quit", k, phase, ev, action)
			}
		}
		if _, action := tr.translate(keyPress("ctrl+s"), phase, 0); action != keyScreenshot {
			t.Errorf("ctrl+s in %v action = %d, want screenshot", phase, action)
		}
	}
}

func TestPhaseKeysHelp(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name  string
		pk    phaseKeys
		count int
	}{
		{"selecting presets", phaseKeys{keys: keys, phase: session.PhaseSelectingDiscCount}, 2},
		{"selecting free entry", phaseKeys{keys: keys, phase: session.PhaseSelectingDiscCount, freeEntry: true}, 4},
		{"playing", phaseKeys{keys: keys, phase: session.PhasePlaying}, 5},
		{"results", phaseKeys{keys: keys, phase: session.PhaseResults}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(tc.pk.ShortHelp()); got != tc.count {
				t.Errorf("ShortHelp() has %d bindings, want %d", got, tc.count)
			}
			if got := len(tc.pk.FullHelp()); got != 2 {
				t.Errorf("FullHelp() has %d groups, want 2", got)
			}
		})
	}
}
