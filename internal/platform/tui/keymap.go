package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/session"
)

// KeyMap defines the key bindings for the task screen.
// Which bindings are active depends on the session phase.
type KeyMap struct {
	Digit      key.Binding // Disc count while selecting
	Submit     key.Binding // Confirm a typed disc count
	Erase      key.Binding // Delete a typed digit
	Peg        key.Binding // 1-3 select a peg directly
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding // Click the focused peg
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "discs"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Peg: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1-3", "peg"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev peg"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next peg"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "lift/drop"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" ", "enter", "r"),
			key.WithHelp("space", "play again"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// phaseKeys adapts a KeyMap to help.KeyMap for one phase.
type phaseKeys struct {
	keys      KeyMap
	phase     session.Phase
	freeEntry bool
}

// ShortHelp returns key bindings for the short help view.
func (p phaseKeys) ShortHelp() []key.Binding {
	switch p.phase {
	case session.PhasePlaying:
		return []key.Binding{p.keys.Peg, p.keys.Left, p.keys.Right, p.keys.Select, p.keys.Quit}
	case session.PhaseResults:
		return []key.Binding{p.keys.Restart, p.keys.Quit}
	default:
		if p.freeEntry {
			return []key.Binding{p.keys.Digit, p.keys.Submit, p.keys.Erase, p.keys.Quit}
		}
		return []key.Binding{p.keys.Digit, p.keys.Quit}
	}
}

// FullHelp returns key bindings for the full help view.
func (p phaseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp(), {p.keys.Screenshot}}
}

// keyAction is what a key press asks the model to do besides session events.
type keyAction int

const (
	keyNone keyAction = iota
	keyQuit
	keyScreenshot
	keyFocusLeft
	keyFocusRight
	keyEntryDigit
	keyEntryErase
	keyEntrySubmit
)

// keyTranslator turns key presses into session events for the current phase.
type keyTranslator struct {
	keys      KeyMap
	allows    func(int) bool
	freeEntry bool
}

// newKeyTranslator creates a translator. allows decides which disc counts
// the menu accepts; freeEntry switches digits from instant presets to a
// typed number confirmed with Enter.
func newKeyTranslator(keys KeyMap, allows func(int) bool, freeEntry bool) keyTranslator {
	return keyTranslator{keys: keys, allows: allows, freeEntry: freeEntry}
}

// translate maps msg to a session event, a host action, or both.
// focus is the keyboard-selected peg used by Select.
func (t keyTranslator) translate(msg tea.KeyMsg, phase session.Phase, focus int) (session.Event, keyAction) {
	switch {
	case key.Matches(msg, t.keys.Quit):
		return session.Cancel(), keyQuit
	case key.Matches(msg, t.keys.Screenshot):
		return session.Event{}, keyScreenshot
	}

	switch phase {
	case session.PhaseSelectingDiscCount:
		return t.translateSelecting(msg)
	case session.PhasePlaying:
		return t.translatePlaying(msg, focus)
	case session.PhaseResults:
		if key.Matches(msg, t.keys.Restart) {
			return session.Restart(), keyNone
		}
	}
	return session.Event{}, keyNone
}

func (t keyTranslator) translateSelecting(msg tea.KeyMsg) (session.Event, keyAction) {
	if t.freeEntry {
		switch {
		case key.Matches(msg, t.keys.Digit):
			return session.Event{}, keyEntryDigit
		case key.Matches(msg, t.keys.Erase):
			return session.Event{}, keyEntryErase
		case key.Matches(msg, t.keys.Submit):
			return session.Event{}, keyEntrySubmit
		}
		return session.Event{}, keyNone
	}

	if !key.Matches(msg, t.keys.Digit) {
		return session.Event{}, keyNone
	}
	n, err := strconv.Atoi(msg.String())
	if err != nil || t.allows == nil || !t.allows(n) {
		return session.Event{}, keyNone
	}
	return session.ChooseDiscCount(n), keyNone
}

func (t keyTranslator) translatePlaying(msg tea.KeyMsg, focus int) (session.Event, keyAction) {
	switch {
	case key.Matches(msg, t.keys.Peg):
		n, _ := strconv.Atoi(msg.String())
		return session.ClickPeg(n - 1), keyNone
	case key.Matches(msg, t.keys.Left):
		return session.Event{}, keyFocusLeft
	case key.Matches(msg, t.keys.Right):
		return session.Event{}, keyFocusRight
	case key.Matches(msg, t.keys.Select):
		return session.ClickPeg(clampPeg(focus)), keyNone
	}
	return session.Event{}, keyNone
}

// clampPeg keeps a focus index on an existing peg.
func clampPeg(peg int) int {
	return core.Clamp(peg, 0, hanoi.PegCount-1)
}
