// Package session drives one participant through the Tower of Hanoi task:
// choose a disc count, solve the puzzle, see the results, start again.
//
// The Controller is synchronous and owns its puzzle exclusively. Hosts feed it
// decoded input (a chosen count, a clicked peg, a restart request) and read
// its state back for display; nothing in here touches the terminal.
package session

import (
	"time"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

// Phase is the top-level interaction state.
type Phase int

const (
	PhaseSelectingDiscCount Phase = iota
	PhasePlaying
	PhaseResults
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSelectingDiscCount:
		return "SelectingDiscCount"
	case PhasePlaying:
		return "Playing"
	case PhaseResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// DefaultFeedbackWindow is how long an illegal-move message stays on screen.
const DefaultFeedbackWindow = 2 * time.Second

// DefaultIllegalMoveMessage is shown when a move is rejected.
const DefaultIllegalMoveMessage = "Can't move there!"

// Cursor marks the disc currently picked up. Disc is always the top of Peg
// while the cursor is held.
type Cursor struct {
	Peg  int
	Disc hanoi.Disc
}

// Feedback is a transient advisory message and the moment it was raised.
type Feedback struct {
	Message string
	At      time.Time
}

// Age returns how long ago the feedback was raised.
func (f Feedback) Age(now time.Time) time.Duration {
	return now.Sub(f.At)
}

// Visible reports whether the message is still inside its display window.
func (f Feedback) Visible(now time.Time, window time.Duration) bool {
	if f.Message == "" {
		return false
	}
	return f.Age(now) < window
}

// Result is the outcome of one solved puzzle.
type Result struct {
	DiscCount  int
	Moves      int
	Elapsed    time.Duration
	StartedAt  time.Time
	FinishedAt time.Time
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)
