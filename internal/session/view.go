package session

import (
	"time"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

// View is a read-only snapshot of everything a renderer needs for one frame.
type View struct {
	Phase     Phase
	DiscCount int
	TargetPeg int
	Pegs      [hanoi.PegCount][]hanoi.Disc
	Cursor    *Cursor
	Moves     int
	Elapsed   time.Duration
	Feedback  *Feedback
	Result    *Result
	Now       time.Time
}

// View captures the controller state as of now.
func (c *Controller) View(now time.Time) View {
	v := View{
		Phase:     c.phase,
		DiscCount: c.DiscCount(),
		TargetPeg: c.targetPeg,
		Pegs:      c.Pegs(),
		Moves:     c.Moves(),
		Elapsed:   c.Elapsed(now),
		Now:       now,
	}

	if cur, ok := c.Cursor(); ok {
		v.Cursor = &cur
	}
	if fb, ok := c.Feedback(); ok {
		v.Feedback = &fb
	}
	if res, ok := c.Result(); ok {
		v.Result = &res
	}
	return v
}

// FeedbackMessage returns the feedback text if it is still inside window.
func (v View) FeedbackMessage(window time.Duration) string {
	if v.Feedback == nil || !v.Feedback.Visible(v.Now, window) {
		return ""
	}
	return v.Feedback.Message
}

// Lifted reports whether the top disc of peg is currently picked up.
func (v View) Lifted(peg int) bool {
	return v.Cursor != nil && v.Cursor.Peg == peg
}
