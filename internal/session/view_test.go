package session

import (
	"testing"
	"time"
)

func TestFeedbackVisible(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fb := Feedback{Message: "nope", At: at}

	tests := []struct {
		name     string
		after    time.Duration
		expected bool
	}{
		{"immediately", 0, true},
		{"inside window", 1999 * time.Millisecond, true},
		{"at window edge", 2 * time.Second, false},
		{"long after", time.Minute, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fb.Visible(at.Add(tc.after), DefaultFeedbackWindow); got != tc.expected {
				t.Errorf("Visible() = %v, want %v", got, tc.expected)
			}
		})
	}

	if (Feedback{At: at}).Visible(at, DefaultFeedbackWindow) {
		t.Error("empty message should never be visible")
	}
}

func TestViewSnapshot(t *testing.T) {
	c, clock := newPlaying(t, 3)
	c.ClickPeg(0)
	clock.Advance(1500 * time.Millisecond)

	v := c.View(clock.Now())
	if v.Phase != PhasePlaying || v.DiscCount != 3 {
		t.Errorf("View phase/discs = %v/%d", v.Phase, v.DiscCount)
	}
	if v.Elapsed != 1500*time.Millisecond {
		t.Errorf("View.Elapsed = %v, want 1.5s", v.Elapsed)
	}
	if !v.Lifted(0) || v.Lifted(1) {
		t.Error("Lifted() should report only peg 0")
	}
	if v.Result != nil {
		t.Error("View.Result should be nil while playing")
	}

	// The snapshot is a copy.
	v.Pegs[0][0] = 42
	if c.Pegs()[0][0] != 3 {
		t.Error("mutating the view changed the controller")
	}
}

func TestViewFeedbackExpires(t *testing.T) {
	c, clock := newPlaying(t, 3)
	c.ClickPeg(0)
	c.ClickPeg(1) // legal, peg1=[1]
	c.ClickPeg(0)
	c.ClickPeg(1) // illegal

	if msg := c.View(clock.Now()).FeedbackMessage(DefaultFeedbackWindow); msg != DefaultIllegalMoveMessage {
		t.Errorf("FeedbackMessage() = %q, want %q", msg, DefaultIllegalMoveMessage)
	}

	clock.Advance(DefaultFeedbackWindow)
	if msg := c.View(clock.Now()).FeedbackMessage(DefaultFeedbackWindow); msg != "" {
		t.Errorf("FeedbackMessage() after window = %q, want empty", msg)
	}
}

func TestViewResults(t *testing.T) {
	c, clock := newPlaying(t, 1)
	clock.Advance(2 * time.Second)
	c.ClickPeg(0)
	c.ClickPeg(2)

	v := c.View(clock.Now())
	if v.Phase != PhaseResults || v.Result == nil {
		t.Fatalf("View = %+v, want Results with result", v)
	}
	if v.Result.Moves != 1 || v.Result.Elapsed != 2*time.Second {
		t.Errorf("View.Result = %+v", v.Result)
	}
}
