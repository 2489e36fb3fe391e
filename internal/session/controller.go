package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
)

// Controller runs the SelectingDiscCount -> Playing -> Results state machine.
// Input that does not match a transition is ignored without error.
type Controller struct {
	clock       Clock
	logger      *log.Logger
	targetPeg   int
	illegalMsg  string
	onFinish    func(Result)
	phase       Phase
	puzzle      *hanoi.Puzzle
	cursor      *Cursor
	startedAt   time.Time
	finishedAt  time.Time
	elapsed     time.Duration
	feedback    *Feedback
	done        bool
	puzzlesDone int
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.clock = c
		}
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *log.Logger) Option {
	return func(ctl *Controller) {
		if l != nil {
			ctl.logger = l
		}
	}
}

// WithTargetPeg sets the peg that must receive every disc. Peg 0 holds the
// starting stack and is not accepted.
func WithTargetPeg(peg int) Option {
	return func(ctl *Controller) {
		if peg > 0 && peg < hanoi.PegCount {
			ctl.targetPeg = peg
		}
	}
}

// WithIllegalMoveMessage sets the feedback text for rejected moves.
func WithIllegalMoveMessage(msg string) Option {
	return func(ctl *Controller) {
		if msg != "" {
			ctl.illegalMsg = msg
		}
	}
}

// WithFinishHook registers fn to be called once each time a puzzle is solved.
func WithFinishHook(fn func(Result)) Option {
	return func(ctl *Controller) {
		ctl.onFinish = fn
	}
}

// New creates a controller waiting for a disc count.
func New(opts ...Option) *Controller {
	c := &Controller{
		clock:      SystemClock,
		logger:     log.New(io.Discard),
		targetPeg:  hanoi.TargetPeg,
		illegalMsg: DefaultIllegalMoveMessage,
		phase:      PhaseSelectingDiscCount,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle dispatches a decoded input event.
// Only a disc count below one produces an error.
func (c *Controller) Handle(ev Event) error {
	switch ev.Kind {
	case EventChooseDiscCount:
		return c.ChooseDiscCount(ev.Value)
	case EventClickPeg:
		c.ClickPeg(ev.Value)
	case EventRestart:
		c.Restart()
	case EventCancel:
		c.Cancel()
	}
	return nil
}

// ChooseDiscCount starts a fresh puzzle with n discs.
// It is ignored outside SelectingDiscCount.
func (c *Controller) ChooseDiscCount(n int) error {
	if c.done || c.phase != PhaseSelectingDiscCount {
		return nil
	}

	p, err := hanoi.New(n)
	if err != nil {
		return err
	}

	c.puzzle = p
	c.cursor = nil
	c.feedback = nil
	c.elapsed = 0
	c.finishedAt = time.Time{}
	c.startedAt = c.clock.Now()
	c.phase = PhasePlaying

	c.logger.Debug("puzzle started", "discs", n, "target", c.targetPeg)
	return nil
}

// ClickPeg picks up, drops or deselects depending on the cursor.
// It is ignored outside Playing and for pegs that do not exist.
func (c *Controller) ClickPeg(peg int) {
	if c.done || c.phase != PhasePlaying || peg < 0 || peg >= hanoi.PegCount {
		return
	}

	if c.cursor == nil {
		top, ok := c.puzzle.Top(peg)
		if !ok {
			return
		}
		c.cursor = &Cursor{Peg: peg, Disc: top}
		c.logger.Debug("disc picked up", "peg", peg, "disc", int(top))
		return
	}

	from := c.cursor.Peg
	if peg == from {
		c.cursor = nil
		c.logger.Debug("disc put back", "peg", peg)
		return
	}

	if !c.puzzle.Apply(from, peg) {
		now := c.clock.Now()
		c.feedback = &Feedback{Message: c.illegalMsg, At: now}
		c.logger.Debug("move rejected", "from", from, "to", peg, "pegs", c.puzzle.String())
		return
	}

	c.cursor = nil
	c.logger.Debug("disc moved", "from", from, "to", peg, "moves", c.puzzle.Moves())

	if c.puzzle.HasWon(c.targetPeg, c.puzzle.DiscCount()) {
		c.finish()
	}
}

// finish records the solve time and enters Results.
func (c *Controller) finish() {
	c.finishedAt = c.clock.Now()
	c.elapsed = c.finishedAt.Sub(c.startedAt)
	c.phase = PhaseResults
	c.puzzlesDone++

	c.logger.Info("puzzle solved",
		"discs", c.puzzle.DiscCount(),
		"moves", c.puzzle.Moves(),
		"elapsed", c.elapsed,
	)

	if c.onFinish != nil {
		c.onFinish(c.result())
	}
}

// Restart returns from Results to disc-count selection.
// It is ignored in any other phase.
func (c *Controller) Restart() {
	if c.done || c.phase != PhaseResults {
		return
	}

	c.phase = PhaseSelectingDiscCount
	c.puzzle = nil
	c.cursor = nil
	c.feedback = nil
	c.logger.Debug("session restarted", "completed", c.puzzlesDone)
}

// Cancel ends the session. Every later event is ignored.
func (c *Controller) Cancel() {
	if c.done {
		return
	}
	c.done = true
	c.logger.Debug("session cancelled", "phase", c.phase.String())
}

// Done reports whether the session was cancelled.
func (c *Controller) Done() bool {
	return c.done
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Cursor returns the held disc, if any.
func (c *Controller) Cursor() (Cursor, bool) {
	if c.cursor == nil {
		return Cursor{}, false
	}
	return *c.cursor, true
}

// Feedback returns the most recent illegal-move message, if any.
// Callers decide visibility with Feedback.Visible.
func (c *Controller) Feedback() (Feedback, bool) {
	if c.feedback == nil {
		return Feedback{}, false
	}
	return *c.feedback, true
}

// Moves returns the current puzzle's move count, or 0 without a puzzle.
func (c *Controller) Moves() int {
	if c.puzzle == nil {
		return 0
	}
	return c.puzzle.Moves()
}

// DiscCount returns the current puzzle's disc count, or 0 without a puzzle.
func (c *Controller) DiscCount() int {
	if c.puzzle == nil {
		return 0
	}
	return c.puzzle.DiscCount()
}

// TargetPeg returns the peg that must receive every disc.
func (c *Controller) TargetPeg() int {
	return c.targetPeg
}

// Pegs returns copies of the current pegs, bottom to top.
func (c *Controller) Pegs() [hanoi.PegCount][]hanoi.Disc {
	if c.puzzle == nil {
		return [hanoi.PegCount][]hanoi.Disc{}
	}
	return c.puzzle.Pegs()
}

// StartedAt returns when the current puzzle began. Zero outside Playing and Results.
func (c *Controller) StartedAt() time.Time {
	if c.phase == PhaseSelectingDiscCount {
		return time.Time{}
	}
	return c.startedAt
}

// Elapsed returns the running time while playing and the final time in Results.
func (c *Controller) Elapsed(now time.Time) time.Duration {
	switch c.phase {
	case PhasePlaying:
		return now.Sub(c.startedAt)
	case PhaseResults:
		return c.elapsed
	default:
		return 0
	}
}

// Result returns the finished puzzle's outcome. Only available in Results.
func (c *Controller) Result() (Result, bool) {
	if c.phase != PhaseResults {
		return Result{}, false
	}
	return c.result(), true
}

func (c *Controller) result() Result {
	return Result{
		DiscCount:  c.puzzle.DiscCount(),
		Moves:      c.puzzle.Moves(),
		Elapsed:    c.elapsed,
		StartedAt:  c.startedAt,
		FinishedAt: c.finishedAt,
	}
}

// Completed returns how many puzzles were solved in this session.
func (c *Controller) Completed() int {
	return c.puzzlesDone
}
