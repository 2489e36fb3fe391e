package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/session"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// maxEntryDigits bounds a typed disc count in free-entry mode.
const maxEntryDigits = 3

// defaultScreenshotDir is where Ctrl+S writes plain-text frames.
const defaultScreenshotDir = "~/.hanoi/screenshots"

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a task Model.
type Options struct {
	Config        config.Config
	Runtime       core.RuntimeConfig
	Logger        *log.Logger
	Store         *storage.Store // Nil disables trial recording
	Participant   string
	Clock         session.Clock
	InitialDiscs  int    // Skips the menu when > 0 and allowed
	ScreenshotDir string // Defaults to ~/.hanoi/screenshots
}

// Model is the Bubble Tea model for one task session.
type Model struct {
	ctl        *session.Controller
	recorder   *storage.Recorder
	cfg        config.Config
	runtime    core.RuntimeConfig
	logger     *log.Logger
	clock      session.Clock
	screen     *core.Screen
	presets    []int
	keys       KeyMap
	translator keyTranslator
	help       help.Model
	shotDir    string
	focus      int
	entry      string
	quitting   bool
}

// NewModel creates a task model waiting for a disc count, or already
// playing when opts.InitialDiscs is an allowed count.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = session.SystemClock
	}
	rt := opts.Runtime
	if rt.ScreenW == 0 || rt.ScreenH == 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	if rt.TickRate == 0 {
		rt.TickRate = opts.Config.Display.FPS
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = defaultScreenshotDir
	}

	ctlOpts := []session.Option{
		session.WithClock(clock),
		session.WithLogger(logger),
		session.WithTargetPeg(opts.Config.Session.TargetPeg),
		session.WithIllegalMoveMessage(opts.Config.Session.IllegalMoveMessage),
	}

	var recorder *storage.Recorder
	if opts.Store != nil && opts.Config.Storage.Enabled {
		recorder = storage.NewRecorder(opts.Store, opts.Participant, logger)
		ctlOpts = append(ctlOpts, session.WithFinishHook(recorder.Hook()))
	}

	keys := DefaultKeyMap()
	m := Model{
		ctl:        session.New(ctlOpts...),
		recorder:   recorder,
		cfg:        opts.Config,
		runtime:    rt,
		logger:     logger,
		clock:      clock,
		presets:    opts.Config.Session.SortedPresets(),
		keys:       keys,
		translator: newKeyTranslator(keys, opts.Config.Session.Allows, opts.Config.Session.FreeEntry),
		help:       help.New(),
		shotDir:    shotDir,
	}
	m.help.Width = rt.ScreenW
	m.screen = core.NewScreen(rt.ScreenW, m.boardHeight(rt.ScreenH))

	if opts.InitialDiscs > 0 && opts.Config.Session.Allows(opts.InitialDiscs) {
		if err := m.ctl.ChooseDiscCount(opts.InitialDiscs); err != nil {
			logger.Warn("could not start puzzle", "discs", opts.InitialDiscs, "error", err)
		}
	}
	return m
}

// boardHeight is the terminal height minus the help footer.
func (m Model) boardHeight(termHeight int) int {
	if m.cfg.Display.ShowHelp {
		return core.Max(termHeight-1, 0)
	}
	return termHeight
}

// Init starts the redraw ticks.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, m.boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, action := m.translator.translate(msg, m.ctl.Phase(), m.focus)

	switch action {
	case keyScreenshot:
		m.saveScreenshot()
		return m, nil
	case keyFocusLeft:
		m.focus = (m.focus + hanoi.PegCount - 1) % hanoi.PegCount
	case keyFocusRight:
		m.focus = (m.focus + 1) % hanoi.PegCount
	case keyEntryDigit:
		if len(m.entry) < maxEntryDigits {
			m.entry += msg.String()
		}
	case keyEntryErase:
		if m.entry != "" {
			m.entry = m.entry[:len(m.entry)-1]
		}
	case keyEntrySubmit:
		n, err := strconv.Atoi(m.entry)
		m.entry = ""
		if err == nil && m.cfg.Session.Allows(n) {
			ev = session.ChooseDiscCount(n)
		}
	}

	return m.dispatch(ev)
}

// handleMouse maps left clicks onto menu buttons and peg columns.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	l := m.layout()
	switch m.ctl.Phase() {
	case session.PhaseSelectingDiscCount:
		if n, ok := l.ButtonAt(msg.X, msg.Y); ok && m.cfg.Session.Allows(n) {
			return m.dispatch(session.ChooseDiscCount(n))
		}
	case session.PhasePlaying:
		if peg, ok := l.PegAt(msg.X, msg.Y); ok {
			m.focus = peg
			return m.dispatch(session.ClickPeg(peg))
		}
	}
	return m, nil
}

// dispatch feeds ev to the controller and quits once the session is done.
func (m Model) dispatch(ev session.Event) (tea.Model, tea.Cmd) {
	if ev.Kind == session.EventNone {
		return m, nil
	}

	before := m.ctl.Phase()
	if err := m.ctl.Handle(ev); err != nil {
		m.logger.Warn("event rejected", "event", ev.String(), "error", err)
	}
	if before != session.PhasePlaying && m.ctl.Phase() == session.PhasePlaying {
		m.focus = 0
	}

	if m.ctl.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) layout() Layout {
	return NewLayout(m.screen.Width(), m.screen.Height(), m.ctl.DiscCount(), m.presets)
}

func (m Model) frameOptions() FrameOptions {
	return FrameOptions{
		FeedbackWindow: m.cfg.Session.FeedbackWindow,
		ShowTimer:      m.cfg.Display.ShowTimer,
		Focus:          m.focus,
		FreeEntry:      m.cfg.Session.FreeEntry,
		MaxEntry:       m.cfg.Session.MaxFreeEntry,
		Entry:          m.entry,
	}
}

// draw renders the current frame into the screen buffer.
func (m Model) draw() {
	DrawFrame(m.screen, m.layout(), m.ctl.View(m.clock.Now()), m.frameOptions())
}

// saveScreenshot writes the current frame as plain text. Failures are logged.
func (m Model) saveScreenshot() {
	m.draw()

	dir, err := config.ExpandHome(m.shotDir)
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", m.shotDir, "error", err)
		return
	}

	timestamp := m.clock.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("hanoi_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	out := RenderScreen(m.screen)

	if m.cfg.Display.ShowHelp {
		keys := phaseKeys{keys: m.keys, phase: m.ctl.Phase(), freeEntry: m.cfg.Session.FreeEntry}
		out += "\n" + helpStyle.Render(m.help.View(keys))
	}
	return out
}

// Controller returns the session driven by this model.
func (m Model) Controller() *session.Controller {
	return m.ctl
}

// SessionID returns the recorder's session ID, or "" when not recording.
func (m Model) SessionID() string {
	if m.recorder == nil {
		return ""
	}
	return m.recorder.SessionID()
}

// Focus returns the keyboard-selected peg.
func (m Model) Focus() int {
	return m.focus
}

// Entry returns the digits typed in free-entry mode.
func (m Model) Entry() string {
	return m.entry
}

// IsQuitting returns true once the session was cancelled.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Summary describes a finished local run.
type Summary struct {
	Completed int
	SessionID string
	Duration  time.Duration
}

// Run starts the Bubble Tea program for a local task session.
func Run(opts Options) (Summary, error) {
	start := time.Now()
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Duration: time.Since(start)}
	if fm, ok := final.(Model); ok {
		sum.Completed = fm.ctl.Completed()
		sum.SessionID = fm.SessionID()
	}
	return sum, nil
}
