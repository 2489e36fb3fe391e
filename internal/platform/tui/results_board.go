package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// Results board layout constants
const (
	boardChromeRows = 9   // Title, tabs, stats, borders and help
	maxBoardTrials  = 100 // Max trials to load per disc count
)

// TrialSource is the read side of the trial log.
type TrialSource interface {
	PlayedDiscCounts() ([]int, error)
	BestTrials(discCount, limit int) ([]storage.Trial, error)
	DiscStats(discCount int) (*storage.Stats, error)
}

// ResultsKeyMap defines the key bindings for the results board.
type ResultsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Prev, k.Next},
		{k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "more discs"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/S-tab", "fewer discs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ResultsBoard is the Bubble Tea model that browses recorded trials,
// one tab per disc count, fastest first.
type ResultsBoard struct {
	source   TrialSource
	counts   []int
	cursor   int
	trials   []storage.Trial
	stats    *storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	width    int
	height   int
	quitting bool
}

// NewResultsBoard creates a results board. When startDiscs has trials its
// tab is selected first.
func NewResultsBoard(source TrialSource, width, height, startDiscs int) ResultsBoard {
	m := ResultsBoard{
		source: source,
		keys:   DefaultResultsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()

	counts, err := source.PlayedDiscCounts()
	if err != nil {
		m.loadErr = err
		return m
	}
	m.counts = counts
	for i, n := range counts {
		if n == startDiscs {
			m.cursor = i
		}
	}
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *ResultsBoard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time (s)", Width: 10},
		{Title: "Moves", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChromeRows, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads trials and stats for the selected disc count.
func (m *ResultsBoard) load() {
	m.trials, m.stats, m.loadErr = nil, nil, nil
	if len(m.counts) == 0 {
		m.updateTableRows()
		return
	}

	n := m.counts[m.cursor]
	trials, err := m.source.BestTrials(n, maxBoardTrials)
	if err != nil {
		m.loadErr = err
		m.updateTableRows()
		return
	}
	m.trials = trials

	stats, err := m.source.DiscStats(n)
	if err != nil {
		m.loadErr = err
	}
	m.stats = stats
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded trials.
func (m *ResultsBoard) updateTableRows() {
	rows := make([]table.Row, len(m.trials))
	for i, t := range m.trials {
		player := t.Participant
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			formatSeconds(t.Elapsed),
			fmt.Sprintf("%d", t.Moves),
			player,
			t.FinishedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results board.
func (m ResultsBoard) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
func (m ResultsBoard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			if len(m.counts) > 0 {
				m.cursor = (m.cursor + 1) % len(m.counts)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if len(m.counts) > 0 {
				m.cursor = (m.cursor - 1 + len(m.counts)) % len(m.counts)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ResultsBoard) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RESULTS"
	if n, ok := m.Selected(); ok {
		title = fmt.Sprintf("RESULTS - %d discs", n)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderStats(), m.width))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders one tab per played disc count.
func (m ResultsBoard) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.counts))
	for i, n := range m.counts {
		label := fmt.Sprintf("%d discs", n)
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(" " + label + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.counts) > 0 {
		line = fmt.Sprintf("< %d discs >", m.counts[m.cursor])
	}
	return line
}

// renderStats renders the summary line for the selected disc count.
func (m ResultsBoard) renderStats() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if m.stats == nil {
		return ""
	}
	s := m.stats
	return style.Render(fmt.Sprintf(
		"Trials: %d  Best: %s s  Avg: %s s  Fewest moves: %d (minimum %d)",
		s.Trials,
		formatSeconds(s.BestElapsed),
		formatSeconds(s.AvgElapsed),
		s.FewestMoves,
		hanoi.MinMoves(s.DiscCount),
	))
}

// renderTableContent renders the table or an empty/error message.
func (m ResultsBoard) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	}
	if len(m.trials) == 0 {
		return emptyStyle.Render("No trials recorded yet.\nRun `hanoi play` to record one!")
	}
	return m.table.View()
}

// Selected returns the disc count of the active tab.
func (m ResultsBoard) Selected() (int, bool) {
	if len(m.counts) == 0 {
		return 0, false
	}
	return m.counts[m.cursor], true
}

// Trials returns the trials shown in the table, fastest first.
func (m ResultsBoard) Trials() []storage.Trial {
	return m.trials
}

// IsQuitting returns true once the user closed the board.
func (m ResultsBoard) IsQuitting() bool {
	return m.quitting
}

// RunResultsBoard runs the results board until the user quits.
func RunResultsBoard(source TrialSource, width, height, startDiscs int) error {
	p := tea.NewProgram(
		NewResultsBoard(source, width, height, startDiscs),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
