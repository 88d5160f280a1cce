// Package tui provides a Bubble Tea terminal user interface for the bikeshare explorer.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/handiism/bikeshare/internal/config"
	"github.com/handiism/bikeshare/internal/dataset"
	"github.com/handiism/bikeshare/internal/explore"
	"github.com/handiism/bikeshare/internal/model"
	"github.com/handiism/bikeshare/internal/report"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// State represents the current UI state.
type State int

const (
	StateCity State = iota
	StateMonth
	StateDay
	StateConfirm
	StateLoading
	StateReport
	StateRaw
	StateError
)

// chrome is the number of lines taken by the header and footer around the
// report viewport.
const chrome = 6

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	settings *config.Settings
	loader   explore.TableLoader
	reporter *report.Reporter
	logger   *slog.Logger

	// Selection in progress
	filter  model.Filter
	invalid string

	// Loaded session
	table     *model.Table
	sections  []report.Section
	pager     *explore.Pager
	page      [][]string
	pageStart int
	err       error

	ctx    context.Context
	cancel context.CancelFunc
	seq    int

	width  int
	height int
}

// NewModel creates a new TUI model. A nil logger uses slog.Default().
func NewModel(settings *config.Settings, loader explore.TableLoader, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		settings: settings,
		loader:   loader,
		reporter: report.NewReporter(settings, logger),
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
	m.enter(StateCity)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// LoadedMsg is sent when the selected data is loaded and all reports are
	// computed.
	LoadedMsg struct {
		Table    *model.Table
		Sections []report.Section
		Err      error

		seq int
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 3)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit

		case "enter":
			if m.inputState() {
				return m.submit()
			}

		case "q":
			if !m.inputState() && m.state != StateLoading {
				m.cancel()
				return m, tea.Quit
			}

		case "n":
			if !m.inputState() && m.state != StateLoading {
				m.reset()
				return m, textinput.Blink
			}

		case "r":
			if m.state == StateReport || m.state == StateRaw {
				m.nextPage()
				return m, nil
			}

		case "b":
			if m.state == StateRaw {
				m.state = StateReport
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadedMsg:
		if m.state != StateLoading || msg.seq != m.seq {
			// Stale result from a session that was reset while loading.
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.table = msg.Table
		m.sections = msg.Sections
		m.pager = explore.NewPager(msg.Table, m.settings.RawPageSize)
		m.viewport.SetContent(m.renderSections())
		m.viewport.GotoTop()
		m.state = StateReport
		return m, nil
	}

	switch {
	case m.inputState():
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	case m.state == StateReport:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) inputState() bool {
	switch m.state {
	case StateCity, StateMonth, StateDay, StateConfirm:
		return true
	}
	return false
}

// submit validates the current answer and advances the selection.
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	var err error

	switch m.state {
	case StateCity:
		if m.filter.City, err = model.ParseCity(value); err == nil {
			m.enter(StateMonth)
		}
	case StateMonth:
		if m.filter.Month, err = model.ParseMonth(value); err == nil {
			m.enter(StateDay)
		}
	case StateDay:
		if m.filter.Day, err = model.ParseDay(value); err == nil {
			m.enter(StateConfirm)
		}
	case StateConfirm:
		var ok bool
		if ok, err = explore.ParseYesNo(value); err != nil {
			break
		}
		if !ok {
			m.filter = model.Filter{}
			m.enter(StateCity)
			return m, nil
		}
		m.state = StateLoading
		m.seq++
		m.input.Blur()
		return m, tea.Batch(m.load(m.filter), m.spinner.Tick)
	}

	if err != nil {
		m.invalid = retryMessage(m.state)
		m.input.SetValue("")
	}
	return m, nil
}

// enter moves to an input state with an empty prompt.
func (m *Model) enter(s State) {
	m.state = s
	m.invalid = ""
	m.input.SetValue("")
	m.input.Placeholder = placeholder(s)
	m.input.Focus()
}

// reset starts a new session, abandoning any load in flight.
func (m *Model) reset() {
	m.cancel()
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.filter = model.Filter{}
	m.table = nil
	m.sections = nil
	m.pager = nil
	m.page = nil
	m.pageStart = 0
	m.err = nil
	m.enter(StateCity)
}

func (m *Model) nextPage() {
	m.state = StateRaw
	if m.pager != nil {
		m.pageStart = m.pager.Offset()
		m.page = m.pager.Next()
	}
}

// load reads the selected data and computes every report.
func (m Model) load(f model.Filter) tea.Cmd {
	ctx, seq, loader, reporter := m.ctx, m.seq, m.loader, m.reporter
	logger := m.logger.With("session", uuid.NewString())

	return func() tea.Msg {
		logger.Info("session started", "city", string(f.City), "month", string(f.Month), "day", string(f.Day))

		table, err := loader.Load(ctx, f)
		if err != nil {
			return LoadedMsg{Err: fmt.Errorf("load %s data: %w", f.City.Title(), err), seq: seq}
		}
		logger.Info("dataset loaded", "rows", table.Len())

		sections, err := reporter.All(ctx, table, f)
		if err != nil {
			return LoadedMsg{Err: err, seq: seq}
		}
		return LoadedMsg{Table: table, Sections: sections, seq: seq}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("US Bikeshare Explorer"))
	b.WriteString("\n")
	if m.state >= StateConfirm && m.state != StateError {
		b.WriteString(dimStyle.Render(m.filter.String()))
	} else {
		b.WriteString(dimStyle.Render("Let's explore some US bikeshare data!"))
	}
	b.WriteString("\n\n")

	switch m.state {
	case StateCity, StateMonth, StateDay, StateConfirm:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Loading %s data...", m.filter.City.Title())))
		b.WriteString("\n")
	case StateReport:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	case StateRaw:
		b.WriteString(m.viewRaw())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(question(m.state)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.invalid != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(m.invalid))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewRaw() string {
	var b strings.Builder

	if len(m.page) == 0 {
		b.WriteString(infoStyle.Render("No more raw data to show."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(infoStyle.Render(fmt.Sprintf("Rows %d-%d of %d", m.pageStart+1, m.pageStart+len(m.page), m.table.Len())))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(strings.TrimRight(report.RenderRows(m.table.Header, m.page), "\n")))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderSections() string {
	var b strings.Builder
	for _, s := range m.sections {
		b.WriteString(s.String())
	}
	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateCity, StateMonth, StateDay, StateConfirm:
		return "enter: submit • esc: quit"
	case StateLoading:
		return "esc: quit"
	case StateReport:
		return "↑/↓: scroll • r: raw data • n: new session • q: quit"
	case StateRaw:
		return "r: next rows • b: back to reports • n: new session • q: quit"
	case StateError:
		return "n: new session • q: quit"
	}
	return ""
}

func question(s State) string {
	switch s {
	case StateCity:
		return "Which city? (Chicago, New York City or Washington)"
	case StateMonth:
		return "Which month? (all, January, February, ... December)"
	case StateDay:
		return "Which day? (all, Monday, Tuesday, ... Sunday)"
	case StateConfirm:
		return "Is this correct? Y/N"
	}
	return ""
}

func placeholder(s State) string {
	switch s {
	case StateCity:
		return "chicago"
	case StateMonth, StateDay:
		return model.All
	case StateConfirm:
		return "y"
	}
	return ""
}

func retryMessage(s State) string {
	switch s {
	case StateCity:
		return "Please enter one of Chicago, New York City or Washington."
	case StateMonth:
		return `Please enter "all" or a valid month e.g. "January".`
	case StateDay:
		return `Please enter "all" or a valid day e.g. "Monday".`
	case StateConfirm:
		return "Please enter a valid input: Y/N"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings, logger *slog.Logger) error {
	loader := dataset.NewLoader(settings, logger)
	p := tea.NewProgram(NewModel(settings, loader, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
