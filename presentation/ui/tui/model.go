package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"netprio/application/logging"
	"netprio/domain/adapter"
	"netprio/presentation/localization"
)

// Core is the part of the session the screen drives.
type Core interface {
	ListAdapters(ctx context.Context) ([]adapter.Record, string)
	Reorder(from, to int) []adapter.Record
	CommitCurrent(ctx context.Context) (bool, string)
	Snapshot() []adapter.Record
}

type Translator interface {
	T(id string, data map[string]any) string
	KindLabel(kind adapter.Kind) string
	Toggle() string
}

type listedMsg struct {
	records []adapter.Record
	status  string
}

type committedMsg struct {
	ok      bool
	status  string
	records []adapter.Record
}

// Model renders the priority list and turns key presses into session calls.
// While a listing or commit is in flight, only quit is accepted.
type Model struct {
	ctx        context.Context
	core       Core
	translator Translator
	prefs      prefsStorage
	logger     logging.Logger
	autoCommit bool

	records []adapter.Record
	status  string
	cursor  int
	grabbed bool
	busy    bool
	width   int

	keys   keyMap
	help   help.Model
	styles styles
}

func NewModel(
	ctx context.Context,
	core Core,
	translator Translator,
	prefs prefsStorage,
	logger logging.Logger,
	autoCommit bool,
) Model {
	return Model{
		ctx:        ctx,
		core:       core,
		translator: translator,
		prefs:      prefs,
		logger:     logger,
		autoCommit: autoCommit,
		keys:       newKeyMap(translator),
		help:       help.New(),
		styles:     newStyles(),
		busy:       true,
		status:     translator.T(localization.MsgStatusRefreshing, nil),
	}
}

func (m Model) Init() tea.Cmd {
	return m.listCmd()
}

func (m Model) listCmd() tea.Cmd {
	ctx, core := m.ctx, m.core
	return func() tea.Msg {
		records, status := core.ListAdapters(ctx)
		return listedMsg{records: records, status: status}
	}
}

func (m Model) commitCmd() tea.Cmd {
	ctx, core := m.ctx, m.core
	return func() tea.Msg {
		ok, status := core.CommitCurrent(ctx)
		return committedMsg{ok: ok, status: status, records: core.Snapshot()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case listedMsg:
		m.busy = false
		m.grabbed = false
		m.setRecords(msg.records)
		m.status = msg.status
	case committedMsg:
		m.busy = false
		m.grabbed = false
		m.setRecords(msg.records)
		m.status = msg.status
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.ShiftUp):
		return m.move(-1, true)
	case key.Matches(msg, m.keys.ShiftDown):
		return m.move(1, true)
	case key.Matches(msg, m.keys.Up):
		if m.grabbed {
			return m.move(-1, false)
		}
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.grabbed {
			return m.move(1, false)
		}
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Grab):
		if len(m.records) == 0 {
			return m, nil
		}
		m.grabbed = !m.grabbed
		if !m.grabbed && m.autoCommit {
			return m.startCommit()
		}
	case key.Matches(msg, m.keys.Commit):
		m.grabbed = false
		return m.startCommit()
	case key.Matches(msg, m.keys.Refresh):
		m.busy = true
		m.status = m.translator.T(localization.MsgStatusRefreshing, nil)
		return m, m.listCmd()
	case key.Matches(msg, m.keys.Language):
		m.toggleLanguage()
		m.busy = true
		m.status = m.translator.T(localization.MsgStatusRefreshing, nil)
		return m, m.listCmd()
	}
	return m, nil
}

// move shifts the item under the cursor by delta and keeps the cursor on it.
// A drop-style move commits immediately when auto-commit is enabled.
func (m Model) move(delta int, drop bool) (tea.Model, tea.Cmd) {
	if len(m.records) == 0 {
		return m, nil
	}
	to := min(max(m.cursor+delta, 0), len(m.records)-1)
	if to == m.cursor {
		return m, nil
	}
	m.records = m.core.Reorder(m.cursor, to)
	m.cursor = to
	if drop && m.autoCommit {
		return m.startCommit()
	}
	return m, nil
}

func (m Model) startCommit() (tea.Model, tea.Cmd) {
	if len(m.records) == 0 {
		return m, nil
	}
	m.busy = true
	m.status = m.translator.T(localization.MsgStatusApplying, nil)
	return m, m.commitCmd()
}

func (m *Model) toggleLanguage() {
	lang := m.translator.Toggle()
	m.keys = newKeyMap(m.translator)
	if m.prefs == nil {
		return
	}
	if err := savePreferences(m.prefs, Preferences{Language: lang}); err != nil {
		m.logger.Printf("tui: failed to save preferences: %v", err)
	}
}

func (m *Model) setRecords(records []adapter.Record) {
	m.records = records
	if m.cursor >= len(records) {
		m.cursor = max(len(records)-1, 0)
	}
}

func (m Model) View() string {
	t := m.translator
	var b strings.Builder

	b.WriteString(m.styles.title.Render(t.T(localization.MsgTitle, nil)))
	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render(t.T(localization.MsgDescription, nil)))
	b.WriteString("\n")
	b.WriteString(m.styles.header.Render(t.T(localization.MsgHeader, nil)))
	b.WriteString("\n")

	for i, r := range m.records {
		line := fmt.Sprintf("%s (%s) - %s: %d", r.Name, t.KindLabel(r.Kind), t.T(localization.MsgMetric, nil), r.Metric)
		switch {
		case i == m.cursor && m.grabbed:
			line = m.styles.grabbed.Render("≡ " + line)
		case i == m.cursor:
			line = m.styles.cursor.Render("> " + line)
		default:
			line = "  " + line
		}
		b.WriteString(m.styles.row.Render(line))
		b.WriteString("\n")
	}

	statusStyle := m.styles.status
	if m.busy {
		statusStyle = m.styles.busy
	}
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.frame.Render(b.String())
}

// Records returns the rows currently on screen.
func (m Model) Records() []adapter.Record {
	return m.records
}

func (m Model) Status() string {
	return m.status
}
