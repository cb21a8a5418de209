// Package app is the Bubble Tea program for the calendar widget. Each key
// maps to one control of the widget state; every message is followed by a
// full recompute of the derived view.
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/eventcal/pkg/calendar"
	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/log"
	"tableflip.dev/eventcal/pkg/store"
	"tableflip.dev/eventcal/pkg/tui/help"
	"tableflip.dev/eventcal/pkg/tui/picker"
	"tableflip.dev/eventcal/pkg/tui/theme"
	"tableflip.dev/eventcal/pkg/widget"
)

type mode int

const (
	modeGrid mode = iota
	modeSearch
	modePicker
	modeHelp
)

const (
	pickMonth    = "month"
	pickCategory = "category"
	pickGroup    = "group"
)

const helpText = "←↑↓→ move · enter select · m month · t today · </> year · / search · c category · g group · ? help · q quit"

// Loader reloads the event list from its source.
type Loader func() ([]event.Event, error)

// Options configures a new Model.
type Options struct {
	Events []event.Event
	Widget []widget.Option

	// Source names the event file in the status line.
	Source string
	// Loader is called when Changes reports a modification.
	Loader  Loader
	Changes <-chan store.Event

	Theme *theme.Theme
}

// Model contains UI state around the widget state.
type Model struct {
	state *widget.State
	th    theme.Theme

	mode   mode
	search textinput.Model
	picker picker.Model
	help   *help.Model

	// cursor is the grid position (0..41) that enter clicks.
	cursor int

	width  int
	height int

	status    string
	statusErr bool

	source  string
	loader  Loader
	changes <-chan store.Event
}

// messages
type changeMsg struct{ ev store.Event }
type changesClosedMsg struct{}
type eventsReloadedMsg struct {
	events []event.Event
	err    error
}

// New creates a calendar UI model.
func New(opts Options) *Model {
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}

	ti := textinput.New()
	ti.Placeholder = "Search events by title…"
	ti.CharLimit = 128
	ti.Prompt = ""

	m := &Model{
		state:   widget.New(opts.Events, opts.Widget...),
		th:      th,
		mode:    modeGrid,
		search:  ti,
		source:  opts.Source,
		loader:  opts.Loader,
		changes: opts.Changes,
	}
	if term := m.state.Criteria().Search; term != "" {
		m.search.SetValue(term)
	}
	m.cursor = m.defaultCursor()
	if m.source != "" {
		m.status = fmt.Sprintf("%d events from %s", len(opts.Events), m.source)
	}
	return m
}

// State exposes the widget state, mostly for tests and printers.
func (m *Model) State() *widget.State { return m.state }

// Init starts listening for source changes.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return changesClosedMsg{}
		}
		return changeMsg{ev: ev}
	}
}

func (m *Model) reload() tea.Cmd {
	loader := m.loader
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		events, err := loader()
		return eventsReloadedMsg{events: events, err: err}
	}
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lay := computeLayout(m.width, m.height)
		if m.help != nil {
			m.help.SetSize(lay.right, lay.bodyHeight)
		}
		m.picker.SetHeight(lay.bodyHeight)
	case changeMsg:
		switch msg.ev.Type {
		case store.EventFileRemoved:
			m.setStatus(fmt.Sprintf("%s was removed; showing the last loaded events", m.sourceName()), true)
		case store.EventWatchError:
			log.Error("watch error", msg.ev.Err, "path", msg.ev.Path)
			cmds = append(cmds, m.reload())
		default:
			cmds = append(cmds, m.reload())
		}
		cmds = append(cmds, m.waitForChange())
	case changesClosedMsg:
		m.changes = nil
	case eventsReloadedMsg:
		if msg.err != nil {
			log.Error("reload failed", msg.err, "source", m.source)
			m.setStatus("reload failed: "+msg.err.Error(), true)
			break
		}
		m.state.SetEvents(msg.events)
		log.Info("events reloaded", "source", m.source, "count", len(msg.events))
		m.setStatus(fmt.Sprintf("reloaded %d events from %s", len(msg.events), m.sourceName()), false)
	case picker.ChosenMsg:
		m.applyChoice(msg)
		m.mode = modeGrid
	case picker.CancelledMsg:
		m.mode = modeGrid
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			cmds = append(cmds, m.handleSearchKey(msg))
		case modePicker:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			cmds = append(cmds, cmd)
		case modeHelp:
			switch msg.String() {
			case "esc", "?", "q":
				m.mode = modeGrid
			default:
				cmds = append(cmds, m.help.Update(msg))
			}
		default:
			cmds = append(cmds, m.handleGridKey(msg))
		}
	default:
		if m.mode == modeSearch {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleGridKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-7)
	case "down", "j":
		m.moveCursor(7)
	case "enter", "space", " ":
		m.state.ClickCell(m.cursor)
	case "t":
		m.state.Today()
		m.cursor = m.defaultCursor()
	case "<", "[":
		m.state.PrevYear()
	case ">", "]":
		m.state.NextYear()
	case "m":
		m.openPicker(pickMonth, "Month", calendar.MonthNames[:], calendar.MonthNames[m.state.Month()])
	case "c":
		v := m.state.View()
		m.openPicker(pickCategory, "Category", v.Categories, v.Criteria.Category)
	case "g":
		v := m.state.View()
		m.openPicker(pickGroup, "Community group", v.Groups, v.Criteria.Group)
	case "/":
		m.mode = modeSearch
		return m.search.Focus()
	case "?":
		lay := computeLayout(m.width, m.height)
		m.help = help.New(lay.right, lay.bodyHeight, m.th.Panel.Frame)
		m.mode = modeHelp
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc", "tab":
		m.mode = modeGrid
		m.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.state.SetSearch(m.search.Value())
	return cmd
}

func (m *Model) openPicker(id, title string, options []string, current string) {
	m.picker = picker.New(id, title, options, current, m.th.Picker)
	m.picker.SetHeight(computeLayout(m.width, m.height).bodyHeight)
	m.mode = modePicker
}

func (m *Model) applyChoice(msg picker.ChosenMsg) {
	switch msg.ID {
	case pickMonth:
		m.state.SetMonth(msg.Index)
	case pickCategory:
		m.state.SetCategory(msg.Option)
	case pickGroup:
		m.state.SetGroup(msg.Option)
	}
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= calendar.Cells {
		return
	}
	m.cursor = next
}

// defaultCursor places the cursor on the selected day, else today, else the
// first day of the displayed month.
func (m *Model) defaultCursor() int {
	grid := calendar.Grid(m.state.Year(), m.state.Month())
	today := m.state.TodayDate()
	want := 1
	if y, mo, d, err := calendar.ParseDateKey(m.state.SelectedDate()); err == nil && y == m.state.Year() && mo == m.state.Month() {
		want = d
	} else if today.Year() == m.state.Year() && int(today.Month())-1 == m.state.Month() {
		want = today.Day()
	}
	for i, day := range grid {
		if day == want {
			return i
		}
	}
	return 0
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) sourceName() string {
	if m.source == "" {
		return "source"
	}
	return m.source
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
