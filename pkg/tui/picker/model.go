// Package picker is a dropdown-style option list for the terminal UI.
package picker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/eventcal/pkg/tui/theme"
)

// ChosenMsg reports the option picked with enter.
type ChosenMsg struct {
	ID     string
	Index  int
	Option string
}

// CancelledMsg reports that the picker was dismissed without a choice.
type CancelledMsg struct {
	ID string
}

// Model renders a titled list of options with a cursor.
type Model struct {
	id      string
	title   string
	options []string
	cursor  int
	// rows caps the visible options; zero shows them all.
	rows   int
	styles theme.PickerTheme
}

// New returns a picker positioned on current, or on the first option when
// current is not one of options.
func New(id, title string, options []string, current string, th theme.PickerTheme) Model {
	m := Model{
		id:      id,
		title:   title,
		options: append([]string(nil), options...),
		styles:  th,
	}
	for i, o := range m.options {
		if o == current {
			m.cursor = i
			break
		}
	}
	return m
}

// ID returns the identifier the picker was opened with.
func (m Model) ID() string { return m.id }

// Cursor returns the highlighted option index.
func (m Model) Cursor() int { return m.cursor }

// SetHeight fits the rendered picker, frame and title included, into height
// lines. Options beyond that scroll with the cursor.
func (m *Model) SetHeight(height int) {
	m.rows = max(height-3, 1)
}

// window returns the range of options to render around the cursor.
func (m Model) window() (start, end int) {
	n := len(m.options)
	if m.rows <= 0 || n <= m.rows {
		return 0, n
	}
	start = min(max(m.cursor-m.rows/2, 0), n-m.rows)
	return start, start + m.rows
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update moves the cursor and emits ChosenMsg or CancelledMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	if k := key.String(); k == "esc" || k == "q" {
		return m, m.cancel()
	}
	if len(m.options) == 0 {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.options) - 1
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.options) - 1
	case "enter", "space", " ":
		chosen := ChosenMsg{ID: m.id, Index: m.cursor, Option: m.options[m.cursor]}
		return m, func() tea.Msg { return chosen }
	}
	return m, nil
}

func (m Model) cancel() tea.Cmd {
	id := m.id
	return func() tea.Msg { return CancelledMsg{ID: id} }
}

// View renders the framed option list.
func (m Model) View() string {
	lines := []string{m.styles.Title.Render(m.title)}
	start, end := m.window()
	for i := start; i < end; i++ {
		o := m.options[i]
		if i == m.cursor {
			lines = append(lines, m.styles.Selected.Render("→ "+o))
			continue
		}
		lines = append(lines, m.styles.Option.Render("  "+o))
	}
	return m.styles.Frame.Render(strings.Join(lines, "\n"))
}
