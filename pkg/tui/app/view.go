package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/eventcal/pkg/calendar"
	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/widget"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	linkText      = "Click here"
)

type layout struct {
	left       int
	right      int
	cellWidth  int
	cellHeight int
	bodyHeight int
}

func computeLayout(width, height int) layout {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	right := clamp(width/3, 26, 48)
	left := width - right - 1
	cellWidth := max((left-6)/7, 5)
	// controls (2) + weekday header (1) + footer (2)
	cellHeight := clamp((height-5)/6, 1, 8)
	return layout{
		left:       cellWidth*7 + 6,
		right:      right,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		bodyHeight: 3 + cellHeight*6,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View renders the controls, grid, side panel and footer.
func (m *Model) View() string {
	v := m.state.View()
	lay := computeLayout(m.width, m.height)

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderControls(v),
		m.renderWeekdays(lay),
		m.renderGrid(v, lay),
	)

	right := m.renderPanel(v, lay)
	switch m.mode {
	case modePicker:
		right = m.picker.View()
	case modeHelp:
		right = m.help.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	return body + "\n" + m.renderFooter(lay)
}

func (m *Model) renderControls(v widget.View) string {
	ct := m.th.Controls

	value := func(s string, active bool) string {
		if active {
			return ct.Active.Render(s)
		}
		return ct.Value.Render(s)
	}
	picking := func(id string) bool {
		return m.mode == modePicker && m.picker.ID() == id
	}

	year := ct.Key.Render("< ") + ct.Value.Render(fmt.Sprint(v.Year)) + ct.Key.Render(" >")
	month := ct.Label.Render("Month ") + value(calendar.MonthNames[v.Month]+" ▾", picking(pickMonth)) + ct.Key.Render(" (m)")
	today := ct.Key.Render("t ") + ct.Label.Render("Today")
	first := strings.Join([]string{month, year, today}, "   ")

	search := ct.Label.Render("Search ") + m.search.View()
	if m.mode == modeSearch {
		search = ct.Active.Render("Search ") + m.search.View()
	} else {
		search += ct.Key.Render(" (/)")
	}
	category := ct.Label.Render("Category ") + value(v.Criteria.Category+" ▾", picking(pickCategory)) + ct.Key.Render(" (c)")
	group := ct.Label.Render("Group ") + value(v.Criteria.Group+" ▾", picking(pickGroup)) + ct.Key.Render(" (g)")
	second := strings.Join([]string{search, category, group}, "   ")

	return first + "\n" + second
}

func (m *Model) renderWeekdays(lay layout) string {
	labels := make([]string, len(calendar.WeekdayLabels))
	for i, l := range calendar.WeekdayLabels {
		labels[i] = m.th.Grid.Header.Render(fit(l, lay.cellWidth))
	}
	return strings.Join(labels, " ")
}

func (m *Model) renderGrid(v widget.View, lay layout) string {
	rows := make([]string, 0, calendar.Cells/7)
	for r := 0; r < calendar.Cells/7; r++ {
		cells := make([]string, 7)
		for c := 0; c < 7; c++ {
			idx := r*7 + c
			cells[c] = m.renderCell(v.Cells[idx], idx, lay)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, interleave(cells, " ")...))
	}
	return strings.Join(rows, "\n")
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2-1)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}

func (m *Model) renderCell(c widget.Cell, idx int, lay layout) string {
	gt := m.th.Grid
	lines := make([]string, 0, lay.cellHeight)

	var head string
	if c.Empty() {
		head = fit("", lay.cellWidth)
	} else {
		style := gt.Day
		if c.Today {
			style = style.Inherit(gt.Today)
		}
		if c.Selected {
			style = gt.Selected.Inherit(style)
		}
		num := fmt.Sprintf("%2d", c.Day)
		pad := lay.cellWidth - len(num)
		dot := ""
		if c.HasEvents() {
			dot = " " + gt.Dot.Render("●")
			pad -= 2
		}
		head = style.Render(num) + dot + strings.Repeat(" ", max(pad, 0))
	}
	if idx == m.cursor && m.mode == modeGrid {
		head = gt.Cursor.Render(ansi.Strip(head))
	}
	lines = append(lines, head)

	lines = append(lines, m.pillLines(c.Events, lay.cellWidth, lay.cellHeight-1)...)
	for len(lines) < lay.cellHeight {
		lines = append(lines, strings.Repeat(" ", lay.cellWidth))
	}
	return strings.Join(lines, "\n")
}

// pillLines lays out a day's events in avail lines: title and labels when
// everything fits, titles only when that fits, otherwise as many titles as
// possible followed by a "+N more" line.
func (m *Model) pillLines(events []event.Event, width, avail int) []string {
	if avail <= 0 || len(events) == 0 {
		return nil
	}
	gt := m.th.Grid
	title := func(e event.Event) string {
		return gt.PillStyle(e.Category).Render(fit(e.Title, width))
	}

	var full []string
	for _, e := range events {
		full = append(full, title(e))
		if l := e.Labels(); l != "" {
			full = append(full, gt.PillLabel.Render(fit(l, width)))
		}
	}
	if len(full) <= avail {
		return full
	}

	if len(events) <= avail {
		out := make([]string, 0, len(events))
		for _, e := range events {
			out = append(out, title(e))
		}
		return out
	}

	shown := avail - 1
	out := make([]string, 0, avail)
	for _, e := range events[:shown] {
		out = append(out, title(e))
	}
	more := fmt.Sprintf("+%d more", len(events)-shown)
	return append(out, gt.More.Render(fit(more, width)))
}

// fit truncates s to width cells and right-pads it.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate.StringWithTail(s, uint(width), "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func (m *Model) renderPanel(v widget.View, lay layout) string {
	pt := m.th.Panel
	inner := max(lay.right-4, 10)
	wrap := func(s string) string { return wordwrap.String(s, inner) }

	var b strings.Builder
	switch v.Panel {
	case widget.PanelPrompt:
		b.WriteString(pt.Placeholder.Render(wrap(widget.PromptText)))
	case widget.PanelEmpty:
		b.WriteString(pt.Title.Render(wrap(v.SelectedTitle)))
		b.WriteString("\n\n")
		b.WriteString(pt.Placeholder.Render(wrap(widget.NoEventText)))
	default:
		b.WriteString(pt.Title.Render(wrap(v.SelectedTitle)))
		for _, e := range v.SelectedEvents {
			b.WriteString("\n\n")
			b.WriteString(pt.EventTitle.Render(wrap(e.Title)))
			if meta := e.Meta(); meta != "" {
				b.WriteString("\n")
				b.WriteString(pt.EventMeta.Render(wrap(meta)))
			}
			if e.Link != "" {
				b.WriteString("\n")
				b.WriteString(hyperlink(e.Link, pt.Link.Render(linkText)))
			}
		}
	}
	return pt.Frame.Render(b.String())
}

// hyperlink wraps text in an OSC 8 link so terminals that support it open
// the event page on click.
func hyperlink(url, text string) string {
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

func (m *Model) renderFooter(lay layout) string {
	ft := m.th.Footer
	width := lay.left + 1 + lay.right
	help := ft.Help.Render(truncate.StringWithTail(helpText, uint(width), "…"))
	if m.mode == modeSearch {
		help = ft.Help.Render("type to filter titles · enter/esc done")
	}
	if m.mode == modePicker {
		help = ft.Help.Render("↑/↓ choose · enter select · esc cancel")
	}
	if m.mode == modeHelp {
		help = ft.Help.Render("↑/↓ scroll · esc close")
	}
	status := ft.Status.Render(m.status)
	if m.statusErr {
		status = ft.Error.Render(m.status)
	}
	return help + "\n" + status
}
