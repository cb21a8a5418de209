package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/filter"
	"tableflip.dev/eventcal/pkg/widget"
)

const acrm = "https://acrm.org/acrm-communities/brain-injury/"

func sampleEvents() []event.Event {
	return []event.Event{
		{ID: "1", Title: "Tech Meeting", Date: "2025-11-10", Time: "2:00 PM", Category: "Meeting", CommunityGroup: "Technology", Link: acrm},
		{ID: "2", Title: "BI-ISIG Webinar", Date: "2025-11-12", Time: "11:00 AM", Category: "Webinar", CommunityGroup: "BI-ISIG", Link: acrm},
		{ID: "3", Title: "BI-ISIG All Member Meeting", Date: "2025-11-12", Time: "09:00 AM", Category: "Webinar", CommunityGroup: "BI-ISIG", Link: acrm},
		{ID: "4", Title: "Stroke ISIG All Member Meeting", Date: "2025-11-12", Time: "4:30 PM", Category: "Social", CommunityGroup: "Stroke ISIG", Link: acrm},
		{ID: "5", Title: "BI-ISIG All Member Meeting", Date: "2025-10-12", Time: "09:00 AM", Category: "Webinar", CommunityGroup: "BI-ISIG", Link: acrm},
	}
}

func newTestModel() *Model {
	clock := func() time.Time { return time.Date(2025, time.November, 20, 9, 0, 0, 0, time.Local) }
	m := New(Options{
		Events: sampleEvents(),
		Widget: []widget.Option{widget.WithClock(clock)},
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func keyText(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Text: s, Code: r}
}

// send delivers msg. While a picker is open the resulting command is run and
// its message fed back, the way the runtime would.
func send(m *Model, msg tea.Msg) {
	picking := m.mode == modePicker
	_, cmd := m.Update(msg)
	if cmd == nil || !picking {
		return
	}
	if out := cmd(); out != nil {
		m.Update(out)
	}
}

func stripView(m *Model) string {
	return ansi.Strip(m.View())
}

func TestCursorStartsOnToday(t *testing.T) {
	m := newTestModel()
	// November 2025 starts on a Saturday, so day d sits at index d+5.
	if m.cursor != 25 {
		t.Fatalf("cursor = %d, want 25", m.cursor)
	}
}

func TestInitialViewShowsPrompt(t *testing.T) {
	m := newTestModel()
	view := stripView(m)
	for _, want := range []string{"November ▾", "2025", "Category All ▾", "Group All ▾", "Select a day", "Sun", "Sat"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestEnterSelectsCursorDay(t *testing.T) {
	m := newTestModel()
	m.cursor = 17 // November 12

	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.State().SelectedDate(); got != "2025-11-12" {
		t.Fatalf("selected = %q", got)
	}

	view := stripView(m)
	for _, want := range []string{"Wednesday, November 12, 2025", "BI-ISIG Webinar", "Stroke ISIG All Member Meeting", "Social • 4:30 PM • Stroke ISIG", linkText} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if !strings.Contains(m.View(), ansi.SetHyperlink(acrm)) {
		t.Fatal("expected an OSC 8 hyperlink to the event page")
	}
}

func TestEnterOnPaddingClearsSelection(t *testing.T) {
	m := newTestModel()
	m.cursor = 17
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	m.cursor = 0
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.State().SelectedDate(); got != "" {
		t.Fatalf("selected = %q, want cleared", got)
	}
	if !strings.Contains(stripView(m), "Select a day") {
		t.Fatal("expected prompt after clearing selection")
	}
}

func TestCursorMovementStaysInGrid(t *testing.T) {
	m := newTestModel()
	m.cursor = 0
	send(m, tea.KeyPressMsg{Code: tea.KeyLeft})
	send(m, tea.KeyPressMsg{Code: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
	send(m, tea.KeyPressMsg{Code: tea.KeyDown})
	send(m, keyText("l"))
	if m.cursor != 8 {
		t.Fatalf("cursor = %d, want 8", m.cursor)
	}
	m.cursor = 41
	send(m, tea.KeyPressMsg{Code: tea.KeyRight})
	send(m, tea.KeyPressMsg{Code: tea.KeyDown})
	if m.cursor != 41 {
		t.Fatalf("cursor = %d, want 41", m.cursor)
	}
}

func TestCategoryPickerFilters(t *testing.T) {
	m := newTestModel()
	m.cursor = 17
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	send(m, keyText("c"))
	if m.mode != modePicker {
		t.Fatalf("mode = %v, want picker", m.mode)
	}
	// All, Meeting, Webinar, Social
	send(m, tea.KeyPressMsg{Code: tea.KeyDown})
	send(m, tea.KeyPressMsg{Code: tea.KeyDown})
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeGrid {
		t.Fatalf("mode = %v, want grid after choosing", m.mode)
	}
	if got := m.State().Criteria().Category; got != "Webinar" {
		t.Fatalf("category = %q, want Webinar", got)
	}
	view := stripView(m)
	if strings.Contains(view, "Stroke ISIG All Member Meeting") {
		t.Fatalf("filtered event still shown:\n%s", view)
	}
	if !strings.Contains(view, "BI-ISIG All Member Meeting") {
		t.Fatalf("matching event missing:\n%s", view)
	}
}

func TestPickerCancelKeepsCriteria(t *testing.T) {
	m := newTestModel()
	send(m, keyText("g"))
	send(m, tea.KeyPressMsg{Code: tea.KeyDown})
	send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.mode != modeGrid {
		t.Fatalf("mode = %v, want grid", m.mode)
	}
	if got := m.State().Criteria().Group; got != filter.All {
		t.Fatalf("group = %q, want All", got)
	}
}

func TestMonthPickerAndYearKeys(t *testing.T) {
	m := newTestModel()
	send(m, keyText("m"))
	send(m, tea.KeyPressMsg{Code: tea.KeyUp})
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.State().Month() != 9 {
		t.Fatalf("month = %d, want 9 (October)", m.State().Month())
	}

	send(m, keyText(">"))
	send(m, keyText("]"))
	if m.State().Year() != 2027 {
		t.Fatalf("year = %d, want 2027", m.State().Year())
	}
	send(m, keyText("<"))
	if m.State().Year() != 2026 {
		t.Fatalf("year = %d, want 2026", m.State().Year())
	}

	send(m, keyText("t"))
	if m.State().Year() != 2025 || m.State().Month() != 10 {
		t.Fatalf("today went to %d-%d", m.State().Year(), m.State().Month())
	}
	if m.cursor != 25 {
		t.Fatalf("cursor = %d, want today's cell", m.cursor)
	}
}

func TestSearchUpdatesEveryKeystroke(t *testing.T) {
	m := newTestModel()
	m.cursor = 17
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	send(m, keyText("/"))
	if m.mode != modeSearch {
		t.Fatalf("mode = %v, want search", m.mode)
	}
	for _, r := range "stroke" {
		send(m, keyText(string(r)))
	}
	if got := m.State().Criteria().Search; got != "stroke" {
		t.Fatalf("search = %q", got)
	}
	v := m.State().View()
	if len(v.SelectedEvents) != 1 || v.SelectedEvents[0].ID != "4" {
		t.Fatalf("selected events = %+v", v.SelectedEvents)
	}

	// q is text while searching.
	send(m, keyText("q"))
	if got := m.State().Criteria().Search; got != "strokeq" {
		t.Fatalf("search = %q", got)
	}
	if !strings.Contains(stripView(m), widget.NoEventText[:20]) {
		t.Fatal("expected empty-day placeholder")
	}

	send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.mode != modeGrid {
		t.Fatalf("mode = %v, want grid", m.mode)
	}
	if got := m.State().Criteria().Search; got != "strokeq" {
		t.Fatalf("leaving search changed the term to %q", got)
	}
}

func TestHelpToggles(t *testing.T) {
	m := newTestModel()
	send(m, keyText("?"))
	if m.mode != modeHelp {
		t.Fatalf("mode = %v, want help", m.mode)
	}
	if !strings.Contains(stripView(m), "Calendar") {
		t.Fatalf("expected help in the side pane:\n%s", stripView(m))
	}
	send(m, keyText("q"))
	if m.mode != modeGrid {
		t.Fatalf("mode = %v, want grid after closing help", m.mode)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(keyText("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestReloadReplacesEvents(t *testing.T) {
	m := newTestModel()
	m.source = "events.yaml"
	m.loader = func() ([]event.Event, error) {
		return []event.Event{{ID: "9", Title: "Holiday Social", Date: "2025-11-12", Category: "Social"}}, nil
	}
	m.cursor = 17
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	send(m, m.reload()())
	v := m.State().View()
	if len(v.SelectedEvents) != 1 || v.SelectedEvents[0].Title != "Holiday Social" {
		t.Fatalf("selected events = %+v", v.SelectedEvents)
	}
	if !strings.Contains(m.status, "reloaded 1 events from events.yaml") || m.statusErr {
		t.Fatalf("status = %q err=%v", m.status, m.statusErr)
	}

	m.loader = func() ([]event.Event, error) { return nil, errors.New("bad yaml") }
	send(m, m.reload()())
	if !m.statusErr || !strings.Contains(m.status, "bad yaml") {
		t.Fatalf("status = %q err=%v", m.status, m.statusErr)
	}
	if len(m.State().Events()) != 1 {
		t.Fatal("failed reload should keep the previous events")
	}
}

func TestPillLinesOverflow(t *testing.T) {
	m := newTestModel()
	events := sampleEvents()[1:4]

	lines := m.pillLines(events, 12, 6)
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want titles and labels", len(lines))
	}

	lines = m.pillLines(events, 12, 3)
	if len(lines) != 3 || strings.Contains(ansi.Strip(strings.Join(lines, "\n")), "more") {
		t.Fatalf("expected titles only: %q", lines)
	}

	lines = m.pillLines(events, 12, 2)
	if len(lines) != 2 || strings.TrimSpace(ansi.Strip(lines[1])) != "+2 more" {
		t.Fatalf("expected overflow marker: %q", lines)
	}
}

func TestFitTruncatesAndPads(t *testing.T) {
	if got := fit("Tech", 6); got != "Tech  " {
		t.Fatalf("fit = %q", got)
	}
	if got := fit("Stroke ISIG", 6); ansi.StringWidth(got) != 6 || !strings.HasSuffix(got, "…") {
		t.Fatalf("fit = %q", got)
	}
}
