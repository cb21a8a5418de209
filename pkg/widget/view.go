package widget

import (
	"slices"

	"tableflip.dev/eventcal/pkg/calendar"
	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/filter"
)

// Panel is what the side panel shows.
type Panel int

const (
	// PanelPrompt asks the user to pick a day; nothing is selected.
	PanelPrompt Panel = iota
	// PanelEmpty is shown when the selected day has no matching events.
	PanelEmpty
	// PanelEvents lists the selected day's matching events.
	PanelEvents
)

func (p Panel) String() string {
	switch p {
	case PanelEmpty:
		return "empty"
	case PanelEvents:
		return "events"
	}
	return "prompt"
}

// MarshalText implements encoding.TextMarshaler.
func (p Panel) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Placeholder texts for the side panel.
const (
	PromptText  = "Select a day to view events that match your filters and search."
	NoEventText = "No events for this day with the current filters/search."
)

// Cell is one decorated grid position. Empty cells have Day == 0 and no Key.
type Cell struct {
	Day      int           `json:"day,omitempty"`
	Key      string        `json:"key,omitempty"`
	Today    bool          `json:"today,omitempty"`
	Selected bool          `json:"selected,omitempty"`
	Events   []event.Event `json:"events,omitempty"`
}

// Empty reports whether the cell is padding.
func (c Cell) Empty() bool { return c.Day == 0 }

// HasEvents reports whether the day has matching events.
func (c Cell) HasEvents() bool { return len(c.Events) > 0 }

// View is everything a renderer needs for one pass.
type View struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Title    string          `json:"title"`
	Criteria filter.Criteria `json:"criteria"`

	Cells      []Cell        `json:"cells"`
	Categories []string      `json:"categories"`
	Groups     []string      `json:"groups"`
	Filtered   []event.Event `json:"filtered"`

	SelectedDate   string        `json:"selectedDate,omitempty"`
	SelectedTitle  string        `json:"selectedTitle,omitempty"`
	SelectedEvents []event.Event `json:"selectedEvents"`
	Panel          Panel         `json:"panel"`
}

// derivedCache remembers the facets and filtered events for one pair of
// (event generation, criteria). Anything else is recomputed every pass.
type derivedCache struct {
	valid      bool
	generation int
	criteria   filter.Criteria

	categories []string
	groups     []string
	filtered   []event.Event
	byDate     map[string][]event.Event
}

func (s *State) derived() *derivedCache {
	c := &s.cache
	if c.valid && c.generation == s.generation && c.criteria == s.criteria {
		return c
	}
	if !c.valid || c.generation != s.generation {
		c.categories, c.groups = filter.Facets(s.events)
	}
	c.filtered = filter.Apply(s.events, s.criteria)
	c.byDate = filter.ByDate(c.filtered)
	c.generation = s.generation
	c.criteria = s.criteria
	c.valid = true
	return c
}

// View recomputes the derived view from the current state. Its slices are
// copies, so callers may modify them.
func (s *State) View() View {
	d := s.derived()

	v := View{
		Year:       s.year,
		Month:      s.month,
		Title:      calendar.MonthTitle(s.year, s.month),
		Criteria:   s.criteria,
		Cells:      make([]Cell, calendar.Cells),
		Categories: slices.Clone(d.categories),
		Groups:     slices.Clone(d.groups),
		Filtered:   slices.Clone(d.filtered),
	}

	todayDay := 0
	if s.today.Year() == s.year && int(s.today.Month())-1 == s.month {
		todayDay = s.today.Day()
	}

	for i, day := range calendar.Grid(s.year, s.month) {
		if day == 0 {
			continue
		}
		key := calendar.DateKey(s.year, s.month, day)
		v.Cells[i] = Cell{
			Day:      day,
			Key:      key,
			Today:    day == todayDay,
			Selected: key == s.selected,
			Events:   slices.Clone(d.byDate[key]),
		}
	}

	v.SelectedEvents = []event.Event{}
	if s.selected == "" {
		v.Panel = PanelPrompt
		return v
	}
	v.SelectedDate = s.selected
	v.SelectedTitle = calendar.DisplayDate(s.selected)
	v.SelectedEvents = filter.OnDate(d.filtered, s.selected)
	v.Panel = PanelEmpty
	if len(v.SelectedEvents) > 0 {
		v.Panel = PanelEvents
	}
	return v
}
