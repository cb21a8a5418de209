// Package widget holds the calendar's view state and composes the derived
// view (decorated grid, facets, side panel) from it. The state is owned by a
// single caller; every control mutates it synchronously and View recomputes
// from the current inputs.
package widget

import (
	"time"

	"tableflip.dev/eventcal/pkg/calendar"
	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/filter"
)

// Clock returns the current time. It is read once, when the state is built.
type Clock func() time.Time

// State is the mutable view state of one calendar widget.
type State struct {
	today time.Time

	events     []event.Event
	generation int

	year     int
	month    int
	monthSet bool

	criteria filter.Criteria
	selected string

	cache derivedCache
}

// Option configures a new State.
type Option func(*State)

// WithClock substitutes the clock used to determine "today".
func WithClock(c Clock) Option {
	return func(s *State) {
		if c != nil {
			s.today = c()
		}
	}
}

// WithMonth starts the widget on the given year and zero-based month instead
// of today's.
func WithMonth(year, month int) Option {
	return func(s *State) {
		s.year = year
		s.month = clampMonth(month)
		s.monthSet = true
	}
}

// WithCriteria starts the widget with the given filters and search.
func WithCriteria(c filter.Criteria) Option {
	return func(s *State) {
		s.criteria = normalize(c)
	}
}

// WithSelected starts the widget with a selected date key.
func WithSelected(key string) Option {
	return func(s *State) {
		s.selected = key
	}
}

// New builds the widget state for events. The displayed month defaults to
// the clock's current month.
func New(events []event.Event, opts ...Option) *State {
	s := &State{
		today:    time.Now(),
		criteria: filter.Default(),
	}
	s.setEvents(events)

	for _, opt := range opts {
		opt(s)
	}
	if !s.monthSet {
		s.Today()
	}
	return s
}

// SetEvents replaces the event list, e.g. after the source file changed.
// Filters and selection are kept.
func (s *State) SetEvents(events []event.Event) {
	s.setEvents(events)
}

func (s *State) setEvents(events []event.Event) {
	s.events = append([]event.Event(nil), events...)
	s.generation++
}

// Events returns the full event list.
func (s *State) Events() []event.Event {
	return s.events
}

// TodayDate returns the date the widget considers today.
func (s *State) TodayDate() time.Time {
	return s.today
}

// Year returns the displayed year.
func (s *State) Year() int { return s.year }

// Month returns the displayed zero-based month.
func (s *State) Month() int { return s.month }

// Criteria returns the current filters and search term.
func (s *State) Criteria() filter.Criteria { return s.criteria }

// SelectedDate returns the selected date key, or "" when none is selected.
func (s *State) SelectedDate() string { return s.selected }

// SetMonth shows the zero-based month of the current year.
func (s *State) SetMonth(month int) {
	s.month = clampMonth(month)
}

// Today moves the display back to today's month and year.
func (s *State) Today() {
	s.year, s.month = s.today.Year(), int(s.today.Month())-1
}

// PrevYear shows the same month one year earlier.
func (s *State) PrevYear() { s.year-- }

// NextYear shows the same month one year later.
func (s *State) NextYear() { s.year++ }

// SetSearch sets the title search term.
func (s *State) SetSearch(term string) { s.criteria.Search = term }

// SetCategory sets the category filter; "" or filter.All disables it.
func (s *State) SetCategory(category string) {
	s.criteria.Category = orAll(category)
}

// SetGroup sets the community group filter; "" or filter.All disables it.
func (s *State) SetGroup(group string) {
	s.criteria.Group = orAll(group)
}

// Select sets the selected date key directly. An empty key clears it.
func (s *State) Select(key string) { s.selected = key }

// ClickCell handles a click on grid position index (0..41). A populated cell
// selects its day; an empty or out-of-range cell clears the selection.
func (s *State) ClickCell(index int) {
	if index < 0 || index >= calendar.Cells {
		s.selected = ""
		return
	}
	day := calendar.Grid(s.year, s.month)[index]
	if day == 0 {
		s.selected = ""
		return
	}
	s.selected = calendar.DateKey(s.year, s.month, day)
}

func clampMonth(m int) int {
	switch {
	case m < 0:
		return 0
	case m > 11:
		return 11
	}
	return m
}

func orAll(v string) string {
	if v == "" {
		return filter.All
	}
	return v
}

func normalize(c filter.Criteria) filter.Criteria {
	c.Category = orAll(c.Category)
	c.Group = orAll(c.Group)
	return c
}
