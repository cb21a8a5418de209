// Package filter derives the visible events, facet options and per-day
// selections from an event list. Every function here is pure: inputs are
// never modified and excluded events are simply omitted.
package filter

import (
	"strings"

	"tableflip.dev/eventcal/pkg/event"
)

// All is the facet value that disables filtering on that axis.
const All = "All"

// Criteria is the current filter and search state.
type Criteria struct {
	Category string `json:"category"`
	Group    string `json:"group"`
	Search   string `json:"search"`
}

// Default returns criteria that keep every event.
func Default() Criteria {
	return Criteria{Category: All, Group: All}
}

// Facets returns the category and community group options. Each list starts
// with All followed by the distinct non-empty values in first-seen order.
func Facets(events []event.Event) (categories, groups []string) {
	categories = distinct(events, func(e event.Event) string { return e.Category })
	groups = distinct(events, func(e event.Event) string { return e.CommunityGroup })
	return categories, groups
}

func distinct(events []event.Event, label func(event.Event) string) []string {
	seen := make(map[string]struct{}, len(events))
	out := []string{All}
	for _, e := range events {
		v := label(e)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Matches reports whether e passes every axis of c. An empty category or
// group behaves like All.
func (c Criteria) Matches(e event.Event) bool {
	if c.Category != "" && c.Category != All && e.Category != c.Category {
		return false
	}
	if c.Group != "" && c.Group != All && e.CommunityGroup != c.Group {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(c.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), term)
}

// Apply returns the events matching c, in input order. An empty Category or
// Group matches every event, the same as All, so a zero Criteria keeps all.
func Apply(events []event.Event, c Criteria) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if c.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// OnDate returns the events whose date equals dateKey, in input order. An
// empty key selects nothing.
func OnDate(events []event.Event, dateKey string) []event.Event {
	out := make([]event.Event, 0)
	if dateKey == "" {
		return out
	}
	for _, e := range events {
		if e.Date == dateKey {
			out = append(out, e)
		}
	}
	return out
}

// ByDate indexes events by their exact date string, preserving input order
// within each day.
func ByDate(events []event.Event) map[string][]event.Event {
	idx := make(map[string][]event.Event)
	for _, e := range events {
		idx[e.Date] = append(idx[e.Date], e)
	}
	return idx
}
