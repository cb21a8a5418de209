// Package event defines the read-only event records shown by the calendar
// and decodes them from JSON, YAML and iCalendar files.
package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID identifies an event. On input it accepts either a JSON number or a
// JSON string so integer ids from hand-written files load unchanged.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("event id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Event is a single dated calendar event. Date is a local calendar date in
// YYYY-MM-DD form; Time is display text and never parsed.
type Event struct {
	ID             ID     `json:"id"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	Time           string `json:"time,omitempty"`
	Category       string `json:"category,omitempty"`
	CommunityGroup string `json:"communityGroup,omitempty"`
	Link           string `json:"link,omitempty"`
}

// Labels joins the non-empty category and group with " • ".
func (e Event) Labels() string {
	return Join(e.Category, e.CommunityGroup)
}

// Meta joins category, time and group with " • ", skipping empty parts.
func (e Event) Meta() string {
	return Join(e.Category, e.Time, e.CommunityGroup)
}

// Join concatenates the non-empty parts with " • ".
func Join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " • ")
}
