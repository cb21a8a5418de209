package filter

import (
	"sort"

	"tableflip.dev/eventcal/pkg/calendar"
	"tableflip.dev/eventcal/pkg/event"
)

// Within returns the events dated from fromKey up to, but not including,
// fromKey plus days. The result is ordered by date, keeping input order
// within a day. Events with malformed dates are left out.
func Within(events []event.Event, fromKey string, days int) ([]event.Event, error) {
	start, err := calendar.Local(fromKey)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 0, days)

	out := make([]event.Event, 0)
	for _, e := range events {
		t, err := calendar.Local(e.Date)
		if err != nil {
			continue
		}
		if !t.Before(start) && t.Before(end) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := calendar.Local(out[i].Date)
		b, _ := calendar.Local(out[j].Date)
		return a.Before(b)
	})
	return out, nil
}
