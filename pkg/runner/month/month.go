// Package month prints one month of the calendar with its agenda.
package month

import (
	"context"
	"fmt"
	"io"
	"time"

	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/filter"
	"tableflip.dev/eventcal/pkg/printers"
	"tableflip.dev/eventcal/pkg/widget"
)

// Month prints the grid and agenda for a month.
type Month struct {
	Events   []event.Event
	Criteria filter.Criteria
	// Year picks the year; nil means the current one.
	Year *int
	// Month is 1-12; zero means the current one.
	Month int

	Output string
	Out    io.Writer
	Clock  widget.Clock
}

// Do renders the month as text or, with Output "json", as the derived view.
func (m *Month) Do(_ context.Context) error {
	if m.Month < 0 || m.Month > 12 {
		return fmt.Errorf("month %d out of range 1-12", m.Month)
	}
	clock := m.Clock
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	year, month := now.Year(), int(now.Month())-1
	if m.Year != nil {
		year = *m.Year
	}
	if m.Month != 0 {
		month = m.Month - 1
	}

	s := widget.New(m.Events,
		widget.WithClock(clock),
		widget.WithMonth(year, month),
		widget.WithCriteria(m.Criteria),
	)
	v := s.View()

	if m.Output == "json" {
		return printers.JSON(m.Out, v)
	}

	pp := printers.PrettyPrint{Out: m.Out}
	pp.NewLine()
	pp.Month(v)
	return nil
}
