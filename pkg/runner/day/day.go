// Package day prints the panel for a single day.
package day

import (
	"context"
	"io"
	"time"

	"tableflip.dev/eventcal/pkg/calendar"
	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/filter"
	"tableflip.dev/eventcal/pkg/printers"
	"tableflip.dev/eventcal/pkg/widget"
)

// Day prints the matching events of one date.
type Day struct {
	Events   []event.Event
	Criteria filter.Criteria
	// Date is a YYYY-MM-DD key, or "today".
	Date string

	Output string
	Out    io.Writer
	Clock  widget.Clock
}

// Report is the JSON form of a day.
type Report struct {
	Date   string        `json:"date"`
	Title  string        `json:"title"`
	Panel  widget.Panel  `json:"panel"`
	Events []event.Event `json:"events"`
}

// Do selects the date and prints the panel.
func (d *Day) Do(_ context.Context) error {
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}
	key := d.Date
	if key == "today" || key == "" {
		now := clock()
		key = calendar.DateKey(now.Year(), int(now.Month())-1, now.Day())
	}
	year, month, day, err := calendar.ParseDateKey(key)
	if err != nil {
		return err
	}
	// Events join on the canonical key, so "2025-11-012" selects 2025-11-12.
	key = calendar.DateKey(year, month, day)

	s := widget.New(d.Events,
		widget.WithClock(clock),
		widget.WithMonth(year, month),
		widget.WithCriteria(d.Criteria),
		widget.WithSelected(key),
	)
	v := s.View()

	if d.Output == "json" {
		return printers.JSON(d.Out, Report{
			Date:   v.SelectedDate,
			Title:  v.SelectedTitle,
			Panel:  v.Panel,
			Events: v.SelectedEvents,
		})
	}

	pp := printers.PrettyPrint{Out: d.Out}
	pp.NewLine()
	pp.Day(v)
	return nil
}
