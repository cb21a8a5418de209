// Package upcoming lists the events of the next few days.
package upcoming

import (
	"context"
	"fmt"
	"io"
	"time"

	"tableflip.dev/eventcal/pkg/calendar"
	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/filter"
	"tableflip.dev/eventcal/pkg/printers"
	"tableflip.dev/eventcal/pkg/timeutil"
	"tableflip.dev/eventcal/pkg/widget"
)

// Upcoming prints the matching events from today through a window of days.
type Upcoming struct {
	Events   []event.Event
	Criteria filter.Criteria
	// Window is a span such as "2w" or "10d"; empty means two weeks.
	Window string

	Output string
	Out    io.Writer
	Clock  widget.Clock
}

// Report is the JSON form of the listing.
type Report struct {
	From   string        `json:"from"`
	Window string        `json:"window"`
	Events []event.Event `json:"events"`
}

func (u *Upcoming) Do(_ context.Context) error {
	days, label, err := timeutil.ParseWindow(u.Window)
	if err != nil {
		return err
	}
	clock := u.Clock
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	from := calendar.DateKey(now.Year(), int(now.Month())-1, now.Day())

	events, err := filter.Within(filter.Apply(u.Events, u.Criteria), from, days)
	if err != nil {
		return err
	}

	if u.Output == "json" {
		return printers.JSON(u.Out, Report{From: from, Window: label, Events: events})
	}
	pp := printers.PrettyPrint{Out: u.Out}
	pp.NewLine()
	pp.Upcoming(fmt.Sprintf("Next %s from %s", label, calendar.DisplayDate(from)), events...)
	return nil
}
