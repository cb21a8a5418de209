package event

import (
	"bytes"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/eventcal/pkg/calendar"
)

const (
	layoutICSTime = "3:04 PM"

	propertyCommunityGroup = ical.ComponentProperty("X-COMMUNITY-GROUP")
)

// parseICS maps VEVENTs onto events. Start times in UTC are shown on the
// local calendar date; times carrying a TZID keep their own wall date.
func parseICS(data []byte) ([]Event, error) {
	cal, err := ical.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		events = append(events, fromVEvent(ve))
	}
	return events, nil
}

func fromVEvent(ve *ical.VEvent) Event {
	var ev Event
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		ev.ID = ID(p.Value)
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		first, _, _ := strings.Cut(p.Value, ",")
		ev.Category = strings.TrimSpace(first)
	}
	if p := ve.GetProperty(propertyCommunityGroup); p != nil {
		ev.CommunityGroup = strings.TrimSpace(p.Value)
	}
	if p := ve.GetProperty(ical.ComponentPropertyUrl); p != nil {
		ev.Link = strings.TrimSpace(p.Value)
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return ev
	}
	if isAllDay(dtStart) {
		if start, err := ve.GetAllDayStartAt(); err == nil {
			ev.Date = calendar.DateKey(start.Year(), int(start.Month())-1, start.Day())
		}
		return ev
	}
	start, err := ve.GetStartAt()
	if err != nil {
		return ev
	}
	if strings.HasSuffix(dtStart.Value, "Z") {
		start = start.In(time.Local)
	}
	ev.Date = calendar.DateKey(start.Year(), int(start.Month())-1, start.Day())
	ev.Time = start.Format(layoutICSTime)
	return ev
}

func isAllDay(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}
