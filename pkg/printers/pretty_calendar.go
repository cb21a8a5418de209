package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/eventcal/pkg/calendar"
	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/widget"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the compact grid for v followed by an agenda of every day
// that has matching events.
func (pp *PrettyPrint) Month(v widget.View) {
	pp.MonthGrid(v)
	pp.Agenda(v)
}

// MonthGrid prints the centered title, the weekday header and the weeks of
// the month. Trailing padding weeks are left out.
func (pp *PrettyPrint) MonthGrid(v widget.View) {
	w := pp.out()

	tf := color.New(color.FgWhite, color.Italic)
	m := v.Title
	mid := max((width-len(m))/2, 0)
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)

	hf := color.New(color.Faint)
	header := make([]string, len(calendar.WeekdayLabels))
	for i, l := range calendar.WeekdayLabels {
		header[i] = l[:2]
	}
	_, _ = hf.Fprintln(w, strings.Join(header, " "))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for row := 0; row < calendar.Cells/7; row++ {
		week := v.Cells[row*7 : row*7+7]
		if blankWeek(week) {
			continue
		}
		for col, c := range week {
			sep := " "
			if col == 6 {
				sep = "\n"
			}
			if c.Empty() {
				_, _ = fmt.Fprint(w, "  "+sep)
				continue
			}
			printer := l1
			if c.HasEvents() {
				printer = l2
			}
			if c.Today {
				printer = color.New(color.Bold, color.Underline)
			}
			if c.Selected {
				printer = color.New(color.ReverseVideo)
			}
			_, _ = printer.Fprintf(w, "%2d", c.Day)
			_, _ = fmt.Fprint(w, sep)
		}
	}
	_, _ = fmt.Fprintln(w, "")
}

func blankWeek(week []widget.Cell) bool {
	for _, c := range week {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// Agenda lists the matching events of the month by day.
func (pp *PrettyPrint) Agenda(v widget.View) {
	pp.TitleWithCount(v.Title, countEvents(v))
	found := false
	for i, c := range v.Cells {
		if !c.HasEvents() {
			continue
		}
		found = true
		prefix := fmt.Sprintf("%2d %s  ", c.Day, calendar.WeekdayLabels[i%7])
		pp.events(prefix, c.Events...)
	}
	if !found {
		pp.Placeholder(" none")
	}
	pp.NewLine()
}

func countEvents(v widget.View) int {
	n := 0
	for _, c := range v.Cells {
		n += len(c.Events)
	}
	return n
}

// Day prints the side panel for the selected day of v.
func (pp *PrettyPrint) Day(v widget.View) {
	switch v.Panel {
	case widget.PanelPrompt:
		pp.Placeholder(widget.PromptText)
		return
	case widget.PanelEmpty:
		pp.Title(v.SelectedTitle)
		pp.Placeholder(widget.NoEventText)
	default:
		pp.TitleWithCount(v.SelectedTitle, len(v.SelectedEvents))
		pp.Events(v.SelectedEvents...)
	}
	pp.NewLine()
}

// Facets prints the category and group options side by side.
func (pp *PrettyPrint) Facets(categories, groups []string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Categories"), bold.Sprint("Community groups"))
	for i := 0; i < max(len(categories), len(groups)); i++ {
		var c, g string
		if i < len(categories) {
			c = categories[i]
		}
		if i < len(groups) {
			g = groups[i]
		}
		tbl.AddRow(c, g)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Upcoming prints events grouped under their display date.
func (pp *PrettyPrint) Upcoming(title string, events ...event.Event) {
	pp.TitleWithCount(title, len(events))
	if len(events) == 0 {
		pp.Placeholder(" none")
		pp.NewLine()
		return
	}
	for i := 0; i < len(events); {
		j := i
		for j < len(events) && events[j].Date == events[i].Date {
			j++
		}
		d := color.New(color.Italic)
		_, _ = d.Fprintln(pp.out(), calendar.DisplayDate(events[i].Date))
		pp.events("  ", events[i:j]...)
		i = j
	}
	pp.NewLine()
}
