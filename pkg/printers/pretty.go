package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/eventcal/pkg/event"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " event")
	default:
		_, _ = c.Fprintln(pp.out(), " events")
	}
}

// Placeholder prints a faint italic line, used for the panel prompts.
func (pp *PrettyPrint) Placeholder(text string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(pp.out(), text)
}

// Events prints a day's events: title, then the meta line and link indented.
func (pp *PrettyPrint) Events(events ...event.Event) {
	pp.events("", events...)
}

// events prints the list with prefix in front of the first title and blank
// space of the same width in front of every other line.
func (pp *PrettyPrint) events(prefix string, events ...event.Event) {
	w := pp.out()
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = fmt.Fprint(w, prefix)
		_, _ = f.Fprintln(w, "none")
		return
	}

	t := color.New(color.Bold)
	m := color.New(color.Faint)
	l := color.New(color.FgCyan, color.Underline)
	indent := strings.Repeat(" ", len([]rune(prefix)))

	for i, e := range events {
		lead := indent
		if i == 0 {
			lead = prefix
		}
		_, _ = fmt.Fprint(w, lead)
		_, _ = t.Fprintln(w, e.Title)
		if meta := e.Meta(); meta != "" {
			_, _ = fmt.Fprint(w, indent+"  ")
			_, _ = m.Fprintln(w, meta)
		}
		if e.Link != "" {
			_, _ = fmt.Fprint(w, indent+"  ")
			_, _ = l.Fprintln(w, e.Link)
		}
	}
}
