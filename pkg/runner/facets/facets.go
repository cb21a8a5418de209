// Package facets lists the category and community group options.
package facets

import (
	"context"
	"io"

	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/filter"
	"tableflip.dev/eventcal/pkg/printers"
)

// Facets prints the dropdown options derived from the events.
type Facets struct {
	Events []event.Event

	Output string
	Out    io.Writer
}

// Report is the JSON form of the facets.
type Report struct {
	Categories []string `json:"categories"`
	Groups     []string `json:"groups"`
}

func (f *Facets) Do(_ context.Context) error {
	categories, groups := filter.Facets(f.Events)
	if f.Output == "json" {
		return printers.JSON(f.Out, Report{Categories: categories, Groups: groups})
	}
	pp := printers.PrettyPrint{Out: f.Out}
	pp.NewLine()
	pp.Facets(categories, groups)
	return nil
}
