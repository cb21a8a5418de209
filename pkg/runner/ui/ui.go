// Package ui starts the interactive calendar.
package ui

import (
	"context"
	"errors"
	"path/filepath"

	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/filter"
	"tableflip.dev/eventcal/pkg/log"
	"tableflip.dev/eventcal/pkg/store"
	"tableflip.dev/eventcal/pkg/tui/app"
	"tableflip.dev/eventcal/pkg/widget"
)

type UI struct {
	Config   store.Config
	Criteria filter.Criteria

	// run is replaced in tests.
	run func(context.Context, app.Options) error
}

// Do loads the events, starts the file watcher when enabled and runs the
// terminal UI until the user quits.
func (d *UI) Do(ctx context.Context) error {
	if d.Config == nil {
		return errors.New("can not start ui, no config")
	}
	path := d.Config.EventsPath()

	events, err := store.LoadEvents(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := app.Options{
		Events: events,
		Widget: []widget.Option{widget.WithCriteria(d.Criteria)},
		Source: filepath.Base(path),
		Loader: func() ([]event.Event, error) { return store.LoadEvents(path) },
	}
	if d.Config.Watch() {
		changes, err := store.Watch(ctx, path)
		if err != nil {
			log.Error("watch disabled", err, "path", path)
		} else {
			opts.Changes = changes
		}
	}

	run := d.run
	if run == nil {
		run = app.Run
	}
	return run(ctx, opts)
}
