package store

import (
	"errors"
	"fmt"
	"io/fs"

	"tableflip.dev/eventcal/pkg/event"
	"tableflip.dev/eventcal/pkg/log"
)

// LoadEvents reads the event file. A missing file is an empty calendar.
func LoadEvents(path string) ([]event.Event, error) {
	events, err := event.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("events file not found, starting empty", "path", path)
		return []event.Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: load events: %w", err)
	}
	log.Debug("events loaded", "path", path, "count", len(events))
	return events, nil
}
