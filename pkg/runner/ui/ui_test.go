package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/eventcal/pkg/filter"
	"tableflip.dev/eventcal/pkg/tui/app"
)

type testConfig struct {
	events string
	watch  bool
}

func (c testConfig) EventsPath() string { return c.events }
func (c testConfig) Watch() bool        { return c.watch }
func (c testConfig) LogFile() string    { return "" }
func (c testConfig) LogLevel() string   { return "info" }

// capture records the options instead of running a terminal program.
func capture(got *app.Options) func(context.Context, app.Options) error {
	return func(_ context.Context, opts app.Options) error {
		*got = opts
		return nil
	}
}

func TestDoPassesEventsAndLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte(`[{"id":1,"title":"Tech Meeting","date":"2025-11-10"}]`), 0o600); err != nil {
		t.Fatal(err)
	}

	var got app.Options
	d := &UI{
		Config:   testConfig{events: path, watch: true},
		Criteria: filter.Criteria{Category: "Meeting"},
		run:      capture(&got),
	}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	if len(got.Events) != 1 || got.Events[0].Title != "Tech Meeting" {
		t.Fatalf("events = %+v", got.Events)
	}
	if got.Source != "events.json" {
		t.Fatalf("source = %q", got.Source)
	}
	if got.Changes == nil {
		t.Fatal("expected a change channel when watching")
	}
	if got.Loader == nil {
		t.Fatal("expected a loader")
	}

	if err := os.WriteFile(path, []byte(`[]`), 0o600); err != nil {
		t.Fatal(err)
	}
	reloaded, err := got.Loader()
	if err != nil || len(reloaded) != 0 {
		t.Fatalf("reload = %+v, %v", reloaded, err)
	}
}

func TestDoWithoutWatch(t *testing.T) {
	var got app.Options
	d := &UI{
		Config: testConfig{events: filepath.Join(t.TempDir(), "missing.yaml")},
		run:    capture(&got),
	}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got.Changes != nil {
		t.Fatal("watch disabled but a change channel was set")
	}
	if got.Events == nil || len(got.Events) != 0 {
		t.Fatalf("events = %+v, want empty", got.Events)
	}
}

func TestDoRequiresConfig(t *testing.T) {
	if err := (&UI{}).Do(context.Background()); err == nil {
		t.Fatal("expected error without config")
	}
}
