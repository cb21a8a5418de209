package event

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"
)

// Format names an event file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

// ErrUnknownFormat is returned for file extensions Load cannot decode.
var ErrUnknownFormat = errors.New("event: unknown file format")

// FormatFor picks the decoder for a file by extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".ics", ".ical", ".ifb":
		return FormatICS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads the events stored at path, in file order.
func Load(path string) ([]Event, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("event: read %s: %w", path, err)
	}
	events, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("event: decode %s: %w", path, err)
	}
	return events, nil
}

// Parse decodes events from data. JSON and YAML accept either a top-level
// list or an object with an "events" list.
func Parse(data []byte, format Format) ([]Event, error) {
	switch format {
	case FormatJSON, FormatYAML:
		return parseDocument(data)
	case FormatICS:
		return parseICS(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

type document struct {
	Events []Event `json:"events"`
}

func parseDocument(data []byte) ([]Event, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Event{}, nil
	}
	var list []Event
	listErr := yaml.Unmarshal(data, &list)
	if listErr == nil {
		if list == nil {
			list = []Event{}
		}
		return list, nil
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, listErr
	}
	if doc.Events == nil {
		doc.Events = []Event{}
	}
	return doc.Events, nil
}
