package event

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var sampleEvents = []Event{
	{ID: "1", Title: "Tech Meeting", Date: "2025-11-10", Time: "2:00 PM", Category: "Meeting", CommunityGroup: "Technology", Link: "https://acrm.org/acrm-communities/brain-injury/"},
	{ID: "2", Title: "BI-ISIG Webinar", Date: "2025-11-12", Time: "11:00 AM", Category: "Webinar", CommunityGroup: "BI-ISIG"},
}

const sampleJSON = `[
  {"id": 1, "title": "Tech Meeting", "date": "2025-11-10", "time": "2:00 PM",
   "category": "Meeting", "communityGroup": "Technology",
   "link": "https://acrm.org/acrm-communities/brain-injury/"},
  {"id": "2", "title": "BI-ISIG Webinar", "date": "2025-11-12", "time": "11:00 AM",
   "category": "Webinar", "communityGroup": "BI-ISIG"}
]`

const sampleYAML = `events:
  - id: 1
    title: Tech Meeting
    date: "2025-11-10"
    time: "2:00 PM"
    category: Meeting
    communityGroup: Technology
    link: https://acrm.org/acrm-communities/brain-injury/
  - id: 2
    title: BI-ISIG Webinar
    date: "2025-11-12"
    time: "11:00 AM"
    category: Webinar
    communityGroup: BI-ISIG
`

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//eventcal//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:1\r\n" +
	"DTSTAMP:20251101T000000Z\r\n" +
	"SUMMARY:Tech Meeting\r\n" +
	"DTSTART:20251110T140000\r\n" +
	"CATEGORIES:Meeting,Other\r\n" +
	"X-COMMUNITY-GROUP:Technology\r\n" +
	"URL:https://acrm.org/acrm-communities/brain-injury/\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:2\r\n" +
	"DTSTAMP:20251101T000000Z\r\n" +
	"SUMMARY:Holiday\r\n" +
	"DTSTART;VALUE=DATE:20251127\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseJSONAcceptsNumericAndStringIDs(t *testing.T) {
	got, err := Parse([]byte(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(got, sampleEvents) {
		t.Fatalf("Parse JSON:\n got %+v\nwant %+v", got, sampleEvents)
	}
}

func TestParseYAMLDocument(t *testing.T) {
	got, err := Parse([]byte(sampleYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(got, sampleEvents) {
		t.Fatalf("Parse YAML:\n got %+v\nwant %+v", got, sampleEvents)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	got, err := Parse([]byte("  \n"), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestParseKeepsMalformedDates(t *testing.T) {
	got, err := Parse([]byte(`[{"id": 9, "title": "Odd", "date": "11/12/2025"}]`), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 1 || got[0].Date != "11/12/2025" {
		t.Fatalf("malformed date was not passed through: %+v", got)
	}
}

func TestParseICS(t *testing.T) {
	got, err := Parse([]byte(sampleICS), FormatICS)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	want := Event{
		ID:             "1",
		Title:          "Tech Meeting",
		Date:           "2025-11-10",
		Time:           "2:00 PM",
		Category:       "Meeting",
		CommunityGroup: "Technology",
		Link:           "https://acrm.org/acrm-communities/brain-injury/",
	}
	if got[0] != want {
		t.Fatalf("timed event:\n got %+v\nwant %+v", got[0], want)
	}
	if got[1].Date != "2025-11-27" || got[1].Time != "" {
		t.Fatalf("all-day event: %+v", got[1])
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.yml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Load returned %d events", len(got))
	}

	if _, err := Load(filepath.Join(dir, "events.txt")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Load .txt err = %v, want ErrUnknownFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil || !strings.Contains(err.Error(), "missing.json") {
		t.Fatalf("Load missing err = %v", err)
	}
}

func TestMetaSkipsEmptyParts(t *testing.T) {
	e := Event{Category: "Webinar", CommunityGroup: "BI-ISIG"}
	if got := e.Meta(); got != "Webinar • BI-ISIG" {
		t.Fatalf("Meta = %q", got)
	}
	e.Time = "11:00 AM"
	if got := e.Meta(); got != "Webinar • 11:00 AM • BI-ISIG" {
		t.Fatalf("Meta = %q", got)
	}
	if got := (Event{}).Labels(); got != "" {
		t.Fatalf("Labels = %q", got)
	}
}
