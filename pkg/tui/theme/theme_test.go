package theme

import (
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestCategoryColorIsStable(t *testing.T) {
	a := CategoryColor("Webinar")
	if a != CategoryColor("Webinar") {
		t.Fatal("colour changed between calls")
	}
	if !hexColor.MatchString(a) {
		t.Fatalf("CategoryColor = %q, want #rrggbb", a)
	}
	if CategoryColor("") != "#8a8a8a" {
		t.Fatalf("empty label colour = %q", CategoryColor(""))
	}
}

func TestCategoryColorSeparatesLabels(t *testing.T) {
	labels := []string{"Meeting", "Webinar", "Social"}
	seen := map[string]string{}
	for _, l := range labels {
		c := CategoryColor(l)
		if other, ok := seen[c]; ok {
			t.Fatalf("%q and %q share colour %s", l, other, c)
		}
		seen[c] = l
	}
}
