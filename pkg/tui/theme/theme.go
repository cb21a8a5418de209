package theme

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the calendar UI.
type Theme struct {
	Controls ControlsTheme
	Grid     GridTheme
	Panel    PanelTheme
	Picker   PickerTheme
	Footer   FooterTheme
}

// ControlsTheme styles the month/year/search/filter bar.
type ControlsTheme struct {
	Label  lipgloss.Style
	Value  lipgloss.Style
	Active lipgloss.Style
	Key    lipgloss.Style
}

// GridTheme styles the weekday header and day cells.
type GridTheme struct {
	Header    lipgloss.Style
	Day       lipgloss.Style
	Today     lipgloss.Style
	Selected  lipgloss.Style
	Cursor    lipgloss.Style
	Dot       lipgloss.Style
	Pill      lipgloss.Style
	PillLabel lipgloss.Style
	More      lipgloss.Style
}

// PanelTheme styles the side panel.
type PanelTheme struct {
	Frame       lipgloss.Style
	Title       lipgloss.Style
	Placeholder lipgloss.Style
	EventTitle  lipgloss.Style
	EventMeta   lipgloss.Style
	Link        lipgloss.Style
}

// PickerTheme styles the dropdown picker.
type PickerTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
}

// FooterTheme groups styles used by the bottom help/status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Controls: ControlsTheme{
			Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Value:  lipgloss.NewStyle().Bold(true),
			Active: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Grid: GridTheme{
			Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Day:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Today:     lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("212")),
			Selected:  lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			Cursor:    lipgloss.NewStyle().Reverse(true),
			Dot:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Pill:      lipgloss.NewStyle(),
			PillLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			More:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Title:       lipgloss.NewStyle().Bold(true),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			EventTitle:  lipgloss.NewStyle().Bold(true),
			EventMeta:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Link:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		},
		Picker: PickerTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(0, 1),
			Title:    lipgloss.NewStyle().Bold(true),
			Option:   lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		},
	}
}

// CategoryColor returns a stable colour hex for a facet label so every pill
// of one category shares a hue. Empty labels get a neutral grey.
func CategoryColor(label string) string {
	if label == "" {
		return "#8a8a8a"
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(label))
	hue := float64(h.Sum32()%360)
	return colorful.Hsv(hue, 0.45, 0.9).Hex()
}

// PillStyle returns the pill style tinted with the category colour.
func (g GridTheme) PillStyle(category string) lipgloss.Style {
	return g.Pill.Foreground(lipgloss.Color(CategoryColor(category)))
}
