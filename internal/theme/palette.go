package theme

import "github.com/charmbracelet/lipgloss"

// Palette describes semantic colour slots. Values are hex strings so the
// same palette feeds lipgloss and CSS.
type Palette struct {
	Background string
	Surface    string
	Text       string
	SubtleText string
	Muted      string
	Accent     string
	Danger     string
	Toggle     string
	ToggleText string
}

var palettes = map[Theme]Palette{
	Light: {
		Background: "#F6F8FF",
		Surface:    "#FFFFFF",
		Text:       "#111827",
		SubtleText: "#374151",
		Muted:      "#9CA3AF",
		Accent:     "#3B82F6",
		Danger:     "#EF4444",
		Toggle:     "#F3F4F6",
		ToggleText: "#1F2937",
	},
	Dark: {
		Background: "#141D2F",
		Surface:    "#1E2A47",
		Text:       "#FFFFFF",
		SubtleText: "#D1D5DB",
		Muted:      "#9CA3AF",
		Accent:     "#60A5FA",
		Danger:     "#EF4444",
		Toggle:     "#9D174D",
		ToggleText: "#F3F4F6",
	},
}

// PaletteFor returns a copy of the palette for t.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Default]
}

// Color converts a palette slot to a lipgloss colour.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}
