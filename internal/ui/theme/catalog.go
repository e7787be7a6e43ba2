package theme

import "github.com/charmbracelet/lipgloss"

// catalogTheme is the default fmcat look: neutral text with teal accents.
type catalogTheme struct {
	palette ColorPalette
	styles  Styles
	symbols Symbols
}

// NewCatalogTheme creates the default theme
func NewCatalogTheme() Theme {
	palette := ColorPalette{
		Primary: lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#2dd4bf"}, // Teal

		Success: lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"},
		Error:   lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ef4444"},
		Warning: lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"},
		Info:    lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"},

		Text:         lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#f9fafb"},
		TextMuted:    lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"},
		TextEmphasis: lipgloss.AdaptiveColor{Light: "#111827", Dark: "#ffffff"},
	}

	symbols := Symbols{
		Success: "✓", // checkmark
		Error:   "✗", // X mark
		Warning: "!",
		Info:    "→", // arrow
		Bullet:  "•",
	}

	return &catalogTheme{
		palette: palette,
		symbols: symbols,
		styles: Styles{
			Success:   lipgloss.NewStyle().Foreground(palette.Success).Bold(true),
			Error:     lipgloss.NewStyle().Foreground(palette.Error).Bold(true),
			Warning:   lipgloss.NewStyle().Foreground(palette.Warning),
			Info:      lipgloss.NewStyle().Foreground(palette.Info),
			Header:    lipgloss.NewStyle().Foreground(palette.TextEmphasis).Bold(true),
			SubHeader: lipgloss.NewStyle().Foreground(palette.Primary).Bold(true),
			Bold:      lipgloss.NewStyle().Foreground(palette.TextEmphasis).Bold(true),
			Muted:     lipgloss.NewStyle().Foreground(palette.TextMuted),
			Key:       lipgloss.NewStyle().Foreground(palette.TextMuted),
			Value:     lipgloss.NewStyle().Foreground(palette.Text),
			Bullet:    lipgloss.NewStyle().Foreground(palette.Primary),
		},
	}
}

func (t *catalogTheme) Name() string {
	return "catalog"
}

func (t *catalogTheme) Palette() ColorPalette {
	return t.palette
}

func (t *catalogTheme) Styles() Styles {
	return t.styles
}

func (t *catalogTheme) Symbols() Symbols {
	return t.symbols
}
