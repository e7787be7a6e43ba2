// Package theme holds the colors, styles and symbols used for terminal output.
package theme

import "github.com/charmbracelet/lipgloss"

// ColorPalette is the set of adaptive colors a theme is built from
type ColorPalette struct {
	Primary lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	Text         lipgloss.AdaptiveColor
	TextMuted    lipgloss.AdaptiveColor
	TextEmphasis lipgloss.AdaptiveColor
}

// Styles are the rendered styles derived from a palette
type Styles struct {
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Key       lipgloss.Style
	Value     lipgloss.Style
	Bullet    lipgloss.Style
}

// Symbols are the glyphs prefixed to messages
type Symbols struct {
	Success string
	Error   string
	Warning string
	Info    string
	Bullet  string
}

// Theme is a named combination of palette, styles and symbols
type Theme interface {
	Name() string
	Palette() ColorPalette
	Styles() Styles
	Symbols() Symbols
}

var current Theme = NewCatalogTheme()

// Current returns the active theme
func Current() Theme {
	return current
}
