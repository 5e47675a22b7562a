package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the notebook framework.
// Colors are typically loaded from CFW theme files (NextUI, Cannoli).
type Theme struct {
	CoverColor          sdl.Color // Notebook cover fill
	CoverTextColor      sdl.Color // Title text on the cover
	PaperColor          sdl.Color // Content page fill
	InkColor            sdl.Color // Body text on content pages
	EdgeColor           sdl.Color // Page edge and turning-page outline
	AccentColor         sdl.Color // Pill backgrounds, indicator pill
	ButtonLabelColor    sdl.Color // Button label text (inside pills)
	TextColor           sdl.Color // Default text color outside the page area
	HintColor           sdl.Color // Help text, footer text
	BackgroundColor     sdl.Color // Screen background color
	FontPath            string    // Path to the primary UI font
	IconFontPath        string    // Path to the icon glyph font, empty to disable icons
	BackgroundImagePath string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value into an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
