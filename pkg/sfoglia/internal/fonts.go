package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes holds the point sizes loaded for each role.
type FontSizes struct {
	Small  int
	Medium int
	Large  int
	Icon   int
}

// DefaultFontSizes are tuned for 1024x768 and scale acceptably on handheld
// displays down to 640x480.
var DefaultFontSizes = FontSizes{
	Small:  20,
	Medium: 28,
	Large:  42,
	Icon:   32,
}

// FontSet holds the loaded fonts shared by all widgets.
// Populated by initFonts during framework initialization.
type FontSet struct {
	SmallFont  *ttf.Font
	MediumFont *ttf.Font
	LargeFont  *ttf.Font
	IconFont   *ttf.Font // nil when the theme has no icon font
}

var Fonts FontSet

func initFonts(sizes FontSizes) {
	theme := GetTheme()

	Fonts.SmallFont = openFontOrDie(theme.FontPath, sizes.Small)
	Fonts.MediumFont = openFontOrDie(theme.FontPath, sizes.Medium)
	Fonts.LargeFont = openFontOrDie(theme.FontPath, sizes.Large)

	if theme.IconFontPath != "" {
		icon, err := ttf.OpenFont(theme.IconFontPath, sizes.Icon)
		if err != nil {
			GetInternalLogger().Warn("Icon font unavailable; icon glyphs disabled", "path", theme.IconFontPath, "error", err)
			icon = nil
		}
		Fonts.IconFont = icon
	}
}

func openFontOrDie(path string, size int) *ttf.Font {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		GetInternalLogger().Error("Failed to open UI font", "path", path, "size", size, "error", err)
		panic(err)
	}
	return font
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.SmallFont, Fonts.MediumFont, Fonts.LargeFont, Fonts.IconFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
