// Package nextui provides theming support for the NextUI custom firmware.
package nextui

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

const (
	nextUIFontPath     = "/mnt/SDCARD/.system/res/fonts/BPreplayBold.otf"
	nextUIIconFontPath = "/mnt/SDCARD/.system/res/fonts/materialdesignicons-webfont.ttf"
)

// InitNextUITheme creates a theme matching NextUI's dark system look.
func InitNextUITheme() internal.Theme {
	return internal.Theme{
		CoverColor:       internal.HexToColor(0x1A1A1A),
		CoverTextColor:   internal.HexToColor(0xFFFFFF),
		PaperColor:       internal.HexToColor(0x262626),
		InkColor:         internal.HexToColor(0xE6E6E6),
		EdgeColor:        internal.HexToColor(0x4D4D4D),
		AccentColor:      internal.HexToColor(0x9B2257),
		ButtonLabelColor: internal.HexToColor(0xFFFFFF),
		HintColor:        internal.HexToColor(0x999999),
		TextColor:        internal.HexToColor(0xFFFFFF),
		BackgroundColor:  internal.HexToColor(0x000000),
		FontPath:         nextUIFontPath,
		IconFontPath:     nextUIIconFontPath,
	}
}
