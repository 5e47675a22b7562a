// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		CoverColor:       internal.HexToColor(0x6B3A2A),
		CoverTextColor:   internal.HexToColor(0xF5E9D4),
		PaperColor:       internal.HexToColor(0xFDF6E3),
		InkColor:         internal.HexToColor(0x2B2B2B),
		EdgeColor:        internal.HexToColor(0xC9B98F),
		AccentColor:      internal.HexToColor(0x008080),
		ButtonLabelColor: internal.HexToColor(0x000000),
		HintColor:        internal.HexToColor(0x000000),
		TextColor:        internal.HexToColor(0xFFFFFF),
		BackgroundColor:  internal.HexToColor(0xFFFFFF),
		FontPath:         fontPath,
	}
}
