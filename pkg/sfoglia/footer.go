package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem pairs a button name with the action it performs, rendered
// as a pill in the widget footer.
type FooterHelpItem struct {
	ButtonName string // Short button label ("A", "B", "<", ">")
	HelpText   string // Action description ("Open", "Back")
}

const (
	footerHeight     int32 = 60
	footerPillGap    int32 = 14
	footerPillHPad   int32 = 12
	footerPillVPad   int32 = 5
	footerPillMargin int32 = 20
)

// footerRect returns the screen region reserved for the footer. Pointer
// input inside it never reaches the page-turn click zones.
func footerRect(window *internal.Window) sdl.Rect {
	return sdl.Rect{
		X: 0,
		Y: window.GetHeight() - footerHeight,
		W: window.GetWidth(),
		H: footerHeight,
	}
}

// renderFooter draws the help pills right-aligned in the footer region.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, window *internal.Window) {
	if len(items) == 0 {
		return
	}

	theme := internal.GetTheme()
	rect := footerRect(window)
	pillH := int32(font.Height()) + footerPillVPad*2
	y := rect.Y + (rect.H-pillH)/2

	// Lay pills out from the right edge
	x := rect.X + rect.W - footerPillMargin
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]

		buttonW := internal.TextWidth(font, item.ButtonName) + footerPillHPad*2
		helpW := internal.TextWidth(font, item.HelpText)

		x -= helpW
		internal.RenderText(renderer, font, item.HelpText, x, y+footerPillVPad, theme.HintColor)

		x -= buttonW + footerPillGap/2
		pill := sdl.Rect{X: x, Y: y, W: buttonW, H: pillH}
		renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, theme.AccentColor.A)
		renderer.FillRect(&pill)
		internal.RenderText(renderer, font, item.ButtonName, x+footerPillHPad, y+footerPillVPad, theme.ButtonLabelColor)

		x -= footerPillGap
	}
}
