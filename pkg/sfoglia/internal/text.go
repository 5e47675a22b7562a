package internal

import (
	"strings"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// lineSpacingRatio is the extra vertical space between wrapped lines,
// as a fraction of the font height.
const lineSpacingRatio = 0.2

// TextWidth returns the rendered width of text in the given font.
func TextWidth(font *ttf.Font, text string) int32 {
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

// RenderText draws a single line of text at x, y.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	renderer.Copy(texture, nil, &rect)
}

// WrapText splits text into lines no wider than maxWidth. Explicit newlines
// are preserved; words longer than maxWidth end up on their own line.
func WrapText(text string, font *ttf.Font, maxWidth int32) []string {
	var wrapped []string

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			wrapped = append(wrapped, "")
			continue
		}

		current := ""
		for _, word := range strings.Fields(line) {
			test := current
			if test != "" {
				test += " "
			}
			test += word

			if TextWidth(font, test) > maxWidth && current != "" {
				wrapped = append(wrapped, current)
				current = word
			} else {
				current = test
			}
		}
		if current != "" {
			wrapped = append(wrapped, current)
		}
	}

	return wrapped
}

// MeasureMultilineText returns the height text occupies when wrapped at
// maxWidth, including inter-line spacing.
func MeasureMultilineText(text string, font *ttf.Font, maxWidth int32) int32 {
	if text == "" {
		return 0
	}

	lines := int32(len(WrapText(text, font, maxWidth)))
	if lines == 0 {
		return 0
	}

	fontHeight := int32(font.Height())
	spacing := int32(float64(fontHeight) * lineSpacingRatio)
	return lines*fontHeight + (lines-1)*spacing
}

// RenderMultilineText word-wraps text at maxWidth and renders it starting at
// startY. The anchorX meaning depends on align: left edge, center, or right
// edge. Returns the total rendered height.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth int32, anchorX, startY int32, color sdl.Color, align constants.TextAlign) int32 {
	fontHeight := int32(font.Height())
	spacing := int32(float64(fontHeight) * lineSpacingRatio)

	y := startY
	for _, line := range WrapText(text, font, maxWidth) {
		if line != "" {
			lineWidth := TextWidth(font, line)
			x := anchorX
			switch align {
			case constants.TextAlignCenter:
				x = anchorX - lineWidth/2
			case constants.TextAlignRight:
				x = anchorX - lineWidth
			}
			RenderText(renderer, font, line, x, y, color)
		}
		y += fontHeight + spacing
	}

	height := y - startY
	if height > 0 {
		height -= spacing
	}
	return height
}

// Min32 returns the smaller of two int32 values.
func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
