package internal

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
	xdraw "golang.org/x/image/draw"
)

// svgSupersample rasterizes SVGs at double resolution, then downscales.
// ScannerGV has no antialiasing of its own, so this keeps curved edges clean.
const svgSupersample = 2

// LoadSVGTexture rasterizes an SVG file into an SDL texture of the requested
// size. Used for cover emblems and page ornaments.
func LoadSVGTexture(renderer *sdl.Renderer, path string, width, height int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("load svg %s: %w", path, err)
	}

	bigW, bigH := int(width)*svgSupersample, int(height)*svgSupersample
	icon.SetTarget(0, 0, float64(bigW), float64(bigH))

	big := image.NewRGBA(image.Rect(0, 0, bigW, bigH))
	scanner := rasterx.NewScannerGV(bigW, bigH, big, big.Bounds())
	raster := rasterx.NewDasher(bigW, bigH, scanner)
	icon.Draw(raster, 1.0)

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	xdraw.CatmullRom.Scale(rgba, rgba.Bounds(), big, big.Bounds(), xdraw.Over, nil)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		width, height, 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("create svg surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create svg texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}
