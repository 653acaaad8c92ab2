package render

import (
	"image/color"

	"github.com/automoto/folio-fx/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2 with the toolbar faces
)

// drawText draws s with its top-left corner at (x, y). Missing fonts draw nothing.
func drawText(screen *ebiten.Image, s string, name fonts.FontName, x, y float64, c color.Color) {
	if s == "" || !fonts.Loaded(name) {
		return
	}
	face := name.Get()
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, face, int(x), int(y)+ascent, c)
}

// drawTextCentered draws s centered on (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, name fonts.FontName, cx, cy float64, c color.Color) {
	if s == "" || !fonts.Loaded(name) {
		return
	}
	face := name.Get()
	b := text.BoundString(face, s)
	x := cx - float64(b.Dx())/2 - float64(b.Min.X)
	y := cy - float64(b.Dy())/2 - float64(b.Min.Y)
	text.Draw(screen, s, face, int(x), int(y), c)
}

// textWidth returns the advance width of s in pixels.
func textWidth(s string, name fonts.FontName) float64 {
	if s == "" || !fonts.Loaded(name) {
		return 0
	}
	return float64(text.BoundString(name.Get(), s).Dx())
}
