package factory

import (
	"github.com/automoto/folio-fx/archetypes"
	"github.com/automoto/folio-fx/components"
	"github.com/yohamta/donburi"
)

// CreatePage creates the page context entity: viewport, input, scroll, parallax and
// theme state shared by every system.
func CreatePage(w donburi.World, width, height float64, dark bool, parallaxFactor float64) *donburi.Entry {
	page := archetypes.Page.Spawn(w)
	components.Viewport.SetValue(page, components.ViewportData{Width: width, Height: height})
	components.Parallax.SetValue(page, components.ParallaxData{Factor: parallaxFactor})

	blend := 0.0
	if dark {
		blend = 1
	}
	components.Theme.SetValue(page, components.ThemeData{Dark: dark, Blend: blend})

	return page
}
