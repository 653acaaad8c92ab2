package render

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/yohamta/donburi"
)

// CurrentPalette blends the light and dark palettes by the theme's fade position.
func CurrentPalette(w donburi.World) cfg.Palette {
	blend := 0.0
	if entry, ok := components.Theme.First(w); ok {
		blend = components.Theme.Get(entry).Blend
	}
	return BlendPalette(cfg.Theme.Light, cfg.Theme.Dark, blend)
}

// BlendPalette mixes every color of a and b.
func BlendPalette(a, b cfg.Palette, t float64) cfg.Palette {
	return cfg.Palette{
		Background:  gamemath.LerpRGBA(a.Background, b.Background, t),
		HeroTop:     gamemath.LerpRGBA(a.HeroTop, b.HeroTop, t),
		HeroBottom:  gamemath.LerpRGBA(a.HeroBottom, b.HeroBottom, t),
		Text:        gamemath.LerpRGBA(a.Text, b.Text, t),
		Muted:       gamemath.LerpRGBA(a.Muted, b.Muted, t),
		Accent:      gamemath.LerpRGBA(a.Accent, b.Accent, t),
		Surface:     gamemath.LerpRGBA(a.Surface, b.Surface, t),
		Particle:    gamemath.LerpRGBA(a.Particle, b.Particle, t),
		Cursor:      gamemath.LerpRGBA(a.Cursor, b.Cursor, t),
		CursorHover: gamemath.LerpRGBA(a.CursorHover, b.CursorHover, t),
	}
}

// scrollOffset returns how far the page is scrolled, zero before the page exists.
func scrollOffset(w donburi.World) float64 {
	if entry, ok := components.Scroll.First(w); ok {
		return components.Scroll.Get(entry).Offset
	}
	return 0
}
