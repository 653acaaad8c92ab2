package render

import (
	"image"
	"math"

	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/fonts"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawButtons draws the call-to-action buttons scaled around their centers.
func DrawButtons(e *ecs.ECS, screen *ebiten.Image) {
	pal := CurrentPalette(e.World)
	scroll := scrollOffset(e.World)

	components.Button.Each(e.World, func(entry *donburi.Entry) {
		button := components.Button.Get(entry)
		hover := components.Hover.Get(entry)
		x, y, w, h := widgetRect(entry, scroll)

		fill := pal.Accent
		label := pal.Background
		if hover.Hovered {
			fill = gamemath.LerpRGBA(pal.Accent, pal.Text, 0.15)
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fill, true)
		drawTextCentered(screen, button.Label, fonts.Button, x+w/2, y+h/2, label)
	})
}

// DrawRipples draws click ripples as fading discs, clipped to the widget they
// were spawned on.
func DrawRipples(e *ecs.ECS, screen *ebiten.Image) {
	pal := CurrentPalette(e.World)
	scroll := scrollOffset(e.World)

	components.Ripple.Each(e.World, func(entry *donburi.Entry) {
		r := components.Ripple.Get(entry)
		if r.Radius <= 0 || r.Alpha <= 0 {
			return
		}

		dst := screen
		if r.Owner != nil && r.Owner.Valid() && r.Owner.HasComponent(components.Object) {
			x, y, w, h := widgetRect(r.Owner, scroll)
			clip := image.Rect(int(x), int(y), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
			dst = screen.SubImage(clip).(*ebiten.Image)
		}

		c := gamemath.WithAlpha(pal.Surface, r.Alpha)
		vector.DrawFilledCircle(dst, float32(r.X), float32(r.Y-scroll), float32(r.Radius), c, true)
	})
}

// widgetRect returns the on-screen rectangle of a widget, scaled by its hover state.
func widgetRect(entry *donburi.Entry, scroll float64) (x, y, w, h float64) {
	obj := components.Object.Get(entry)
	scale := 1.0
	if entry.HasComponent(components.Hover) {
		scale = components.Hover.Get(entry).Scale
	}
	return gamemath.ScaleRect(obj.X, obj.Y-scroll, obj.W, obj.H, scale)
}

// DrawProfile draws the current profile picture variant: a tinted disc with initials.
func DrawProfile(e *ecs.ECS, screen *ebiten.Image) {
	pal := CurrentPalette(e.World)
	scroll := scrollOffset(e.World)

	components.Profile.Each(e.World, func(entry *donburi.Entry) {
		profile := components.Profile.Get(entry)
		obj := components.Object.Get(entry)
		hover := components.Hover.Get(entry)

		r := obj.W / 2 * hover.Scale
		cx := obj.X + obj.W/2
		cy := obj.Y + obj.H/2 - scroll

		tint := pal.Accent
		if profile.Current < len(cfg.Profile.Tints) {
			tint = cfg.Profile.Tints[profile.Current]
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r+4), pal.Surface, true)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), tint, true)

		if profile.Current < len(cfg.Profile.Initials) {
			drawTextCentered(screen, cfg.Profile.Initials[profile.Current], fonts.Initials, cx, cy, pal.Surface)
		}
	})
}
