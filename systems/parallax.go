package systems

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateParallax derives the hero offset from the scroll position and eases the hero
// shift toward the pointer. A pointer move over the hero sets the shift target from
// where the pointer sits in the viewport; elsewhere the last target is kept.
func UpdateParallax(w donburi.World) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	vp := components.Viewport.Get(entry)
	scroll := components.Scroll.Get(entry)
	parallax := components.Parallax.Get(entry)

	parallax.OffsetY = scroll.Offset * parallax.Factor

	if input.PointerMoved && overHero(input.PointerX, input.PointerY+scroll.Offset, vp) {
		parallax.TargetX = (0.5 - input.PointerX/vp.Width) * cfg.Parallax.MaxShift
		parallax.TargetY = (0.5 - input.PointerY/vp.Height) * cfg.Parallax.MaxShift
	}
	parallax.ShiftX, parallax.ShiftY = gamemath.LerpPoint(
		parallax.ShiftX, parallax.ShiftY, parallax.TargetX, parallax.TargetY, cfg.Parallax.Smoothing)
}

// overHero reports whether the page point (x, y) lies on the hero.
func overHero(x, y float64, vp *components.ViewportData) bool {
	if vp.Width <= 0 || vp.Height <= 0 {
		return false
	}
	return x >= 0 && x < vp.Width && y >= 0 && y < cfg.Page.HeroHeight
}
