package systems

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateScroll moves the scroll target from wheel and arrow key input and eases the page
// toward it.
func UpdateScroll(w donburi.World) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	vp := components.Viewport.Get(entry)
	scroll := components.Scroll.Get(entry)

	// Wheel up is positive in ebiten; scrolling up the page lowers the offset.
	scroll.Target -= input.WheelY * cfg.Scroll.WheelStep
	if input.ScrollUp {
		scroll.Target -= cfg.Scroll.KeyStep
	}
	if input.ScrollDown {
		scroll.Target += cfg.Scroll.KeyStep
	}
	scroll.Target = gamemath.Clamp(scroll.Target, 0, MaxScroll(cfg.Page.Height, vp.Height))

	scroll.Offset = gamemath.Lerp(scroll.Offset, scroll.Target, cfg.Scroll.Smoothing)
	if gamemath.Near(scroll.Offset, scroll.Target, 0.01) {
		scroll.Offset = scroll.Target
	}
}

// MaxScroll is the largest scroll offset that still fills the viewport with page.
func MaxScroll(pageHeight, viewportHeight float64) float64 {
	if pageHeight <= viewportHeight {
		return 0
	}
	return pageHeight - viewportHeight
}
