package systems

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateReveal starts the reveal animation of every section whose top has scrolled
// above the reveal line, and advances animations already running. A revealed section
// never hides again.
func UpdateReveal(w donburi.World) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	vp := components.Viewport.Get(entry)
	scroll := components.Scroll.Get(entry)
	line := vp.Height * cfg.Reveal.Threshold
	dt := cfg.C.FrameDelta()

	components.Section.Each(w, func(e *donburi.Entry) {
		s := components.Section.Get(e)

		if !s.Revealed && s.Y-scroll.Offset < line {
			s.Revealed = true
			s.Tween = gween.New(0, 1, cfg.Reveal.Duration, ease.OutCubic)
		}

		if s.Tween == nil {
			return
		}
		v, done := s.Tween.Update(dt)
		s.Progress = float64(v)
		if done {
			s.Progress = 1
			s.Tween = nil
		}
	})
}
