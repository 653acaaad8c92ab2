package render

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/fonts"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawSections draws each revealed section, faded and slid by its reveal progress.
func DrawSections(e *ecs.ECS, screen *ebiten.Image) {
	pal := CurrentPalette(e.World)
	scroll := scrollOffset(e.World)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	margin := cfg.Page.Margin

	components.Section.Each(e.World, func(entry *donburi.Entry) {
		s := components.Section.Get(entry)
		if s.Progress <= 0 {
			return
		}
		y := s.Y - scroll + (1-s.Progress)*cfg.Reveal.SlideOffset
		if y > height || y+s.H < 0 {
			return
		}

		cardW := width - 2*margin
		if cardW <= 0 {
			return
		}
		vector.FillRect(screen, float32(margin), float32(y), float32(cardW), float32(s.H),
			gamemath.WithAlpha(pal.Surface, s.Progress), true)
		vector.FillRect(screen, float32(margin), float32(y), 6, float32(s.H),
			gamemath.WithAlpha(pal.Accent, s.Progress), false)

		drawText(screen, s.Title, fonts.Title, margin+32, y+28, gamemath.WithAlpha(pal.Text, s.Progress))
		drawText(screen, s.Body, fonts.Body, margin+32, y+84, gamemath.WithAlpha(pal.Muted, s.Progress))
	})
}
