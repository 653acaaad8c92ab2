package render

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Hero text positions in page coordinates
const (
	headlineX = 120
	headlineY = 300
	greetingY = 240
)

// DrawHeadline draws the greeting and the typed headline with its caret.
func DrawHeadline(e *ecs.ECS, screen *ebiten.Image) {
	pal := CurrentPalette(e.World)
	scroll := scrollOffset(e.World)

	drawText(screen, cfg.Page.Greeting, fonts.Title, headlineX, greetingY-scroll, pal.Muted)

	components.Typewriter.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Typewriter.Get(entry)
		line := tw.Text()
		drawText(screen, line, fonts.Headline, headlineX, headlineY-scroll, pal.Text)

		if !tw.CaretVisible(cfg.Typewriter.CaretFrames) {
			return
		}
		x := headlineX + textWidth(line, fonts.Headline) + 6
		vector.FillRect(screen, float32(x), float32(headlineY-scroll+6), 4, 48, pal.Accent, false)
	})
}
