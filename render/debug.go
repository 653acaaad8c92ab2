package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/systems"
	"github.com/automoto/folio-fx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit box in the page space and prints frame stats.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	scroll := scrollOffset(e.World)
	viewH := float64(screen.Bounds().Dy())

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			y := obj.Y - scroll
			// Cull objects outside viewport
			if y+obj.H < 0 || y > viewH {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvProfile) {
				c = color.RGBA{255, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvPointer) {
				c = color.RGBA{255, 0, 0, 255}
			}
			strokeRect(screen, obj.X, y, obj.W, obj.H, c)
		}
	}

	msg := fmt.Sprintf("TPS %0.1f  FPS %0.1f\nparticles %d  scroll %0.1f",
		ebiten.ActualTPS(), ebiten.ActualFPS(), systems.ParticleCount(e.World), scroll)
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
