package render

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawParticles draws every particle where it is, including one that has just left
// the viewport and will turn around next frame.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	pal := CurrentPalette(e.World)
	c := gamemath.WithAlpha(pal.Particle, float64(cfg.Particles.Alpha)/255)

	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), c, true)
	})
}
