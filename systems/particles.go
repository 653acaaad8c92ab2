package systems

import (
	"github.com/automoto/folio-fx/components"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateParticles advances every particle by its velocity and flips the velocity
// component of any axis the particle has just left. Bounds are read fresh each frame
// so a resize takes effect on the next check.
func UpdateParticles(w donburi.World) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	vp := components.Viewport.Get(entry)

	components.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.X, p.Y, p.DX, p.DY = gamemath.Advance(p.X, p.Y, p.DX, p.DY, vp.Width, vp.Height)
	})
}

// ParticleCount returns how many particles exist in the world.
func ParticleCount(w donburi.World) int {
	n := 0
	components.Particle.Each(w, func(*donburi.Entry) {
		n++
	})
	return n
}
