package factory

import (
	"github.com/automoto/folio-fx/archetypes"
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/yohamta/donburi"
)

// Rand is the source of randomness for particle placement. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// CreateParticleField spawns count particles spread uniformly over width x height.
// The same rng state always produces the same field.
func CreateParticleField(w donburi.World, rng Rand, count int, width, height float64, pc cfg.ParticleConfig) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		p := components.ParticleData{
			Index:  i,
			X:      rng.Float64() * width,
			Y:      rng.Float64() * height,
			Radius: gamemath.RandRange(rng.Float64(), pc.RadiusMin, pc.RadiusMax),
			DX:     gamemath.RandRange(rng.Float64(), pc.SpeedMin, pc.SpeedMax),
			DY:     gamemath.RandRange(rng.Float64(), pc.SpeedMin, pc.SpeedMax),
		}
		entry := archetypes.Particle.Spawn(w)
		components.Particle.SetValue(entry, p)
		entries = append(entries, entry)
	}
	return entries
}
