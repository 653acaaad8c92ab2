package components

import "github.com/yohamta/donburi"

// ParticleData is one point of the background field. Radius never changes after
// creation.
type ParticleData struct {
	Index  int // creation order, stable for the lifetime of the field
	X, Y   float64
	Radius float64
	DX, DY float64
}

var Particle = donburi.NewComponentType[ParticleData]()
