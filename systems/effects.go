package systems

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/yohamta/donburi"
)

// UpdateEffects advances click ripples and removes the ones that have finished
func UpdateEffects(w donburi.World) {
	updateRipples(w)
	updateAutoDestroy(w)
}

func updateRipples(w donburi.World) {
	dt := cfg.C.FrameDelta()

	components.Ripple.Each(w, func(e *donburi.Entry) {
		r := components.Ripple.Get(e)

		radius, radiusDone := r.RadiusTween.Update(dt)
		alpha, alphaDone := r.AlphaTween.Update(dt)
		r.Radius = float64(radius)
		r.Alpha = float64(alpha)

		if radiusDone && alphaDone && e.HasComponent(components.AutoDestroy) {
			components.AutoDestroy.Get(e).Finished = true
		}
	})
}

// updateAutoDestroy removes entities whose effect has finished
func updateAutoDestroy(w donburi.World) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(w, func(e *donburi.Entry) {
		if components.AutoDestroy.Get(e).Finished {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
