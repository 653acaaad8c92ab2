package systems

import (
	"github.com/automoto/folio-fx/components"
	"github.com/yohamta/donburi"
)

// System is one per-frame update over the page world.
type System func(w donburi.World)

// PageSystems is the per-frame update order. Input must already be stored with
// SetInput; drawing happens after all of these have run.
var PageSystems = []System{
	UpdateScroll,
	UpdateParallax,
	UpdatePointer,
	UpdateHover,
	UpdateCursor,
	UpdateParticles,
	UpdateEffects,
	UpdateReveal,
	UpdateTypewriter,
	UpdateTheme,
	ClearInputEdges,
}

// Step runs one frame of every page system.
func Step(w donburi.World) {
	for _, s := range PageSystems {
		s(w)
	}
}

// ClearInputEdges drops the one-frame parts of the input (clicks, wheel, key presses,
// the moved flag) so they are not seen again next frame. The pointer position stays.
func ClearInputEdges(w donburi.World) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	in.PointerMoved = false
	in.Clicked = false
	in.WheelY = 0
	in.ToggleTheme = false
}
