package systems

import (
	"github.com/automoto/folio-fx/components"
	"github.com/yohamta/donburi"
)

// pageEntry returns the page context entity. Systems do nothing until it exists.
func pageEntry(w donburi.World) (*donburi.Entry, bool) {
	return components.Viewport.First(w)
}

// ResizeViewport records a resize notification from the host. Repeated notifications
// with an unchanged size are ignored. Particles are left where they are.
func ResizeViewport(w donburi.World, width, height float64) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	vp := components.Viewport.Get(entry)
	if vp.Width == width && vp.Height == height {
		return
	}
	vp.Width = width
	vp.Height = height
	vp.Resizes++
}

// SetInput stores this frame's host input on the page entity.
func SetInput(w donburi.World, in components.InputData) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	components.Input.SetValue(entry, in)
}
