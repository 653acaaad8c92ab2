package components

import "github.com/yohamta/donburi"

// ViewportData is the size of the drawing surface. It only changes on a resize
// notification from the host.
type ViewportData struct {
	Width, Height float64
	Resizes       int
}

var Viewport = donburi.NewComponentType[ViewportData]()
