package components

import "github.com/yohamta/donburi"

// CursorData is the eased marker that trails the pointer.
type CursorData struct {
	TargetX, TargetY float64 // last pointer position, overwritten on every move
	X, Y             float64 // marker position, only written by the cursor system
	Smoothing        float64
	Frames           int     // frames the marker has been updated for
	Hovering         bool    // pointer is over a button this frame
	Scale            float64 // eased toward the hover scale or 1
}

var Cursor = donburi.NewComponentType[CursorData]()
