package components

import "github.com/yohamta/donburi"

// InputData is the latest host input, sampled once per frame before any system runs.
// Pointer coordinates are in screen space.
type InputData struct {
	PointerX, PointerY float64
	PointerMoved       bool // pointer position changed since the previous frame
	Clicked            bool // primary button went down this frame
	WheelY             float64
	ScrollUp           bool // held
	ScrollDown         bool // held
	ToggleTheme        bool // pressed this frame
}

var Input = donburi.NewComponentType[InputData]()
