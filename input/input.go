package input

import (
	"github.com/automoto/folio-fx/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a keyboard or gamepad driven page action
type Action int

const (
	ActionScrollUp Action = iota
	ActionScrollDown
	ActionToggleTheme
	ActionToggleDebug
	ActionQuit
	ActionCount
)

// Binding lists the keys and standard gamepad buttons for an action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var Bindings = map[Action]Binding{
	ActionScrollUp: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyPageUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionScrollDown: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyPageDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionToggleTheme: {
		Keys:                   []ebiten.Key{ebiten.KeyT},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
	ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
}

// AnalogDeadzone is the stick deflection ignored when scrolling with a gamepad
const AnalogDeadzone = 0.3

// Poller samples ebiten input once per frame.
type Poller struct {
	lastX, lastY int
	current      [ActionCount]bool
	previous     [ActionCount]bool
	gamepadIDs   []ebiten.GamepadID
	touchIDs     []ebiten.TouchID
}

// Poll returns this frame's input. A pointer position different from the previous
// frame's counts as a pointer move; the first touch of a frame acts as the pointer.
func (p *Poller) Poll() components.InputData {
	p.previous = p.current
	p.current = [ActionCount]bool{}
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				p.current[action] = true
			}
		}
		for _, gpID := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					p.current[action] = true
				}
			}
		}
	}

	up, down := analogScroll(p.gamepadIDs)
	if up {
		p.current[ActionScrollUp] = true
	}
	if down {
		p.current[ActionScrollDown] = true
	}

	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		x, y = ebiten.TouchPosition(p.touchIDs[0])
		clicked = true
	}

	_, wheelY := ebiten.Wheel()

	in := components.InputData{
		PointerX:     float64(x),
		PointerY:     float64(y),
		PointerMoved: x != p.lastX || y != p.lastY,
		Clicked:      clicked,
		WheelY:       wheelY,
		ScrollUp:     p.current[ActionScrollUp],
		ScrollDown:   p.current[ActionScrollDown],
		ToggleTheme:  p.JustPressed(ActionToggleTheme),
	}
	p.lastX, p.lastY = x, y
	return in
}

// JustPressed reports whether the action went down this frame.
func (p *Poller) JustPressed(a Action) bool {
	return p.current[a] && !p.previous[a]
}

// analogScroll reads the left stick of every gamepad for vertical scrolling
func analogScroll(gamepads []ebiten.GamepadID) (up, down bool) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if vertical < -AnalogDeadzone {
			up = true
		}
		if vertical > AnalogDeadzone {
			down = true
		}
	}
	return
}
