package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RippleData is an expanding, fading ring spawned by a click. It is drawn clipped to
// the widget it was spawned on; a nil Owner draws it unclipped.
type RippleData struct {
	X, Y        float64 // page coordinates
	Radius      float64
	Alpha       float64
	Owner       *donburi.Entry
	RadiusTween *gween.Tween
	AlphaTween  *gween.Tween
}

var Ripple = donburi.NewComponentType[RippleData]()

// HoverData lerps a widget's scale toward its target (hovered or resting)
type HoverData struct {
	Scale     float64
	Target    float64
	LerpSpeed float64
	Hovered   bool
}

var Hover = donburi.NewComponentType[HoverData]()

// AutoDestroyData marks entities removed once their effect has finished
type AutoDestroyData struct {
	Finished bool
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
