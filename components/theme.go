package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ThemeData is the light/dark toggle. Blend is 0 for light and 1 for dark and
// tweens between them after a toggle.
type ThemeData struct {
	Dark  bool
	Blend float64
	Tween *gween.Tween
}

var Theme = donburi.NewComponentType[ThemeData]()
