package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScrollData tracks how far the page is scrolled. Offset eases toward Target.
type ScrollData struct {
	Offset float64
	Target float64
}

var Scroll = donburi.NewComponentType[ScrollData]()

// SectionData is a content block that fades and slides in once scrolled into view
type SectionData struct {
	Index    int
	Title    string
	Body     string
	Y, H     float64 // page coordinates
	Revealed bool
	Progress float64 // 0 hidden, 1 fully revealed
	Tween    *gween.Tween
}

var Section = donburi.NewComponentType[SectionData]()

// ButtonData is a call-to-action button
type ButtonData struct {
	Label  string
	Clicks int
}

var Button = donburi.NewComponentType[ButtonData]()

// ProfileData is the profile picture; a click swaps to the next variant
type ProfileData struct {
	Current  int
	Variants int
}

var Profile = donburi.NewComponentType[ProfileData]()

// ParallaxData is the hero background offset. OffsetY follows the scroll position;
// ShiftX and ShiftY ease toward a shift set by the pointer while it is over the hero.
type ParallaxData struct {
	OffsetY          float64
	Factor           float64
	ShiftX, ShiftY   float64
	TargetX, TargetY float64
}

var Parallax = donburi.NewComponentType[ParallaxData]()
