package tags

import "github.com/yohamta/donburi"

var (
	Particle = donburi.NewTag().SetName("Particle")
	Button   = donburi.NewTag().SetName("Button")
	Section  = donburi.NewTag().SetName("Section")
	Profile  = donburi.NewTag().SetName("Profile")
	Ripple   = donburi.NewTag().SetName("Ripple")
	Pointer  = donburi.NewTag().SetName("Pointer")
)

// Resolv tags for pointer hit testing
const (
	ResolvButton  = "button"
	ResolvProfile = "profile"
	ResolvPointer = "pointer"
)
