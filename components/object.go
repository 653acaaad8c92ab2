package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData places an entity in the hit-testing space, in page coordinates.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the page-wide resolv space used to find what the pointer is over.
var Space = donburi.NewComponentType[resolv.Space]()
