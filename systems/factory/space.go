package factory

import (
	"github.com/automoto/folio-fx/archetypes"
	"github.com/automoto/folio-fx/components"
	"github.com/automoto/folio-fx/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceWidth covers the widest supported window; page content never sits further right.
const spaceWidth = 4096

// CreateSpace creates the hit-testing space for the page along with the pointer probe
// that is moved under the pointer every frame.
func CreateSpace(w donburi.World, pageHeight float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(spaceWidth, int(pageHeight), cellSize, cellSize)
	components.Space.Set(space, spaceData)

	pointer := archetypes.Pointer.Spawn(w)
	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	obj.Data = pointer
	components.Object.SetValue(pointer, components.ObjectData{Object: obj})
	spaceData.Add(obj)

	return space
}

// addToSpace links obj to entry and registers it with the page space if one exists.
func addToSpace(w donburi.World, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
