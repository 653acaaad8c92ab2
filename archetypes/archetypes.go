package archetypes

import (
	"github.com/automoto/folio-fx/components"
	"github.com/automoto/folio-fx/tags"
	"github.com/yohamta/donburi"
)

var (
	// Page holds the singletons every system reads: the page context.
	Page = newArchetype(
		components.Viewport,
		components.Input,
		components.Scroll,
		components.Parallax,
		components.Theme,
	)
	Cursor = newArchetype(
		components.Cursor,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Space = newArchetype(
		components.Space,
	)
	Pointer = newArchetype(
		tags.Pointer,
		components.Object,
	)
	Button = newArchetype(
		tags.Button,
		components.Button,
		components.Object,
		components.Hover,
	)
	Profile = newArchetype(
		tags.Profile,
		components.Profile,
		components.Object,
		components.Hover,
	)
	Section = newArchetype(
		tags.Section,
		components.Section,
	)
	Ripple = newArchetype(
		tags.Ripple,
		components.Ripple,
		components.AutoDestroy,
	)
	Typewriter = newArchetype(
		components.Typewriter,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
