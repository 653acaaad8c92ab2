package factory

import (
	"github.com/automoto/folio-fx/archetypes"
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateButton(w donburi.World, b cfg.ButtonLayout, hc cfg.HoverConfig) *donburi.Entry {
	button := archetypes.Button.Spawn(w)
	components.Button.SetValue(button, components.ButtonData{Label: b.Label})
	components.Hover.SetValue(button, newHover(hc))

	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvButton)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	addToSpace(w, button, obj)

	return button
}

// CreateProfile creates the profile picture. Its hit box is the square around the
// picture; systems narrow it to the circle.
func CreateProfile(w donburi.World, pc cfg.ProfileConfig, hc cfg.HoverConfig) *donburi.Entry {
	profile := archetypes.Profile.Spawn(w)
	components.Profile.SetValue(profile, components.ProfileData{Variants: len(pc.Initials)})
	components.Hover.SetValue(profile, newHover(hc))

	size := pc.Radius * 2
	obj := resolv.NewObject(pc.X-pc.Radius, pc.Y-pc.Radius, size, size, tags.ResolvProfile)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	addToSpace(w, profile, obj)

	return profile
}

func CreateSection(w donburi.World, index int, s cfg.SectionLayout) *donburi.Entry {
	section := archetypes.Section.Spawn(w)
	components.Section.SetValue(section, components.SectionData{
		Index: index,
		Title: s.Title,
		Body:  s.Body,
		Y:     s.Y,
		H:     s.H,
	})
	return section
}

func CreateTypewriter(w donburi.World, tc cfg.TypewriterConfig) *donburi.Entry {
	tw := archetypes.Typewriter.Spawn(w)
	components.Typewriter.SetValue(tw, components.TypewriterData{
		Phrases: tc.Phrases,
		Loop:    tc.Loop,
		Timer:   tc.TypeFrames,
	})
	return tw
}

func newHover(hc cfg.HoverConfig) components.HoverData {
	return components.HoverData{
		Scale:     1,
		Target:    1,
		LerpSpeed: hc.LerpSpeed,
	}
}
