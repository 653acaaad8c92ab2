package systems

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/gamemath"
	factory2 "github.com/automoto/folio-fx/systems/factory"
	"github.com/automoto/folio-fx/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdatePointer moves the pointer probe under the pointer, marks the widgets it is
// over as hovered and dispatches clicks: buttons ripple, the profile picture swaps.
// The cursor marker is flagged while the pointer is over a button.
func UpdatePointer(w donburi.World) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	scroll := components.Scroll.Get(entry)

	components.Hover.Each(w, func(e *donburi.Entry) {
		components.Hover.Get(e).Hovered = false
	})
	setCursorHovering(w, false)

	probeEntry, ok := tags.Pointer.First(w)
	if !ok {
		return
	}
	probe := components.Object.Get(probeEntry)

	// Page coordinates
	px := input.PointerX
	py := input.PointerY + scroll.Offset
	probe.X = px
	probe.Y = py
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvButton, tags.ResolvProfile)
	if check == nil {
		return
	}

	seen := make(map[*resolv.Object]bool, len(check.Objects))
	for _, obj := range check.Objects {
		if seen[obj] {
			continue
		}
		seen[obj] = true

		target, ok := obj.Data.(*donburi.Entry)
		if !ok || !target.Valid() {
			continue
		}
		// Check is a broadphase over shared cells; confirm the actual overlap.
		if !containsPoint(obj, target, px, py) {
			continue
		}

		if target.HasComponent(components.Hover) {
			components.Hover.Get(target).Hovered = true
		}
		if target.HasComponent(components.Button) {
			setCursorHovering(w, true)
		}
		if input.Clicked {
			click(w, target, px, py)
		}
	}
}

// UpdateHover eases each widget's scale toward the hovered or resting size.
func UpdateHover(w donburi.World) {
	components.Hover.Each(w, func(e *donburi.Entry) {
		h := components.Hover.Get(e)
		h.Target = 1
		if h.Hovered {
			h.Target = cfg.Hover.Scale
		}
		h.Scale = gamemath.Lerp(h.Scale, h.Target, h.LerpSpeed)
	})
}

func setCursorHovering(w donburi.World, hovering bool) {
	components.Cursor.Each(w, func(e *donburi.Entry) {
		components.Cursor.Get(e).Hovering = hovering
	})
}

func click(w donburi.World, target *donburi.Entry, px, py float64) {
	switch {
	case target.HasComponent(components.Button):
		components.Button.Get(target).Clicks++
		factory2.SpawnRipple(w, target, px, py, cfg.Ripple)
	case target.HasComponent(components.Profile):
		SwapProfile(target)
	}
}

// SwapProfile shows the next profile picture variant.
func SwapProfile(entry *donburi.Entry) {
	profile := components.Profile.Get(entry)
	if profile.Variants <= 0 {
		return
	}
	profile.Current = (profile.Current + 1) % profile.Variants
}

func containsPoint(obj *resolv.Object, target *donburi.Entry, px, py float64) bool {
	if px < obj.X || px >= obj.X+obj.W || py < obj.Y || py >= obj.Y+obj.H {
		return false
	}
	if target.HasComponent(components.Profile) {
		// The picture is round; the hit box is its bounding square.
		r := obj.W / 2
		dx := px - (obj.X + r)
		dy := py - (obj.Y + r)
		return dx*dx+dy*dy <= r*r
	}
	return true
}
