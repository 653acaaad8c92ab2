package systems

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateTheme handles the theme key and advances the palette crossfade.
func UpdateTheme(w donburi.World) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	if components.Input.Get(entry).ToggleTheme {
		ToggleTheme(w)
	}

	theme := components.Theme.Get(entry)
	if theme.Tween == nil {
		return
	}
	v, done := theme.Tween.Update(cfg.C.FrameDelta())
	theme.Blend = float64(v)
	if done {
		theme.Tween = nil
	}
}

// ToggleTheme flips between light and dark, fading from wherever the current blend is.
func ToggleTheme(w donburi.World) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	theme := components.Theme.Get(entry)
	theme.Dark = !theme.Dark

	target := float32(0)
	if theme.Dark {
		target = 1
	}
	theme.Tween = gween.New(float32(theme.Blend), target, cfg.Theme.FadeSeconds, ease.InOutQuad)
}

// IsDark reports the theme the page is heading to.
func IsDark(w donburi.World) bool {
	entry, ok := pageEntry(w)
	if !ok {
		return false
	}
	return components.Theme.Get(entry).Dark
}
