package systems

import (
	"testing"

	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
)

func fadeFrames() int {
	return int(float64(cfg.Theme.FadeSeconds)*float64(cfg.C.TPS)) + 5
}

func TestToggleThemeFades(t *testing.T) {
	w := newBarePage(t, 800, 600)
	theme := components.Theme.Get(page(t, w))
	if !theme.Dark || theme.Blend != 1 {
		t.Fatalf("start = %+v, want dark", *theme)
	}

	ToggleTheme(w)
	if theme.Dark {
		t.Fatal("still dark after toggle")
	}

	UpdateTheme(w)
	if theme.Blend <= 0 || theme.Blend >= 1 {
		t.Errorf("blend = %v after one frame, want mid fade", theme.Blend)
	}

	for i := 0; i < fadeFrames(); i++ {
		UpdateTheme(w)
	}
	if theme.Blend != 0 || theme.Tween != nil {
		t.Errorf("blend = %v, tween = %v, want settled on light", theme.Blend, theme.Tween)
	}
}

func TestThemeKeyToggles(t *testing.T) {
	w := newBarePage(t, 800, 600)

	frameWith(w, components.InputData{ToggleTheme: true})
	if IsDark(w) {
		t.Fatal("theme key did not toggle")
	}

	// The key press is consumed; holding nothing keeps the theme.
	for i := 0; i < fadeFrames(); i++ {
		frameWith(w, components.InputData{})
	}
	if IsDark(w) {
		t.Error("theme toggled again without a key press")
	}
}

func TestToggleMidFadeReverses(t *testing.T) {
	w := newBarePage(t, 800, 600)
	theme := components.Theme.Get(page(t, w))

	ToggleTheme(w)
	for i := 0; i < 5; i++ {
		UpdateTheme(w)
	}
	mid := theme.Blend

	ToggleTheme(w)
	UpdateTheme(w)
	if theme.Blend < mid {
		t.Errorf("blend = %v, want heading back up from %v", theme.Blend, mid)
	}
	for i := 0; i < fadeFrames(); i++ {
		UpdateTheme(w)
	}
	if !theme.Dark || theme.Blend != 1 {
		t.Errorf("theme = %+v, want dark", *theme)
	}
}
