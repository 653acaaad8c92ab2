package systems

import (
	"testing"

	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/tags"
	"github.com/yohamta/donburi"
)

func firstButton(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	components.Button.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Button.Get(e).Label == cfg.Page.Buttons[0].Label {
			found = e
		}
	})
	if found == nil {
		t.Fatal("button missing")
	}
	return found
}

func rippleCount(w donburi.World) int {
	n := 0
	tags.Ripple.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func buttonCenter() (float64, float64) {
	b := cfg.Page.Buttons[0]
	return b.X + b.W/2, b.Y + b.H/2
}

func TestHoverScalesButton(t *testing.T) {
	w := newTestPage(t)
	button := firstButton(t, w)
	hover := components.Hover.Get(button)
	cx, cy := buttonCenter()

	for i := 0; i < 60; i++ {
		frameWith(w, pointAt(cx, cy, false))
	}
	if !hover.Hovered {
		t.Fatal("button not hovered with the pointer on it")
	}
	if hover.Scale <= 1.04 || hover.Scale > cfg.Hover.Scale {
		t.Errorf("scale = %v, want close to %v", hover.Scale, cfg.Hover.Scale)
	}

	for i := 0; i < 60; i++ {
		frameWith(w, pointAt(5, 5, false))
	}
	if hover.Hovered {
		t.Error("button still hovered after the pointer left")
	}
	if hover.Scale >= 1.001 {
		t.Errorf("scale = %v, want back near 1", hover.Scale)
	}
}

func TestHoverRequiresRealOverlap(t *testing.T) {
	w := newTestPage(t)
	button := firstButton(t, w)
	b := cfg.Page.Buttons[0]

	// One pixel right of the button: same resolv cell, outside the rectangle.
	frameWith(w, pointAt(b.X+b.W+1, b.Y+b.H/2, true))

	if components.Hover.Get(button).Hovered {
		t.Error("hovered from outside the button")
	}
	if got := components.Button.Get(button).Clicks; got != 0 {
		t.Errorf("clicks = %d, want 0", got)
	}
	if got := rippleCount(w); got != 0 {
		t.Errorf("ripples = %d, want 0", got)
	}
}

func TestClickSpawnsRippleThatExpires(t *testing.T) {
	w := newTestPage(t)
	button := firstButton(t, w)
	cx, cy := buttonCenter()

	frameWith(w, pointAt(cx, cy, true))

	if got := components.Button.Get(button).Clicks; got != 1 {
		t.Fatalf("clicks = %d, want 1", got)
	}
	if got := rippleCount(w); got != 1 {
		t.Fatalf("ripples = %d, want 1", got)
	}

	entry, _ := tags.Ripple.First(w)
	r := components.Ripple.Get(entry)
	if r.X != cx || r.Y != cy {
		t.Errorf("ripple at (%v, %v), want (%v, %v)", r.X, r.Y, cx, cy)
	}
	if r.Owner != button {
		t.Errorf("ripple owner = %v, want the clicked button so it is clipped to it", r.Owner)
	}
	if r.Radius <= 0 || r.Radius >= cfg.Ripple.MaxRadius {
		t.Errorf("radius = %v after one frame, want between 0 and %v", r.Radius, cfg.Ripple.MaxRadius)
	}

	// The click was consumed; later frames must not spawn more.
	frames := int(float64(cfg.Ripple.Duration)*float64(cfg.C.TPS)) + 10
	for i := 0; i < frames; i++ {
		frameWith(w, pointAt(cx, cy, false))
	}
	if got := rippleCount(w); got != 0 {
		t.Errorf("ripples = %d after the animation, want 0", got)
	}
}

func TestClickOnProfileSwapsPicture(t *testing.T) {
	w := newTestPage(t)
	entry, ok := tags.Profile.First(w)
	if !ok {
		t.Fatal("profile missing")
	}
	profile := components.Profile.Get(entry)
	pc := cfg.Profile

	frameWith(w, pointAt(pc.X, pc.Y, true))
	if profile.Current != 1 {
		t.Fatalf("current = %d after one click, want 1", profile.Current)
	}
	frameWith(w, pointAt(pc.X, pc.Y, true))
	if profile.Current != 0 {
		t.Errorf("current = %d after two clicks, want 0", profile.Current)
	}
	if got := rippleCount(w); got != 0 {
		t.Errorf("profile clicks spawned %d ripples", got)
	}
}

func TestClickOutsideRoundProfileIsIgnored(t *testing.T) {
	w := newTestPage(t)
	entry, _ := tags.Profile.First(w)
	pc := cfg.Profile

	// Inside the bounding square, outside the circle.
	frameWith(w, pointAt(pc.X-pc.Radius+2, pc.Y-pc.Radius+2, true))

	if got := components.Profile.Get(entry).Current; got != 0 {
		t.Errorf("current = %d, want 0", got)
	}
}

func TestSwapProfileWithoutVariants(t *testing.T) {
	w := newTestPage(t)
	entry, _ := tags.Profile.First(w)
	profile := components.Profile.Get(entry)
	profile.Variants = 0

	SwapProfile(entry)

	if profile.Current != 0 {
		t.Errorf("current = %d, want 0", profile.Current)
	}
}

func cursorData(t *testing.T, w donburi.World) *components.CursorData {
	t.Helper()
	entry, ok := components.Cursor.First(w)
	if !ok {
		t.Fatal("cursor missing")
	}
	return components.Cursor.Get(entry)
}

func TestCursorGrowsOverButton(t *testing.T) {
	w := newTestPage(t)
	cursor := cursorData(t, w)
	cx, cy := buttonCenter()

	frameWith(w, pointAt(cx, cy, false))
	if !cursor.Hovering {
		t.Fatal("cursor not flagged over the button")
	}
	if cursor.Scale <= 1 || cursor.Scale >= cfg.Cursor.HoverScale {
		t.Errorf("scale = %v after one frame, want between 1 and %v", cursor.Scale, cfg.Cursor.HoverScale)
	}
	for i := 0; i < 60; i++ {
		frameWith(w, pointAt(cx, cy, false))
	}
	if cursor.Scale < cfg.Cursor.HoverScale-0.001 || cursor.Scale > cfg.Cursor.HoverScale {
		t.Errorf("scale = %v, want %v", cursor.Scale, cfg.Cursor.HoverScale)
	}

	for i := 0; i < 60; i++ {
		frameWith(w, pointAt(640, 650, false))
	}
	if cursor.Hovering {
		t.Error("cursor still flagged after leaving the button")
	}
	if cursor.Scale > 1.001 || cursor.Scale < 1 {
		t.Errorf("scale = %v, want back to 1", cursor.Scale)
	}
}

func TestCursorStaysSmallOverProfile(t *testing.T) {
	w := newTestPage(t)
	cursor := cursorData(t, w)

	for i := 0; i < 30; i++ {
		frameWith(w, pointAt(cfg.Profile.X, cfg.Profile.Y, false))
	}
	if cursor.Hovering || cursor.Scale != 1 {
		t.Errorf("hovering = %v, scale = %v over the profile, want false and 1", cursor.Hovering, cursor.Scale)
	}
}
