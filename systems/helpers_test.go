package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/folio-fx/components"
	"github.com/automoto/folio-fx/systems/factory"
	"github.com/yohamta/donburi"
)

const (
	testWidth  = 1280.0
	testHeight = 720.0
)

// newTestPage builds the full page with a fixed seed.
func newTestPage(t *testing.T) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreatePortfolio(w, rand.New(rand.NewPCG(1, 2)), testWidth, testHeight)
	return w
}

// newBarePage builds only the page context, for systems tested in isolation.
func newBarePage(t *testing.T, width, height float64) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreatePage(w, width, height, true, 0.5)
	return w
}

func page(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	entry, ok := pageEntry(w)
	if !ok {
		t.Fatal("page entity missing")
	}
	return entry
}

// frameWith stores in as this frame's input and steps the whole page once.
func frameWith(w donburi.World, in components.InputData) {
	SetInput(w, in)
	Step(w)
}

// pointAt returns input with the pointer at (x, y) on screen.
func pointAt(x, y float64, clicked bool) components.InputData {
	return components.InputData{PointerX: x, PointerY: y, PointerMoved: true, Clicked: clicked}
}
