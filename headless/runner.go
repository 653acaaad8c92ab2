package headless

import (
	"context"
	"log"

	"github.com/automoto/folio-fx/components"
	"github.com/automoto/folio-fx/frame"
	"github.com/automoto/folio-fx/systems"
	"github.com/automoto/folio-fx/systems/factory"
	"github.com/yohamta/donburi"
)

// InputFunc supplies the host input for a frame. Frames are numbered from zero.
type InputFunc func(frame int) components.InputData

// Options configures a headless run
type Options struct {
	Width, Height float64
	Rand          factory.Rand
	Source        frame.Source
	Input         InputFunc // nil means no input at all
}

// Summary describes the page after a headless run
type Summary struct {
	Frames    int
	Particles int
	CursorX   float64
	CursorY   float64
	Scroll    float64
	Dark      bool
}

// Run builds the page in a fresh world and steps it once per frame from opts.Source
// until the source closes or ctx is cancelled. The returned world is the one stepped.
func Run(ctx context.Context, opts Options) (donburi.World, Summary, error) {
	w := donburi.NewWorld()
	factory.CreatePortfolio(w, opts.Rand, opts.Width, opts.Height)

	n := 0
	loop := frame.NewLoop(opts.Source, func() {
		if opts.Input != nil {
			systems.SetInput(w, opts.Input(n))
		}
		systems.Step(w)
		n++
	})
	err := loop.Run(ctx)

	sum := Summarize(w)
	sum.Frames = loop.Frames()
	return w, sum, err
}

// Summarize reads the current page state from w.
func Summarize(w donburi.World) Summary {
	sum := Summary{
		Particles: systems.ParticleCount(w),
		Dark:      systems.IsDark(w),
	}
	if entry, ok := components.Cursor.First(w); ok {
		c := components.Cursor.Get(entry)
		sum.CursorX, sum.CursorY = c.X, c.Y
	}
	if entry, ok := components.Scroll.First(w); ok {
		sum.Scroll = components.Scroll.Get(entry).Offset
	}
	return sum
}

// LogSummary writes sum to the standard logger.
func LogSummary(sum Summary) {
	log.Printf("headless: %d frames, %d particles, cursor (%.1f, %.1f), scroll %.1f, dark %v",
		sum.Frames, sum.Particles, sum.CursorX, sum.CursorY, sum.Scroll, sum.Dark)
}
