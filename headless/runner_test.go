package headless

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/frame"
	"github.com/yohamta/donburi"
)

func options(seed uint64, frames int) Options {
	return Options{
		Width:  1280,
		Height: 720,
		Rand:   rand.New(rand.NewPCG(seed, seed>>1|1)),
		Source: frame.NewCount(frames),
	}
}

func particles(w donburi.World) []components.ParticleData {
	var out []components.ParticleData
	components.Particle.Each(w, func(e *donburi.Entry) {
		out = append(out, *components.Particle.Get(e))
	})
	return out
}

func TestRunCountsFrames(t *testing.T) {
	_, sum, err := Run(context.Background(), options(3, 120))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Frames != 120 {
		t.Errorf("frames = %d, want 120", sum.Frames)
	}
	if sum.Particles != cfg.Particles.Count {
		t.Errorf("particles = %d, want %d", sum.Particles, cfg.Particles.Count)
	}
	if sum.CursorX != 0 || sum.CursorY != 0 {
		t.Errorf("cursor = (%v, %v), want origin without input", sum.CursorX, sum.CursorY)
	}
	if sum.Dark != cfg.Theme.StartDark {
		t.Errorf("dark = %v, want %v", sum.Dark, cfg.Theme.StartDark)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	w1, s1, err := Run(context.Background(), options(42, 30))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	w2, s2, err := Run(context.Background(), options(42, 30))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s1 != s2 {
		t.Errorf("summaries differ: %+v vs %+v", s1, s2)
	}

	a, b := particles(w1), particles(w2)
	if len(a) != len(b) || len(a) == 0 {
		t.Fatalf("particle counts %d and %d", len(a), len(b))
	}
	byIndex := make(map[int]components.ParticleData, len(b))
	for _, p := range b {
		byIndex[p.Index] = p
	}
	for _, p := range a {
		if byIndex[p.Index] != p {
			t.Errorf("particle %d differs: %+v vs %+v", p.Index, p, byIndex[p.Index])
		}
	}
}

func TestRunFeedsInput(t *testing.T) {
	opts := options(5, 120)
	opts.Input = func(n int) components.InputData {
		return components.InputData{PointerX: 400, PointerY: 300, PointerMoved: n == 0}
	}

	_, sum, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if math.Abs(sum.CursorX-400) > 1e-3 || math.Abs(sum.CursorY-300) > 1e-3 {
		t.Errorf("cursor = (%v, %v), want (400, 300)", sum.CursorX, sum.CursorY)
	}
}

func TestRunThemeToggle(t *testing.T) {
	opts := options(5, 60)
	opts.Input = func(n int) components.InputData {
		return components.InputData{ToggleTheme: n == 10}
	}

	_, sum, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Dark == cfg.Theme.StartDark {
		t.Error("theme did not toggle")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, sum, err := Run(ctx, options(1, 10))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if sum.Frames != 0 {
		t.Errorf("frames = %d, want 0", sum.Frames)
	}
	if sum.Particles != cfg.Particles.Count {
		t.Errorf("particles = %d, want the field built before the first frame", sum.Particles)
	}
}
