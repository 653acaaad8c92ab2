package factory

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/tags"
	"github.com/yohamta/donburi"
)

// fixedRand returns the same value for every draw.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestParticleFieldRanges(t *testing.T) {
	w := donburi.NewWorld()
	entries := CreateParticleField(w, rand.New(rand.NewPCG(7, 9)), 500, 800, 600, cfg.Particles)

	if len(entries) != 500 {
		t.Fatalf("got %d particles, want 500", len(entries))
	}
	for i, e := range entries {
		p := components.Particle.Get(e)
		if p.Index != i {
			t.Errorf("particle %d has index %d", i, p.Index)
		}
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("particle %d at (%v, %v), outside the surface", i, p.X, p.Y)
		}
		if p.Radius < 1 || p.Radius >= 3 {
			t.Errorf("particle %d radius %v, want [1, 3)", i, p.Radius)
		}
		if p.DX < -0.5 || p.DX >= 0.5 || p.DY < -0.5 || p.DY >= 0.5 {
			t.Errorf("particle %d velocity (%v, %v), want [-0.5, 0.5)", i, p.DX, p.DY)
		}
	}
}

func TestParticleFieldDrawOrder(t *testing.T) {
	tests := []struct {
		name string
		u    float64
		want components.ParticleData
	}{
		{"low", 0, components.ParticleData{X: 0, Y: 0, Radius: 1, DX: -0.5, DY: -0.5}},
		{"mid", 0.5, components.ParticleData{X: 400, Y: 300, Radius: 2, DX: 0, DY: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := donburi.NewWorld()
			entries := CreateParticleField(w, fixedRand(tt.u), 1, 800, 600, cfg.Particles)
			if got := *components.Particle.Get(entries[0]); got != tt.want {
				t.Errorf("particle = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParticleFieldEmpty(t *testing.T) {
	w := donburi.NewWorld()
	if got := CreateParticleField(w, fixedRand(0), 0, 800, 600, cfg.Particles); len(got) != 0 {
		t.Errorf("got %d particles, want none", len(got))
	}
}

// counter is any component type that can iterate its entries.
type counter interface {
	Each(w donburi.World, fn func(*donburi.Entry))
}

func count(w donburi.World, c counter) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestCreatePortfolio(t *testing.T) {
	w := donburi.NewWorld()
	CreatePortfolio(w, rand.New(rand.NewPCG(1, 2)), 1280, 720)

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"particles", count(w, components.Particle), cfg.Particles.Count},
		{"buttons", count(w, tags.Button), len(cfg.Page.Buttons)},
		{"sections", count(w, tags.Section), len(cfg.Page.Sections)},
		{"profiles", count(w, tags.Profile), 1},
		{"cursors", count(w, components.Cursor), 1},
		{"typewriters", count(w, components.Typewriter), 1},
		{"pointers", count(w, tags.Pointer), 1},
		{"ripples", count(w, tags.Ripple), 0},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if _, ok := components.Space.First(w); !ok {
		t.Error("space missing")
	}
}

func TestSpawnRipple(t *testing.T) {
	w := donburi.NewWorld()
	entry := SpawnRipple(w, nil, 40, 50, cfg.Ripple)

	r := components.Ripple.Get(entry)
	if r.X != 40 || r.Y != 50 || r.Radius != 0 {
		t.Errorf("ripple = %+v, want at (40, 50) with no radius", *r)
	}
	if r.RadiusTween == nil || r.AlphaTween == nil {
		t.Fatal("ripple tweens not set")
	}
	if !entry.HasComponent(components.AutoDestroy) {
		t.Error("ripple is not auto-destroyed")
	}
}
