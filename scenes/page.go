package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/folio-fx/assets"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/fonts"
	"github.com/automoto/folio-fx/input"
	"github.com/automoto/folio-fx/render"
	"github.com/automoto/folio-fx/systems"
	factory2 "github.com/automoto/folio-fx/systems/factory"
	"github.com/automoto/folio-fx/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// layerDefault is the only render layer; renderers run in the order they are added.
const layerDefault ecs.LayerID = 0

// PageScene is the portfolio page: one world holding the page context and every effect.
type PageScene struct {
	ecs     *ecs.ECS
	rng     factory2.Rand
	poller  input.Poller
	toolbar *ui.Toolbar
	width   int
	height  int
	quit    bool
	once    sync.Once
}

// NewPageScene creates the page scene. rng seeds the particle field.
func NewPageScene(rng factory2.Rand, width, height int) *PageScene {
	return &PageScene{rng: rng, width: width, height: height}
}

func (ps *PageScene) Update() {
	ps.once.Do(ps.configure)

	in := ps.poller.Poll()
	if ps.poller.JustPressed(input.ActionQuit) {
		ps.quit = true
	}
	if ps.poller.JustPressed(input.ActionToggleDebug) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
	systems.SetInput(ps.ecs.World, in)

	if ps.toolbar != nil {
		ps.toolbar.Update()
	}
	ps.ecs.Update()
	if ps.toolbar != nil {
		ps.toolbar.SetDark(systems.IsDark(ps.ecs.World))
	}
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	if ps.toolbar != nil {
		ps.toolbar.UI.Draw(screen)
	}
}

// Resize forwards a change of window size to the page.
func (ps *PageScene) Resize(width, height int) {
	ps.width, ps.height = width, height
	if ps.ecs == nil {
		return
	}
	systems.ResizeViewport(ps.ecs.World, float64(width), float64(height))
}

// QuitRequested reports whether the user asked to close the page.
func (ps *PageScene) QuitRequested() bool {
	return ps.quit
}

func (ps *PageScene) configure() {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts, text disabled: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, using flat hero: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	for _, s := range systems.PageSystems {
		ecs.AddSystem(worldSystem(s))
	}

	// Back to front
	ecs.AddRenderer(layerDefault, render.DrawBackground)
	ecs.AddRenderer(layerDefault, render.DrawParticles)
	ecs.AddRenderer(layerDefault, render.DrawHeadline)
	ecs.AddRenderer(layerDefault, render.DrawProfile)
	ecs.AddRenderer(layerDefault, render.DrawSections)
	ecs.AddRenderer(layerDefault, render.DrawButtons)
	ecs.AddRenderer(layerDefault, render.DrawRipples)
	ecs.AddRenderer(layerDefault, render.DrawCursor)
	ecs.AddRenderer(layerDefault, render.DrawDebug)

	ps.ecs = ecs

	factory2.CreatePortfolio(ps.ecs.World, ps.rng, float64(ps.width), float64(ps.height))

	toolbar, err := ui.NewToolbar(systems.IsDark(ps.ecs.World), func() bool {
		systems.ToggleTheme(ps.ecs.World)
		return systems.IsDark(ps.ecs.World)
	})
	if err != nil {
		log.Printf("Warning: Could not build toolbar: %v", err)
		return
	}
	ps.toolbar = toolbar
}

// worldSystem adapts a page system to the ecs scheduler.
func worldSystem(s systems.System) ecs.System {
	return func(e *ecs.ECS) {
		s(e.World)
	}
}
