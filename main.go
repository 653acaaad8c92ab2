package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/frame"
	"github.com/automoto/folio-fx/headless"
	"github.com/automoto/folio-fx/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	ctx   context.Context
	page  *scenes.PageScene
	scene Scene
	w, h  int
}

func NewGame(ctx context.Context, rng *rand.Rand) *Game {
	g := &Game{ctx: ctx}
	g.page = scenes.NewPageScene(rng, config.C.Width, config.C.Height)
	g.scene = g.page
	return g
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil || g.page.QuitRequested() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the drawing surface the size of the window so the page can reflow.
func (g *Game) Layout(width, height int) (int, int) {
	if width != g.w || height != g.h {
		g.w, g.h = width, height
		g.page.Resize(width, height)
	}
	return width, height
}

func main() {
	flag.BoolVar(&config.Debug.Headless, "headless", false, "run the page without a window")
	flag.IntVar(&config.Debug.Frames, "frames", 0, "frames to run headless (0 = until interrupted)")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "particle seed (0 = time based)")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "draw hit boxes and frame stats (toggle with F3)")
	flag.IntVar(&config.Particles.Count, "particles", config.Particles.Count, "number of background particles")
	flag.BoolVar(&config.Typewriter.Loop, "typewriter-loop", config.Typewriter.Loop, "cycle the headline phrases (false types the first one once)")
	flag.Float64Var(&config.Cursor.Smoothing, "smoothing", config.Cursor.Smoothing, "cursor easing factor in (0, 1]")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := uint64(config.Debug.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	if config.Debug.Headless {
		runHeadless(ctx, rng)
		return
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(NewGame(ctx, rng)); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(ctx context.Context, rng *rand.Rand) {
	var src frame.Source
	if config.Debug.Frames > 0 {
		src = frame.NewCount(config.Debug.Frames)
	} else {
		ticker := frame.NewTicker(config.C.TPS)
		defer ticker.Stop()
		src = ticker
	}

	_, sum, err := headless.Run(ctx, headless.Options{
		Width:  float64(config.C.Width),
		Height: float64(config.C.Height),
		Rand:   rng,
		Source: src,
	})
	headless.LogSummary(sum)
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
