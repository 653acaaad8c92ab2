package render

import (
	"image"
	"image/color"

	"github.com/automoto/folio-fx/assets"
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	// heroBands is the number of flat bands used when the gradient shader is unavailable
	heroBands = 32
	// heroGlowAlpha is the strength of the pointer-following glow
	heroGlowAlpha = 0.35
)

// DrawBackground clears the page and paints the hero gradient. The hero scrolls at
// a fraction of the page speed and its glow drifts with the pointer.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	pal := CurrentPalette(e.World)
	screen.Fill(pal.Background)

	entry, ok := components.Parallax.First(e.World)
	if !ok {
		return
	}
	parallax := components.Parallax.Get(entry)
	scroll := scrollOffset(e.World)

	width := float64(screen.Bounds().Dx())
	heroH := cfg.Page.HeroHeight
	top := -scroll + parallax.OffsetY
	if top+heroH <= 0 {
		return
	}
	glowX := width/2 + parallax.ShiftX
	glowY := top + heroH/2 + parallax.ShiftY
	glow := gamemath.WithAlpha(pal.Accent, heroGlowAlpha)

	if assets.HeroShader != nil {
		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM.Translate(0, top)
		op.Uniforms = map[string]any{
			"Top":    rgbaUniform(pal.HeroTop),
			"Bottom": rgbaUniform(pal.HeroBottom),
			"Origin": float32(top),
			"Height": float32(heroH),
			"Glow":   straightUniform(pal.Accent, heroGlowAlpha),
			"Center": []float32{float32(glowX), float32(glowY)},
			"Radius": float32(cfg.Parallax.GlowSize),
		}
		screen.DrawRectShader(int(width), int(heroH), assets.HeroShader, op)
		return
	}

	bandH := heroH / heroBands
	for i := 0; i < heroBands; i++ {
		c := gamemath.LerpRGBA(pal.HeroTop, pal.HeroBottom, float64(i)/float64(heroBands-1))
		y := top + float64(i)*bandH
		vector.FillRect(screen, 0, float32(y), float32(width), float32(bandH+1), c, false)
	}
	hero := screen.SubImage(image.Rect(0, int(top), int(width), int(top+heroH))).(*ebiten.Image)
	vector.DrawFilledCircle(hero, float32(glowX), float32(glowY), float32(cfg.Parallax.GlowSize/2), glow, true)
}

func rgbaUniform(c interface{ RGBA() (r, g, b, a uint32) }) []float32 {
	r, g, b, a := c.RGBA()
	return []float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff}
}

// straightUniform returns c as straight RGB with alpha a, for mixing in a shader.
func straightUniform(c color.RGBA, a float64) []float32 {
	return []float32{float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(a)}
}
