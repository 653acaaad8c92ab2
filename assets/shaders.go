package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// HeroShader paints the hero background gradient
	HeroShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	heroSrc, err := shaderFS.ReadFile("shaders/hero.kage")
	if err != nil {
		return err
	}
	shader, err := ebiten.NewShader(heroSrc)
	if err != nil {
		return fmt.Errorf("compile hero shader: %w", err)
	}
	HeroShader = shader

	return nil
}
