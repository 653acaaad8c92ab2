package factory

import (
	cfg "github.com/automoto/folio-fx/config"
	"github.com/yohamta/donburi"
)

// CreatePortfolio builds the whole page in w from the current configuration: the page
// context, the hit-testing space, widgets, sections, the typed headline, the particle
// field and the cursor marker.
func CreatePortfolio(w donburi.World, rng Rand, width, height float64) {
	CreatePage(w, width, height, cfg.Theme.StartDark, cfg.Parallax.Factor)
	CreateSpace(w, cfg.Page.Height, cfg.Page.CellSize)

	for _, b := range cfg.Page.Buttons {
		CreateButton(w, b, cfg.Hover)
	}
	CreateProfile(w, cfg.Profile, cfg.Hover)
	for i, s := range cfg.Page.Sections {
		CreateSection(w, i, s)
	}
	CreateTypewriter(w, cfg.Typewriter)

	CreateParticleField(w, rng, cfg.Particles.Count, width, height, cfg.Particles)
	CreateCursor(w, cfg.Cursor.Smoothing)
}
