package factory

import (
	"github.com/automoto/folio-fx/archetypes"
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SpawnRipple creates a ripple centered at (x, y) in page coordinates inside owner. It
// expands and fades over rc.Duration and is removed once both tweens finish.
func SpawnRipple(w donburi.World, owner *donburi.Entry, x, y float64, rc cfg.RippleConfig) *donburi.Entry {
	entry := archetypes.Ripple.Spawn(w)
	components.Ripple.SetValue(entry, components.RippleData{
		X:           x,
		Y:           y,
		Alpha:       rc.Alpha,
		Owner:       owner,
		RadiusTween: gween.New(0, float32(rc.MaxRadius), rc.Duration, ease.OutQuad),
		AlphaTween:  gween.New(float32(rc.Alpha), 0, rc.Duration, ease.Linear),
	})
	return entry
}
