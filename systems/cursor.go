package systems

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCursor takes the latest pointer position as the marker's target and moves the
// marker a fixed fraction of the way there. It runs exactly once per frame. The marker
// grows while the pointer is over a button.
func UpdateCursor(w donburi.World) {
	entry, ok := pageEntry(w)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	components.Cursor.Each(w, func(e *donburi.Entry) {
		cursor := components.Cursor.Get(e)
		if input.PointerMoved {
			cursor.TargetX = input.PointerX
			cursor.TargetY = input.PointerY
		}
		cursor.X, cursor.Y = gamemath.LerpPoint(cursor.X, cursor.Y, cursor.TargetX, cursor.TargetY, cursor.Smoothing)

		scale := 1.0
		if cursor.Hovering {
			scale = cfg.Cursor.HoverScale
		}
		cursor.Scale = gamemath.Lerp(cursor.Scale, scale, cfg.Cursor.ScaleSpeed)
		cursor.Frames++
	})
}
