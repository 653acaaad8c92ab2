package render

import (
	"image/color"

	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/automoto/folio-fx/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var cursorMarker *ebiten.Image

// markerImage renders the cursor ring and dot once, in white, to be tinted per draw.
func markerImage() *ebiten.Image {
	if cursorMarker != nil {
		return cursorMarker
	}
	size := int(2*cfg.Cursor.Radius + 2*cfg.Cursor.StrokeWidth + 2)
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.StrokeCircle(img, c, c, float32(cfg.Cursor.Radius), float32(cfg.Cursor.StrokeWidth), color.White, true)
	vector.DrawFilledCircle(img, c, c, float32(cfg.Cursor.DotRadius), color.White, true)
	cursorMarker = img
	return img
}

// DrawCursor places the marker at the cursor's eased position through its transform,
// scaled and tinted toward the hover look while the pointer is over a button.
func DrawCursor(e *ecs.ECS, screen *ebiten.Image) {
	pal := CurrentPalette(e.World)
	img := markerImage()
	half := float64(img.Bounds().Dx()) / 2

	components.Cursor.Each(e.World, func(entry *donburi.Entry) {
		cursor := components.Cursor.Get(entry)
		scale := cursor.Scale
		if scale <= 0 {
			scale = 1
		}

		// 0 at rest, 1 at full hover size
		hover := 0.0
		if cfg.Cursor.HoverScale > 1 {
			hover = gamemath.Clamp((scale-1)/(cfg.Cursor.HoverScale-1), 0, 1)
		}
		tint := gamemath.LerpRGBA(pal.Cursor, pal.CursorHover, hover)

		if hover > 0 {
			glow := gamemath.WithAlpha(tint, 0.3*hover)
			vector.DrawFilledCircle(screen, float32(cursor.X), float32(cursor.Y),
				float32(cfg.Cursor.Radius*scale*1.4), glow, true)
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(cursor.X, cursor.Y)
		op.ColorScale.ScaleWithColor(tint)
		screen.DrawImage(img, op)
	})
}
