package factory

import (
	"github.com/automoto/folio-fx/archetypes"
	"github.com/automoto/folio-fx/components"
	"github.com/yohamta/donburi"
)

// CreateCursor creates the eased cursor marker at the origin.
func CreateCursor(w donburi.World, smoothing float64) *donburi.Entry {
	cursor := archetypes.Cursor.Spawn(w)
	components.Cursor.SetValue(cursor, components.CursorData{Smoothing: smoothing, Scale: 1})
	return cursor
}
