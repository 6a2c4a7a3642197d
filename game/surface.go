package game

import "canvas-snake/game/types"

// Surface is the drawing target of a game. DrawCell paints one cell-sized
// square whose top-left corner is p; implementations clip anything that falls
// outside their bounds.
type Surface interface {
	Clear()
	DrawCell(p types.Point, c types.Color)
}

type discardSurface struct{}

func (discardSurface) Clear()                            {}
func (discardSurface) DrawCell(types.Point, types.Color) {}
