package ui

import (
	"context"
	"fmt"

	"canvas-snake/game"
)

// Frontend opens a drawing surface and input source for cfg and plays one
// session on it until the player quits or ctx is done.
type Frontend func(ctx context.Context, cfg game.Config) error

// StatusLine summarizes a game for window titles and the terminal.
func StatusLine(g *game.Game) string {
	if g.GameOver() {
		return fmt.Sprintf("Snake - score %d - game over (%s)", g.Score(), g.Collision())
	}
	return fmt.Sprintf("Snake - score %d", g.Score())
}
