//go:build !ebiten

package window

import (
	"context"
	"time"

	"canvas-snake/game"
	"canvas-snake/game/types"
	"canvas-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const borderPadding = 2 // Black frame around the canvas

// Name identifies the graphics backend compiled into this build.
const Name = "raylib"

// RaylibCanvas is a render texture the game draws into on every tick. It
// keeps its pixels between ticks and is blitted to the window each frame.
type RaylibCanvas struct {
	target   rl.RenderTexture2D
	width    int32
	height   int32
	cellSize int32
}

// NewRaylibCanvas must be called after the window is open.
func NewRaylibCanvas(width, height, cellSize int) *RaylibCanvas {
	return &RaylibCanvas{
		target:   rl.LoadRenderTexture(int32(width), int32(height)),
		width:    int32(width),
		height:   int32(height),
		cellSize: int32(cellSize),
	}
}

func (c *RaylibCanvas) Clear() {
	rl.ClearBackground(raylibColor(types.Background))
}

func (c *RaylibCanvas) DrawCell(p types.Point, col types.Color) {
	rl.DrawRectangle(int32(p.X), int32(p.Y), c.cellSize, c.cellSize, raylibColor(col))
}

// Begin redirects drawing to the canvas until End.
func (c *RaylibCanvas) Begin() {
	rl.BeginTextureMode(c.target)
}

func (c *RaylibCanvas) End() {
	rl.EndTextureMode()
}

// Present draws the canvas on the window with its top-left corner at (x, y).
func (c *RaylibCanvas) Present(x, y int32) {
	// Render textures are stored upside down, hence the negative height.
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(c.width), Height: -float32(c.height)}
	rl.DrawTextureRec(c.target.Texture, src, rl.Vector2{X: float32(x), Y: float32(y)}, rl.White)
}

func (c *RaylibCanvas) Unload() {
	rl.UnloadRenderTexture(c.target)
}

func raylibColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

var raylibKeys = map[int32]types.KeyCode{
	rl.KeyLeft:  types.KeyLeft,
	rl.KeyUp:    types.KeyUp,
	rl.KeyRight: types.KeyRight,
	rl.KeyDown:  types.KeyDown,
}

// Run plays cfg in a window sized to the canvas plus a thin frame.
// Closing the window or pressing Escape ends the session.
func Run(ctx context.Context, cfg game.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width)+borderPadding*2, int32(cfg.Height)+borderPadding*2, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	canvas := NewRaylibCanvas(cfg.Width, cfg.Height, cfg.CellSize)
	defer canvas.Unload()

	g, err := game.NewGame(cfg, canvas)
	if err != nil {
		return err
	}
	session := game.NewSession(g)
	session.AfterStep = func() {
		rl.SetWindowTitle(ui.StatusLine(g))
	}

	canvas.Begin()
	g.Draw()
	canvas.End()

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		// Drain every key queued this frame so the last one wins.
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			if code, ok := raylibKeys[key]; ok {
				session.Key(code)
			}
		}

		canvas.Begin()
		session.Advance(time.Now())
		canvas.End()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		canvas.Present(borderPadding, borderPadding)
		rl.EndDrawing()
	}
	return nil
}
