//go:build ebiten

package window

import (
	"context"
	"errors"
	"image/color"
	"time"

	"canvas-snake/game"
	"canvas-snake/game/types"
	"canvas-snake/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Name identifies the graphics backend compiled into this build.
const Name = "ebiten"

// EbitenCanvas is an offscreen image the game draws into on every tick.
type EbitenCanvas struct {
	image    *ebiten.Image
	cellSize float32
}

func NewEbitenCanvas(width, height, cellSize int) *EbitenCanvas {
	return &EbitenCanvas{
		image:    ebiten.NewImage(width, height),
		cellSize: float32(cellSize),
	}
}

func (c *EbitenCanvas) Clear() {
	c.image.Fill(rgba(types.Background))
}

func (c *EbitenCanvas) DrawCell(p types.Point, col types.Color) {
	vector.DrawFilledRect(c.image, float32(p.X), float32(p.Y), c.cellSize, c.cellSize, rgba(col), false)
}

func (c *EbitenCanvas) Image() *ebiten.Image {
	return c.image
}

func rgba(c types.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

var ebitenKeys = map[ebiten.Key]types.KeyCode{
	ebiten.KeyArrowLeft:  types.KeyLeft,
	ebiten.KeyArrowUp:    types.KeyUp,
	ebiten.KeyArrowRight: types.KeyRight,
	ebiten.KeyArrowDown:  types.KeyDown,
}

// ebitenGame adapts a Session to ebiten's Update/Draw/Layout loop.
type ebitenGame struct {
	ctx     context.Context
	session *game.Session
	canvas  *EbitenCanvas
	keys    []ebiten.Key
}

func (eg *ebitenGame) Update() error {
	if eg.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	eg.keys = inpututil.AppendJustPressedKeys(eg.keys[:0])
	for _, k := range eg.keys {
		if code, ok := ebitenKeys[k]; ok {
			eg.session.Key(code)
		}
	}

	eg.session.Advance(time.Now())
	return nil
}

func (eg *ebitenGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(eg.canvas.Image(), nil)
}

func (eg *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := eg.session.Game().Grid
	return grid.Width, grid.Height
}

// Run plays cfg in an ebiten window the size of the canvas.
func Run(ctx context.Context, cfg game.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	canvas := NewEbitenCanvas(cfg.Width, cfg.Height, cfg.CellSize)
	g, err := game.NewGame(cfg, canvas)
	if err != nil {
		return err
	}

	session := game.NewSession(g)
	session.AfterStep = func() {
		ebiten.SetWindowTitle(ui.StatusLine(g))
	}
	g.Draw()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(ui.StatusLine(g))

	err = ebiten.RunGame(&ebitenGame{ctx: ctx, session: session, canvas: canvas})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
