package terminal

import (
	"context"
	"errors"
	"time"

	"canvas-snake/game"
	"canvas-snake/game/types"
	"canvas-snake/ui"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so cells look roughly square.
const columnsPerCell = 2

// Surface paints grid cells as colored blanks on a tcell screen. The
// status line sits on the row right below the grid.
type Surface struct {
	screen tcell.Screen
	grid   types.Grid
}

func NewSurface(screen tcell.Screen, grid types.Grid) *Surface {
	return &Surface{
		screen: screen,
		grid:   grid,
	}
}

func (t *Surface) Clear() {
	style := cellStyle(types.Background)
	for row := 0; row < t.grid.Rows(); row++ {
		for col := 0; col < t.grid.Columns()*columnsPerCell; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (t *Surface) DrawCell(p types.Point, c types.Color) {
	if !t.grid.Contains(p) {
		return
	}
	col, row := p.X/t.grid.CellSize, p.Y/t.grid.CellSize
	style := cellStyle(c)
	for i := 0; i < columnsPerCell; i++ {
		t.screen.SetContent(col*columnsPerCell+i, row, ' ', nil, style)
	}
}

// DrawStatus writes text on the row below the grid, blanking the rest of it.
func (t *Surface) DrawStatus(text string) {
	row := t.grid.Rows()
	width := t.grid.Columns() * columnsPerCell
	runes := []rune(text)
	for x := 0; x < width || x < len(runes); x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		t.screen.SetContent(x, row, r, nil, tcell.StyleDefault)
	}
}

func (t *Surface) Show() {
	t.screen.Show()
}

func cellStyle(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// KeyFromEvent translates tcell arrow keys to game key codes.
func KeyFromEvent(ev *tcell.EventKey) (types.KeyCode, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return types.KeyLeft, true
	case tcell.KeyUp:
		return types.KeyUp, true
	case tcell.KeyRight:
		return types.KeyRight, true
	case tcell.KeyDown:
		return types.KeyDown, true
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// Run plays cfg in the current terminal. Escape, Ctrl-C or q quit.
func Run(ctx context.Context, cfg game.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return play(ctx, screen, cfg, time.NewTicker(cfg.Interval))
}

// play runs a session on an initialized screen. Events are read on
// their own goroutine and handed to the session loop through a channel.
func play(ctx context.Context, screen tcell.Screen, cfg game.Config, ticker *time.Ticker) error {
	defer ticker.Stop()

	surface := NewSurface(screen, cfg.Grid())
	g, err := game.NewGame(cfg, surface)
	if err != nil {
		return err
	}

	session := game.NewSession(g)
	session.AfterStep = func() {
		surface.DrawStatus(ui.StatusLine(g))
		surface.Show()
	}

	g.Draw()
	surface.DrawStatus(ui.StatusLine(g))
	surface.Show()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan types.KeyCode, 16)
	go pumpEvents(ctx, cancel, screen, keys)

	err = session.Run(ctx, ticker.C, keys)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func pumpEvents(ctx context.Context, quit context.CancelFunc, screen tcell.Screen, keys chan<- types.KeyCode) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev) {
				quit()
				return
			}
			code, ok := KeyFromEvent(ev)
			if !ok {
				continue
			}
			select {
			case keys <- code:
			case <-ctx.Done():
				return
			}

		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
