package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"canvas-snake/game"
	"canvas-snake/game/types"
	"canvas-snake/ui"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func backgroundAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func tcellColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func TestSurfaceDrawCell(t *testing.T) {
	screen := newSimScreen(t)
	grid := types.Grid{Width: 300, Height: 300, CellSize: 15}
	surface := NewSurface(screen, grid)

	surface.Clear()
	surface.DrawCell(types.Point{X: 165, Y: 150}, types.SnakeColor)

	// Cell (11,10) covers columns 22 and 23 of row 10.
	for _, x := range []int{22, 23} {
		if got := backgroundAt(screen, x, 10); got != tcellColor(types.SnakeColor) {
			t.Errorf("column %d row 10 background = %v, want snake color", x, got)
		}
	}
	for _, x := range []int{21, 24} {
		if got := backgroundAt(screen, x, 10); got != tcellColor(types.Background) {
			t.Errorf("column %d row 10 background = %v, want background", x, got)
		}
	}
}

func TestSurfaceClipsOutsideCells(t *testing.T) {
	screen := newSimScreen(t)
	grid := types.Grid{Width: 60, Height: 60, CellSize: 15}
	surface := NewSurface(screen, grid)

	surface.Clear()
	surface.DrawCell(types.Point{X: 60, Y: 0}, types.FoodColor)
	surface.DrawCell(types.Point{X: -15, Y: 0}, types.FoodColor)

	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if backgroundAt(screen, x, y) == tcellColor(types.FoodColor) {
				t.Fatalf("off-grid cell drawn at column %d row %d", x, y)
			}
		}
	}
}

func TestSurfaceRendersGame(t *testing.T) {
	screen := newSimScreen(t)
	cfg := game.DefaultConfig()
	cfg.Seed = 5
	surface := NewSurface(screen, cfg.Grid())

	g, err := game.NewGame(cfg, surface)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.SetFood(types.Point{X: 165, Y: 150})
	g.Step()
	surface.DrawStatus(ui.StatusLine(g))

	for _, p := range g.Snake() {
		col, row := p.X/cfg.CellSize*columnsPerCell, p.Y/cfg.CellSize
		if backgroundAt(screen, col, row) != tcellColor(types.SnakeColor) {
			t.Errorf("snake segment %v not drawn", p)
		}
	}
	food := g.Food()
	if backgroundAt(screen, food.X/cfg.CellSize*columnsPerCell, food.Y/cfg.CellSize) != tcellColor(types.FoodColor) {
		t.Errorf("food %v not drawn", food)
	}

	var line strings.Builder
	for x := 0; x < 40; x++ {
		r, _, _, _ := screen.GetContent(x, cfg.Grid().Rows())
		line.WriteRune(r)
	}
	if !strings.HasPrefix(line.String(), "Snake - score 1") {
		t.Fatalf("status line = %q", line.String())
	}
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		want types.KeyCode
		ok   bool
	}{
		{tcell.KeyLeft, types.KeyLeft, true},
		{tcell.KeyUp, types.KeyUp, true},
		{tcell.KeyRight, types.KeyRight, true},
		{tcell.KeyDown, types.KeyDown, true},
		{tcell.KeyEnter, 0, false},
		{tcell.KeyRune, 0, false},
	}
	for _, tt := range tests {
		got, ok := KeyFromEvent(tcell.NewEventKey(tt.key, 'x', tcell.ModNone))
		if got != tt.want || ok != tt.ok {
			t.Errorf("KeyFromEvent(%v) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsQuit(t *testing.T) {
	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quits {
		if !isQuit(ev) {
			t.Errorf("%v should quit", ev.Name())
		}
	}
	if isQuit(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Error("arrow key should not quit")
	}
}

func TestPlayQuitsOnQ(t *testing.T) {
	screen := newSimScreen(t)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() {
		done <- play(context.Background(), screen, game.DefaultConfig(), time.NewTicker(time.Hour))
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("play returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("play did not return after q")
	}
}
