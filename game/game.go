package game

import (
	"log"
	"time"

	"canvas-snake/game/entity"
	"canvas-snake/game/manager"
	"canvas-snake/game/types"

	"golang.org/x/exp/rand"
)

// Game owns the snake, the food and the score, and draws them on a Surface.
// It is not safe for concurrent use; Session serializes ticks and key presses.
type Game struct {
	Grid         types.Grid
	config       Config
	surface      Surface
	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
}

// NewGame validates cfg and starts a game with a single segment in the middle
// of the grid, heading right. A nil surface discards all drawing.
func NewGame(cfg Config, surface Surface) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		surface = discardSurface{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	grid := cfg.Grid()
	g := &Game{
		Grid:         grid,
		config:       cfg,
		surface:      surface,
		snake:        entity.NewSnake(grid.Center()),
		foodMgr:      manager.NewFoodManager(grid, manager.DefaultPlacement(rng)),
		collisionMgr: manager.NewCollisionManager(grid, cfg.Collide),
		stateMgr:     manager.NewStateManager(),
	}

	// Generate initial food
	if err := g.PlaceFood(); err != nil {
		log.Printf("session %s: %v", g.SessionID(), err)
	}

	return g, nil
}

// Step advances the game by one tick and redraws the surface.
func (g *Game) Step() {
	if g.stateMgr.IsGameOver() {
		g.Draw()
		return
	}

	newHead := g.calculateNewPosition()
	eating := g.foodMgr.IsFood(newHead)

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake, eating); collision != manager.NoCollision {
		g.stateMgr.EndGame(collision)
		log.Printf("session %s: game over (%s collision) at %v, score %d",
			g.SessionID(), collision, newHead, g.stateMgr.GetScore())
		g.Draw()
		return
	}

	g.snake.Move(newHead)

	if eating {
		g.stateMgr.AddScore()
		if err := g.PlaceFood(); err != nil {
			log.Printf("session %s: %v", g.SessionID(), err)
		}
	} else {
		g.snake.RemoveTail()
	}

	g.stateMgr.AddStep()
	g.Draw()
}

func (g *Game) calculateNewPosition() types.Point {
	return g.snake.Direction.Next(g.snake.GetHead(), g.Grid.CellSize)
}

// OnKey turns the snake when code is one of the arrow keys and ignores
// anything else. The last key before a tick wins.
func (g *Game) OnKey(code types.KeyCode) {
	if dir, ok := types.DirectionFor(code); ok {
		g.snake.SetDirection(dir)
	}
}

// PlaceFood moves the food to a random free cell.
func (g *Game) PlaceFood() error {
	return g.foodMgr.Place(g.snake)
}

// SetFood puts the food on p, bypassing placement.
func (g *Game) SetFood(p types.Point) {
	g.foodMgr.Set(p)
}

// Draw clears the surface and paints the snake, then the food.
func (g *Game) Draw() {
	g.surface.Clear()
	for _, p := range g.snake.Body {
		g.surface.DrawCell(p, types.SnakeColor)
	}
	if g.foodMgr.HasFood() {
		g.surface.DrawCell(g.foodMgr.GetFood(), types.FoodColor)
	}
}

func (g *Game) Config() Config {
	return g.config
}

// Snake returns a copy of the body, tail first and head last.
func (g *Game) Snake() []types.Point {
	return g.snake.Segments()
}

func (g *Game) Head() types.Point {
	return g.snake.GetHead()
}

func (g *Game) Food() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) HasFood() bool {
	return g.foodMgr.HasFood()
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) Steps() int {
	return g.stateMgr.GetSteps()
}

func (g *Game) GameOver() bool {
	return g.stateMgr.IsGameOver()
}

// Collision returns what ended the game, NoCollision while it is running.
func (g *Game) Collision() manager.CollisionType {
	return g.stateMgr.Cause()
}

func (g *Game) SessionID() string {
	return g.stateMgr.UUID()
}
