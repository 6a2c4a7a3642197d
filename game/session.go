package game

import (
	"context"
	"log"
	"time"

	"canvas-snake/game/types"
)

// Session binds one Game to its timer and input sources. Ticks and key
// presses are handled one at a time, each running to completion.
type Session struct {
	game       *Game
	interval   time.Duration
	lastUpdate time.Time

	// AfterStep, when set, runs after every tick (e.g. to present the surface).
	AfterStep func()
}

func NewSession(g *Game) *Session {
	return &Session{
		game:     g,
		interval: g.Config().Interval,
	}
}

func (s *Session) Game() *Game {
	return s.game
}

func (s *Session) Interval() time.Duration {
	return s.interval
}

// Advance is for frame driven frontends: it steps once when at least one
// interval has passed since the previous step. The first call only starts
// the clock.
func (s *Session) Advance(now time.Time) bool {
	if s.lastUpdate.IsZero() {
		s.lastUpdate = now
		return false
	}
	if now.Sub(s.lastUpdate) < s.interval {
		return false
	}
	s.step()
	s.lastUpdate = now
	return true
}

// Key forwards a key press to the game.
func (s *Session) Key(code types.KeyCode) {
	s.game.OnKey(code)
}

func (s *Session) step() {
	s.game.Step()
	if s.AfterStep != nil {
		s.AfterStep()
	}
}

// Run drives the game from ticks and keys until ctx is done or either
// channel is closed. It returns ctx.Err() on cancellation and nil otherwise.
func (s *Session) Run(ctx context.Context, ticks <-chan time.Time, keys <-chan types.KeyCode) error {
	log.Printf("session %s: started, %dx%d cell %d every %s",
		s.game.SessionID(), s.game.Grid.Width, s.game.Grid.Height, s.game.Grid.CellSize, s.interval)
	defer func() {
		log.Printf("session %s: stopped after %d ticks, score %d",
			s.game.SessionID(), s.game.Steps(), s.game.Score())
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case code, ok := <-keys:
			if !ok {
				return nil
			}
			s.Key(code)

		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			s.step()
		}
	}
}
