package manager

import (
	"time"

	"github.com/google/uuid"
)

// StateManager tracks the bookkeeping of one game session: its id, the
// score, the number of ticks played and whether the game has ended.
type StateManager struct {
	uuid      string
	startTime time.Time
	score     int
	steps     int
	gameOver  bool
	cause     CollisionType
}

func NewStateManager() *StateManager {
	return &StateManager{
		uuid:      uuid.New().String(),
		startTime: time.Now(),
	}
}

func (sm *StateManager) UUID() string {
	return sm.uuid
}

func (sm *StateManager) AddScore() {
	sm.score++
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) AddStep() {
	sm.steps++
}

func (sm *StateManager) GetSteps() int {
	return sm.steps
}

// EndGame records the collision that finished the session.
func (sm *StateManager) EndGame(cause CollisionType) {
	sm.gameOver = true
	sm.cause = cause
}

func (sm *StateManager) IsGameOver() bool {
	return sm.gameOver
}

func (sm *StateManager) Cause() CollisionType {
	return sm.cause
}

// ElapsedTime returns how long the session has been running.
func (sm *StateManager) ElapsedTime() time.Duration {
	return time.Since(sm.startTime)
}
