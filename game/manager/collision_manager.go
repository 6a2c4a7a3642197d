package manager

import (
	"fmt"

	"canvas-snake/game/entity"
	"canvas-snake/game/types"
)

// CollisionPolicy selects which collisions end the game.
type CollisionPolicy int

const (
	CollideNone  CollisionPolicy = iota // the snake passes through walls and itself
	CollideWalls                        // leaving the surface ends the game
	CollideAll                          // walls and the snake's own body
)

func (p CollisionPolicy) String() string {
	switch p {
	case CollideNone:
		return "none"
	case CollideWalls:
		return "walls"
	case CollideAll:
		return "all"
	default:
		return fmt.Sprintf("CollisionPolicy(%d)", int(p))
	}
}

// ParseCollisionPolicy maps the names returned by String back to a policy.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "none", "":
		return CollideNone, nil
	case "walls":
		return CollideWalls, nil
	case "all":
		return CollideAll, nil
	}
	return CollideNone, fmt.Errorf("unknown collision policy %q", s)
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid   types.Grid
	policy CollisionPolicy
}

func NewCollisionManager(grid types.Grid, policy CollisionPolicy) *CollisionManager {
	return &CollisionManager{
		grid:   grid,
		policy: policy,
	}
}

func (cm *CollisionManager) Policy() CollisionPolicy {
	return cm.policy
}

// CheckCollision tests the cell the head is about to enter. growing tells
// whether the tail stays in place this tick (the snake is eating).
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, growing bool) CollisionType {
	if cm.policy == CollideNone {
		return NoCollision
	}

	if cm.isWallCollision(pos) {
		return WallCollision
	}

	if cm.policy == CollideAll && cm.isSelfCollision(pos, snake, growing) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position lies outside the surface
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision skips the tail when it is about to move out of the way.
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake, growing bool) bool {
	start := 1
	if growing {
		start = 0
	}
	for i := start; i < len(snake.Body); i++ {
		if pos == snake.Body[i] {
			return true
		}
	}
	return false
}
