package manager

import (
	"errors"

	"canvas-snake/game/entity"
	"canvas-snake/game/types"
)

// ErrGridFull is returned when every cell is covered by the snake.
var ErrGridFull = errors.New("no free cell left for food")

type FoodManager struct {
	grid      types.Grid
	food      types.Point
	hasFood   bool
	placement PlacementStrategy
}

func NewFoodManager(grid types.Grid, placement PlacementStrategy) *FoodManager {
	return &FoodManager{
		grid:      grid,
		placement: placement,
	}
}

// Place moves the food to a cell the snake does not cover. On a full grid
// the food is removed and ErrGridFull is returned.
func (fm *FoodManager) Place(snake *entity.Snake) error {
	food, ok := fm.placement.Place(fm.grid, snake.Contains)
	if !ok {
		fm.hasFood = false
		return ErrGridFull
	}
	fm.food = food
	fm.hasFood = true
	return nil
}

// Set puts the food on p without any checks.
func (fm *FoodManager) Set(p types.Point) {
	fm.food = p
	fm.hasFood = true
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

func (fm *FoodManager) HasFood() bool {
	return fm.hasFood
}

// IsFood reports whether pos is the current food cell.
func (fm *FoodManager) IsFood(pos types.Point) bool {
	return fm.hasFood && pos == fm.food
}
