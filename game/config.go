package game

import (
	"errors"
	"fmt"
	"time"

	"canvas-snake/game/manager"
	"canvas-snake/game/types"
)

var (
	ErrInvalidDimension = errors.New("dimensions must be positive")
	ErrMisalignedGrid   = errors.New("cell size must divide width and height")
)

// Default board: a 300x300 surface split in 20x20 cells, one tick every 100ms.
const (
	DefaultWidth    = 300
	DefaultHeight   = 300
	DefaultCellSize = 15
	DefaultInterval = 100 * time.Millisecond
)

type Config struct {
	Width    int // surface width in pixels
	Height   int // surface height in pixels
	CellSize int // edge of one grid square in pixels
	Interval time.Duration
	Seed     uint64 // 0 picks a time based seed
	Collide  manager.CollisionPolicy
}

func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		CellSize: DefaultCellSize,
		Interval: DefaultInterval,
		Collide:  manager.CollideNone,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.CellSize <= 0 {
		return fmt.Errorf("%w: width=%d height=%d cell=%d", ErrInvalidDimension, c.Width, c.Height, c.CellSize)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval=%s", ErrInvalidDimension, c.Interval)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return fmt.Errorf("%w: %dx%d with cell %d", ErrMisalignedGrid, c.Width, c.Height, c.CellSize)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{
		Width:    c.Width,
		Height:   c.Height,
		CellSize: c.CellSize,
	}
}
