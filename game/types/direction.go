package types

// Direction represents a cardinal direction of travel
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// Vector returns the unit step for d. Up decreases Y, down increases it.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case UP:
		return 0, -1
	case RIGHT:
		return 1, 0
	case DOWN:
		return 0, 1
	case LEFT:
		return -1, 0
	default:
		return 0, 0
	}
}

// Next returns the cell one cellSize away from p in direction d.
func (d Direction) Next(p Point, cellSize int) Point {
	dx, dy := d.Vector()
	return p.Add(dx*cellSize, dy*cellSize)
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}
