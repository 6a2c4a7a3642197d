package types

// KeyCode identifies a key press. Frontends translate their native events to
// these codes before handing them to the game.
type KeyCode int

const (
	KeyLeft  KeyCode = 37
	KeyUp    KeyCode = 38
	KeyRight KeyCode = 39
	KeyDown  KeyCode = 40
)

var keyDirections = map[KeyCode]Direction{
	KeyLeft:  LEFT,
	KeyUp:    UP,
	KeyRight: RIGHT,
	KeyDown:  DOWN,
}

// DirectionFor returns the direction bound to code, or false when the code is
// not one of the four arrow keys.
func DirectionFor(code KeyCode) (Direction, bool) {
	d, ok := keyDirections[code]
	return d, ok
}
