package entity

import (
	"canvas-snake/game/types"
)

// Snake holds the body segments ordered from tail (index 0) to head (last).
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.RIGHT, // Start moving right
	}
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment sits on p.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body, tail first.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// SetDirection overwrites the direction unconditionally, reversals included.
func (s *Snake) SetDirection(dir types.Direction) {
	s.Direction = dir
}
