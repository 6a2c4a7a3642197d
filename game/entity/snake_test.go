package entity

import (
	"testing"

	"canvas-snake/game/types"
)

func TestSnakeMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 150, Y: 150})
	if s.Direction != types.RIGHT || s.Len() != 1 {
		t.Fatalf("new snake: direction %s len %d", s.Direction, s.Len())
	}

	s.Move(types.Point{X: 165, Y: 150})
	if s.GetHead() != (types.Point{X: 165, Y: 150}) || s.GetTail() != (types.Point{X: 150, Y: 150}) {
		t.Fatalf("head %v tail %v", s.GetHead(), s.GetTail())
	}

	s.RemoveTail()
	if s.Len() != 1 || s.GetHead() != (types.Point{X: 165, Y: 150}) {
		t.Fatalf("after RemoveTail: %v", s.Body)
	}
	if s.Contains(types.Point{X: 150, Y: 150}) {
		t.Fatal("old tail still reported as part of the body")
	}
}

func TestSnakeSegmentsIsACopy(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 0})
	seg := s.Segments()
	seg[0] = types.Point{X: 99, Y: 99}
	if s.GetHead() != (types.Point{X: 0, Y: 0}) {
		t.Fatal("Segments exposed the internal body")
	}
}

func TestSnakeSetDirectionAllowsReversal(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 0})
	s.SetDirection(types.LEFT)
	if s.Direction != types.LEFT {
		t.Fatalf("direction = %s, want left", s.Direction)
	}
}
