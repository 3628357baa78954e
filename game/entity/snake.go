package entity

import (
	"snake-astar/game/types"
)

// Snake is the body of the snake, head first.
type Snake struct {
	Body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body: []types.Point{startPos},
	}
}

// Move puts a new head in front of the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last cell; a single cell snake is left alone.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Cells returns a copy of the body that callers may keep.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
