package entity

import "snake-canvas/game/types"

// Snake holds the body cells, head first and tail last.
type Snake struct {
	body []types.Cell
}

func NewSnake(body []types.Cell) *Snake {
	b := make([]types.Cell, len(body))
	copy(b, body)
	return &Snake{body: b}
}

// Move pushes a new head without dropping the tail.
func (s *Snake) Move(newHead types.Cell) {
	s.body = append(s.body, types.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

func (s *Snake) GetHead() types.Cell {
	return s.body[0]
}

func (s *Snake) GetTail() types.Cell {
	return s.body[len(s.body)-1]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c types.Cell) bool {
	for _, p := range s.body {
		if p == c {
			return true
		}
	}
	return false
}

// Body returns a copy of the body so callers cannot alias game state.
func (s *Snake) Body() []types.Cell {
	b := make([]types.Cell, len(s.body))
	copy(b, s.body)
	return b
}
