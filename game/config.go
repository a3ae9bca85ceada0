package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is returned for zero or negative grid dimensions.
	ErrInvalidGrid = errors.New("invalid grid dimensions")
	// ErrInvalidStart is returned when the starting snake cannot be placed.
	ErrInvalidStart = errors.New("invalid start state")
)

// Config describes a new game. Width and Height are in grid cells.
type Config struct {
	Width       int
	Height      int
	StartLength int
}

func DefaultConfig() Config {
	return Config{
		Width:       20,
		Height:      20,
		StartLength: 1,
	}
}

// Validate checks the grid dimensions and the starting length. At least one
// cell must remain free for food.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, c.Width, c.Height)
	}
	if c.StartLength < 1 || c.StartLength >= c.Width*c.Height {
		return fmt.Errorf("%w: start length %d on a %dx%d grid", ErrInvalidStart, c.StartLength, c.Width, c.Height)
	}
	return nil
}
