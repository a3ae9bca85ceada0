package types

import "fmt"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether the cell lies inside the grid
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Area is the number of cells in the grid
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Cell is a (column, row) position on the logical grid
type Cell struct {
	X, Y int
}

// Move returns the neighbouring cell in direction d
func (c Cell) Move(d Direction) Cell {
	delta := d.Delta()
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Manhattan returns the grid distance between two cells
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four cardinal headings
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order
var Directions = [4]Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the heading pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta converts a Direction into a unit displacement
func (d Direction) Delta() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	case Right:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
