package ui

import (
	"errors"
	"fmt"

	"snake-canvas/game/types"
)

var (
	// ErrInvalidGrid is returned when the logical grid has no cells.
	ErrInvalidGrid = errors.New("invalid logical grid")
	// ErrInvalidSurface is returned for negative surface dimensions.
	ErrInvalidSurface = errors.New("invalid surface size")
)

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H int
}

// Overlaps reports whether two rectangles share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Viewport maps logical grid cells onto a physical drawing surface. The
// playfield is the largest centered square that fits the surface and cells
// are square, sized by whichever axis is tighter. It is a value derived only
// from its four inputs; resize by building a new one.
type Viewport struct {
	physicalWidth  int
	physicalHeight int
	logicalWidth   int
	logicalHeight  int

	cellSize      int
	playfieldSide int
	offsetX       int
	offsetY       int
}

func NewViewport(physicalWidth, physicalHeight, logicalWidth, logicalHeight int) (Viewport, error) {
	if logicalWidth <= 0 || logicalHeight <= 0 {
		return Viewport{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, logicalWidth, logicalHeight)
	}
	if physicalWidth < 0 || physicalHeight < 0 {
		return Viewport{}, fmt.Errorf("%w: %dx%d", ErrInvalidSurface, physicalWidth, physicalHeight)
	}

	side := min(physicalWidth, physicalHeight)
	return Viewport{
		physicalWidth:  physicalWidth,
		physicalHeight: physicalHeight,
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		cellSize:       min(physicalWidth/logicalWidth, physicalHeight/logicalHeight),
		playfieldSide:  side,
		offsetX:        (physicalWidth - side) / 2,
		offsetY:        (physicalHeight - side) / 2,
	}, nil
}

// Resize recomputes the mapping for a new surface size.
func (v Viewport) Resize(physicalWidth, physicalHeight int) (Viewport, error) {
	return NewViewport(physicalWidth, physicalHeight, v.logicalWidth, v.logicalHeight)
}

// CellRect maps a grid cell to its pixel rectangle. With a zero cell size the
// rectangle is empty.
func (v Viewport) CellRect(c types.Cell) Rect {
	return Rect{
		X: c.X*v.cellSize + v.offsetX,
		Y: c.Y*v.cellSize + v.offsetY,
		W: v.cellSize,
		H: v.cellSize,
	}
}

// Playfield is the centered square behind the grid.
func (v Viewport) Playfield() Rect {
	return Rect{X: v.offsetX, Y: v.offsetY, W: v.playfieldSide, H: v.playfieldSide}
}

// Surface covers the whole physical surface.
func (v Viewport) Surface() Rect {
	return Rect{W: v.physicalWidth, H: v.physicalHeight}
}

// InGrid reports whether c is a valid cell of the logical grid.
func (v Viewport) InGrid(c types.Cell) bool {
	return types.Grid{Width: v.logicalWidth, Height: v.logicalHeight}.Contains(c)
}

func (v Viewport) CellSize() int      { return v.cellSize }
func (v Viewport) PlayfieldSide() int { return v.playfieldSide }
func (v Viewport) OffsetX() int       { return v.offsetX }
func (v Viewport) OffsetY() int       { return v.offsetY }

func (v Viewport) PhysicalSize() (int, int) { return v.physicalWidth, v.physicalHeight }
func (v Viewport) LogicalSize() (int, int)  { return v.logicalWidth, v.logicalHeight }
