package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// columnsPerPixel makes a surface pixel two terminal columns wide, which is
// close to square on common terminal fonts.
const columnsPerPixel = 2

// TerminalSurface paints on a tcell screen. One surface pixel is one row
// high and columnsPerPixel columns wide; text is always one row and ignores
// the size argument.
type TerminalSurface struct {
	screen tcell.Screen
}

func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	return &TerminalSurface{screen: screen}
}

// Size reports the surface size in pixels.
func (t *TerminalSurface) Size() (int, int) {
	w, h := t.screen.Size()
	return w / columnsPerPixel, h
}

func (t *TerminalSurface) FillRect(r Rect, c Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	cols, rows := t.screen.Size()
	x0 := max(r.X*columnsPerPixel, 0)
	x1 := min((r.X+r.W)*columnsPerPixel, cols)
	y0 := max(r.Y, 0)
	y1 := min(r.Y+r.H, rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText keeps the background already painted under each cell.
func (t *TerminalSurface) DrawText(text string, x, y, _ int, c Color) {
	cols, rows := t.screen.Size()
	if y < 0 || y >= rows {
		return
	}
	fg := toTcell(c)
	col := x * columnsPerPixel
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if col >= 0 && col+w <= cols {
			_, _, style, _ := t.screen.GetContent(col, y)
			t.screen.SetContent(col, y, r, nil, style.Foreground(fg))
		}
		col += w
	}
}

func (t *TerminalSurface) MeasureText(text string, _ int) int {
	w := runewidth.StringWidth(text)
	return (w + columnsPerPixel - 1) / columnsPerPixel
}

func toTcell(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
