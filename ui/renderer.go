package ui

import (
	"fmt"

	"snake-canvas/game"
)

// Surface is the drawing target. Coordinates are absolute pixels.
type Surface interface {
	FillRect(r Rect, c Color)
	// DrawText paints a single line with its top-left corner at x, y.
	DrawText(text string, x, y, size int, c Color)
	// MeasureText returns the width in pixels DrawText would cover.
	MeasureText(text string, size int) int
}

const (
	defaultHint     = "W A S D"
	defaultFontSize = 50
)

// Renderer paints a game view through a Viewport. It keeps no per-frame
// state and never holds on to the view, viewport or surface after Draw.
type Renderer struct {
	Palette  Palette
	Hint     string
	FontSize int
	// StyleHead paints the head with Palette.Head instead of Palette.Snake.
	StyleHead bool
	// ShowGameOver adds an outcome and score line once the game is over.
	ShowGameOver bool
}

func NewRenderer(p Palette) *Renderer {
	return &Renderer{
		Palette:      p,
		Hint:         defaultHint,
		FontSize:     defaultFontSize,
		StyleHead:    true,
		ShowGameOver: true,
	}
}

func (r *Renderer) Draw(s Surface, v game.View, vp Viewport) {
	r.drawBoard(s, vp)

	for i, c := range v.Body {
		if !vp.InGrid(c) {
			continue
		}
		color := r.Palette.Snake
		if i == 0 && r.StyleHead {
			color = r.Palette.Head
		}
		s.FillRect(vp.CellRect(c), color)
	}

	if v.HasFood && vp.InGrid(v.Food) {
		s.FillRect(vp.CellRect(v.Food), r.Palette.Food)
	}

	if r.ShowGameOver && v.Outcome.Terminal() {
		r.drawGameOver(s, v, vp)
	}
}

func (r *Renderer) drawBoard(s Surface, vp Viewport) {
	s.FillRect(vp.Surface(), r.Palette.Clear)
	s.FillRect(vp.Surface(), r.Palette.Board)
	s.FillRect(vp.Playfield(), r.Palette.Playfield)

	size := r.fontSize(vp)
	if r.Hint == "" || size == 0 {
		return
	}
	pf := vp.Playfield()
	r.centerText(s, r.Hint, pf.X+pf.W/2, pf.Y+pf.H/2-size/2, size)
}

func (r *Renderer) drawGameOver(s Surface, v game.View, vp Viewport) {
	size := r.fontSize(vp)
	if size == 0 {
		return
	}
	title := "GAME OVER"
	if v.Outcome == game.Won {
		title = "YOU WIN"
	}
	pf := vp.Playfield()
	cx := pf.X + pf.W/2
	top := pf.Y + pf.H/4 - size/2
	r.centerText(s, title, cx, top, size)
	r.centerText(s, fmt.Sprintf("Score: %d", v.Score), cx, top+size+size/2, size/2)
}

// fontSize keeps text inside small playfields.
func (r *Renderer) fontSize(vp Viewport) int {
	return min(r.FontSize, vp.PlayfieldSide()/4)
}

func (r *Renderer) centerText(s Surface, text string, cx, y, size int) {
	w := s.MeasureText(text, size)
	s.DrawText(text, cx-w/2, y, size, r.Palette.Text)
}
