package ui

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Color struct {
	R, G, B uint8
}

var (
	White = Color{R: 255, G: 255, B: 255}
	Black = Color{R: 0, G: 0, B: 0}
	Blue  = Color{R: 0, G: 0, B: 255}
	Green = Color{R: 0, G: 200, B: 0}
	Red   = Color{R: 230, G: 41, B: 55}
)

// ParseColor reads a "#rrggbb" string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten blends c towards white by amount in [0,1], in Lab space so the hue
// is kept.
func (c Color) Lighten(amount float64) Color {
	base := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, amount).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Palette holds the colors the renderer paints with.
type Palette struct {
	Clear     Color
	Board     Color
	Playfield Color
	Snake     Color
	Head      Color
	Food      Color
	Text      Color
}

func DefaultPalette() Palette {
	return Palette{
		Clear:     White,
		Board:     Black,
		Playfield: Blue,
		Snake:     Green,
		Head:      Green.Lighten(0.3),
		Food:      Red,
		Text:      Black,
	}
}
