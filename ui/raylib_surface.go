package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibSurface draws into the current raylib window. Calls must happen
// between rl.BeginDrawing and rl.EndDrawing on the thread that owns the
// window.
type RaylibSurface struct{}

func (RaylibSurface) FillRect(r Rect, c Color) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), toRaylib(c))
}

func (RaylibSurface) DrawText(text string, x, y, size int, c Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), toRaylib(c))
}

func (RaylibSurface) MeasureText(text string, size int) int {
	return int(rl.MeasureText(text, int32(size)))
}

// Size reports the current window size in pixels.
func (RaylibSurface) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func toRaylib(c Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
