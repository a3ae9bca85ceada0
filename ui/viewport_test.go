package ui

import (
	"errors"
	"testing"

	"snake-canvas/game/types"
)

func TestViewportLandscape(t *testing.T) {
	vp, err := NewViewport(800, 600, 20, 20)
	if err != nil {
		t.Fatal(err)
	}
	if vp.CellSize() != 30 {
		t.Errorf("CellSize() = %d, want 30", vp.CellSize())
	}
	if vp.PlayfieldSide() != 600 {
		t.Errorf("PlayfieldSide() = %d, want 600", vp.PlayfieldSide())
	}
	if vp.OffsetX() != 100 || vp.OffsetY() != 0 {
		t.Errorf("offset = (%d,%d), want (100,0)", vp.OffsetX(), vp.OffsetY())
	}
	if got := vp.CellRect(types.Cell{X: 2, Y: 3}); got != (Rect{X: 160, Y: 90, W: 30, H: 30}) {
		t.Errorf("CellRect(2,3) = %+v", got)
	}
	if got := vp.Playfield(); got != (Rect{X: 100, Y: 0, W: 600, H: 600}) {
		t.Errorf("Playfield() = %+v", got)
	}
}

func TestViewportSizes(t *testing.T) {
	tests := []struct {
		name           string
		pw, ph, lw, lh int
		cell, side     int
		offX, offY     int
	}{
		{"portrait", 600, 800, 20, 20, 30, 600, 0, 100},
		{"square", 400, 400, 10, 10, 40, 400, 0, 0},
		{"wide grid", 800, 600, 40, 10, 20, 600, 100, 0},
		{"odd parity", 801, 600, 20, 20, 30, 600, 100, 0},
		{"too small", 10, 10, 20, 20, 0, 10, 0, 0},
		{"empty surface", 0, 0, 20, 20, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp, err := NewViewport(tt.pw, tt.ph, tt.lw, tt.lh)
			if err != nil {
				t.Fatal(err)
			}
			if vp.CellSize() != tt.cell || vp.PlayfieldSide() != tt.side ||
				vp.OffsetX() != tt.offX || vp.OffsetY() != tt.offY {
				t.Errorf("got cell=%d side=%d off=(%d,%d), want cell=%d side=%d off=(%d,%d)",
					vp.CellSize(), vp.PlayfieldSide(), vp.OffsetX(), vp.OffsetY(),
					tt.cell, tt.side, tt.offX, tt.offY)
			}
		})
	}
}

func TestViewportDegenerateCells(t *testing.T) {
	vp, err := NewViewport(10, 10, 20, 20)
	if err != nil {
		t.Fatal(err)
	}
	r := vp.CellRect(types.Cell{X: 5, Y: 5})
	if r.W != 0 || r.H != 0 {
		t.Errorf("expected zero-size rect, got %+v", r)
	}
}

func TestViewportErrors(t *testing.T) {
	if _, err := NewViewport(800, 600, 0, 20); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("zero width error = %v", err)
	}
	if _, err := NewViewport(800, 600, 20, -2); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("negative height error = %v", err)
	}
	if _, err := NewViewport(-1, 600, 20, 20); !errors.Is(err, ErrInvalidSurface) {
		t.Errorf("negative surface error = %v", err)
	}
}

func TestViewportResize(t *testing.T) {
	vp, err := NewViewport(800, 600, 20, 20)
	if err != nil {
		t.Fatal(err)
	}
	resized, err := vp.Resize(1000, 1200)
	if err != nil {
		t.Fatal(err)
	}
	if resized.CellSize() != 50 || resized.OffsetX() != 0 || resized.OffsetY() != 100 {
		t.Errorf("resized cell=%d off=(%d,%d)", resized.CellSize(), resized.OffsetX(), resized.OffsetY())
	}
	if lw, lh := resized.LogicalSize(); lw != 20 || lh != 20 {
		t.Errorf("logical size changed to %dx%d", lw, lh)
	}
	if vp.CellSize() != 30 {
		t.Error("Resize mutated the original viewport")
	}
}

// TestCellRectInjective checks that distinct cells never share a pixel.
func TestCellRectInjective(t *testing.T) {
	for _, size := range [][2]int{{800, 600}, {333, 517}, {97, 45}, {1920, 1080}} {
		vp, err := NewViewport(size[0], size[1], 12, 9)
		if err != nil {
			t.Fatal(err)
		}
		if vp.CellSize() == 0 {
			continue
		}
		var cells []types.Cell
		for y := 0; y < 9; y++ {
			for x := 0; x < 12; x++ {
				cells = append(cells, types.Cell{X: x, Y: y})
			}
		}
		for i := range cells {
			a := vp.CellRect(cells[i])
			for j := i + 1; j < len(cells); j++ {
				if a.Overlaps(vp.CellRect(cells[j])) {
					t.Fatalf("%v: cells %v and %v overlap", size, cells[i], cells[j])
				}
			}
		}
	}
}

func TestSquareGridFitsPlayfield(t *testing.T) {
	for _, size := range [][2]int{{800, 600}, {600, 800}, {333, 517}, {1920, 1080}} {
		vp, err := NewViewport(size[0], size[1], 16, 16)
		if err != nil {
			t.Fatal(err)
		}
		pf := vp.Playfield()
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				r := vp.CellRect(types.Cell{X: x, Y: y})
				if r.X < pf.X || r.Y < pf.Y || r.X+r.W > pf.X+pf.W || r.Y+r.H > pf.Y+pf.H {
					t.Fatalf("%v: cell (%d,%d) at %+v outside playfield %+v", size, x, y, r, pf)
				}
			}
		}
	}
}
