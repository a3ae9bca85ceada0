package main

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"snake-canvas/autopilot"
	"snake-canvas/game"
	"snake-canvas/game/types"
	"snake-canvas/ui"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestParseFlagsDefaults(t *testing.T) {
	o, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if o.cfg != game.DefaultConfig() {
		t.Errorf("cfg = %+v, want %+v", o.cfg, game.DefaultConfig())
	}
	if o.tick != 100*time.Millisecond || o.seed != 0 || o.terminal || o.autopilot {
		t.Errorf("options = %+v", o)
	}
	if o.palette != ui.DefaultPalette() {
		t.Errorf("palette = %+v, want the default", o.palette)
	}
}

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{
		"-cols", "30", "-rows", "12", "-start-length", "4",
		"-tick", "50ms", "-seed", "9", "-term", "-autopilot",
		"-snake-color", "#ffff00",
	}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	want := game.Config{Width: 30, Height: 12, StartLength: 4}
	if o.cfg != want {
		t.Errorf("cfg = %+v, want %+v", o.cfg, want)
	}
	if o.tick != 50*time.Millisecond || o.seed != 9 || !o.terminal || !o.autopilot {
		t.Errorf("options = %+v", o)
	}
	if o.palette.Snake != (ui.Color{R: 255, G: 255}) {
		t.Errorf("snake color = %+v", o.palette.Snake)
	}
	if o.palette.Head == o.palette.Snake {
		t.Error("head color not derived from the snake color")
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
		msg  string
	}{
		{"empty grid", []string{"-cols", "0"}, game.ErrInvalidGrid, ""},
		{"snake fills grid", []string{"-cols", "2", "-rows", "2", "-start-length", "4"}, game.ErrInvalidStart, ""},
		{"zero tick", []string{"-tick", "0s"}, nil, "tick"},
		{"bad color", []string{"-food-color", "red"}, nil, "red"},
		{"bad window", []string{"-width", "0"}, nil, "window"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, io.Discard)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error = %v, want it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestWindowDirection(t *testing.T) {
	tests := []struct {
		key  int32
		want types.Direction
	}{
		{rl.KeyW, types.Up},
		{rl.KeyUp, types.Up},
		{rl.KeyA, types.Left},
		{rl.KeyS, types.Down},
		{rl.KeyRight, types.Right},
	}
	for _, tt := range tests {
		if got, ok := windowDirection(tt.key); !ok || got != tt.want {
			t.Errorf("windowDirection(%d) = %v, %v; want %v", tt.key, got, ok, tt.want)
		}
	}
	if _, ok := windowDirection(rl.KeyX); ok {
		t.Error("X should not map to a direction")
	}
}

func TestTerminalDirection(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want types.Direction
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), types.Up, true},
		{tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), types.Left, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), types.Down, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), types.Right, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		got, ok := terminalDirection(tt.ev)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("terminalDirection(%v) = %v, %v; want %v, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}

	if !isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) || !isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("escape and q should quit")
	}
	if !isRestart(tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift)) {
		t.Error("R should restart")
	}
}

func TestTerminalLoopQuits(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(60, 30)

	o, err := parseFlags([]string{"-tick", "1h", "-seed", "3"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	result := make(chan error, 1)
	go func() { result <- terminalLoop(screen, o, autopilot.New()) }()

	select {
	case err := <-result:
		if err != nil {
			t.Errorf("terminalLoop() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("terminalLoop did not return after q")
	}

	// the hint sits in the middle row of the 30x30 playfield; food may
	// cover at most one of its letters
	cells, width, _ := screen.GetContents()
	row := 15
	var line strings.Builder
	for x := 0; x < width; x++ {
		line.WriteString(string(cells[row*width+x].Runes))
	}
	letters := 0
	for _, r := range "WASD" {
		if strings.ContainsRune(line.String(), r) {
			letters++
		}
	}
	if letters < 3 {
		t.Errorf("row %d = %q, want the hint", row, line.String())
	}
}
