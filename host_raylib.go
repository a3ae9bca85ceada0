package main

import (
	"fmt"
	"log"
	"time"

	"snake-canvas/autopilot"
	"snake-canvas/game/types"
	"snake-canvas/session"
	"snake-canvas/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type keyBinding struct {
	key int32
	dir types.Direction
}

// windowKeys is checked in order each frame; a later key pressed in the same
// frame wins.
var windowKeys = []keyBinding{
	{rl.KeyW, types.Up},
	{rl.KeyUp, types.Up},
	{rl.KeyS, types.Down},
	{rl.KeyDown, types.Down},
	{rl.KeyA, types.Left},
	{rl.KeyLeft, types.Left},
	{rl.KeyD, types.Right},
	{rl.KeyRight, types.Right},
}

// windowDirection maps a raylib key code to a direction.
func windowDirection(key int32) (types.Direction, bool) {
	for _, b := range windowKeys {
		if b.key == key {
			return b.dir, true
		}
	}
	return 0, false
}

func runWindow(o options, pilot *autopilot.Pilot) error {
	rl.InitWindow(int32(o.width), int32(o.height), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	surface := ui.RaylibSurface{}
	w, h := surface.Size()
	s, err := session.New(o.cfg, surface, w, h, o.sessionOptions(ui.NewRenderer(o.palette))...)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	lastUpdate := time.Now()
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyR) {
			if err := s.Restart(); err != nil {
				return err
			}
			lastUpdate = time.Now()
		}

		if rl.IsWindowResized() {
			if err := s.Resize(surface.Size()); err != nil {
				log.Printf("resize ignored: %v", err)
			}
		}

		for _, b := range windowKeys {
			if rl.IsKeyPressed(b.key) {
				s.ChangeDirection(b.dir)
			}
		}

		if time.Since(lastUpdate) >= o.tick {
			steer(s, pilot)
			s.Update()
			lastUpdate = time.Now()
		}

		rl.BeginDrawing()
		s.Draw()
		rl.EndDrawing()
	}
	return nil
}
