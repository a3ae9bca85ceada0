package main

import (
	"fmt"
	"log"
	"time"
	"unicode"

	"snake-canvas/autopilot"
	"snake-canvas/game/types"
	"snake-canvas/session"
	"snake-canvas/ui"

	"github.com/gdamore/tcell/v2"
)

// terminalDirection maps arrow keys and WASD, either case, to a direction.
func terminalDirection(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return types.Up, true
		case 's':
			return types.Down, true
		case 'a':
			return types.Left, true
		case 'd':
			return types.Right, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return unicode.ToLower(ev.Rune()) == 'q'
	}
	return false
}

func isRestart(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == 'r'
}

func runTerminal(o options, pilot *autopilot.Pilot) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// restore the terminal even if the loop panics
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			panic(r)
		}
	}()
	screen.HideCursor()

	return terminalLoop(screen, o, pilot)
}

// terminalLoop drives a session on an initialized screen until the player
// quits. Events are read on their own goroutine and handed over on a channel
// so the session is only touched here.
func terminalLoop(screen tcell.Screen, o options, pilot *autopilot.Pilot) error {
	surface := ui.NewTerminalSurface(screen)
	renderer := ui.NewRenderer(o.palette)
	renderer.FontSize = 1

	w, h := surface.Size()
	s, err := session.New(o.cfg, surface, w, h, o.sessionOptions(renderer)...)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(o.tick)
	defer ticker.Stop()

	draw := func() {
		screen.Clear()
		s.Draw()
		screen.Show()
	}
	draw()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				if err := s.Resize(surface.Size()); err != nil {
					log.Printf("resize ignored: %v", err)
				}
				screen.Sync()
				draw()
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if isRestart(ev) {
					if err := s.Restart(); err != nil {
						return err
					}
					draw()
					continue
				}
				if d, ok := terminalDirection(ev); ok {
					s.ChangeDirection(d)
				}
			}
		case <-ticker.C:
			steer(s, pilot)
			s.Update()
			draw()
		}
	}
}
