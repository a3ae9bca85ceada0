package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"snake-canvas/autopilot"
	"snake-canvas/game"
	"snake-canvas/session"
	"snake-canvas/ui"
)

type options struct {
	cfg       game.Config
	tick      time.Duration
	seed      uint64
	terminal  bool
	autopilot bool
	debug     bool
	width     int
	height    int
	palette   ui.Palette
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("snake-canvas", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := game.DefaultConfig()
	pal := ui.DefaultPalette()

	var o options
	fs.IntVar(&o.cfg.Width, "cols", def.Width, "Grid width in cells")
	fs.IntVar(&o.cfg.Height, "rows", def.Height, "Grid height in cells")
	fs.IntVar(&o.cfg.StartLength, "start-length", def.StartLength, "Initial snake length")
	fs.DurationVar(&o.tick, "tick", 100*time.Millisecond, "Time between game steps")
	fs.Uint64Var(&o.seed, "seed", 0, "Food placement seed (0 = clock)")
	fs.BoolVar(&o.terminal, "term", false, "Play in the terminal instead of a window")
	fs.BoolVar(&o.autopilot, "autopilot", false, "Let the computer steer")
	fs.BoolVar(&o.debug, "debug", false, "Write logs to logs/"+logFileName)
	fs.IntVar(&o.width, "width", 800, "Initial window width in pixels")
	fs.IntVar(&o.height, "height", 600, "Initial window height in pixels")

	board := fs.String("board-color", pal.Board.Hex(), "Board color")
	playfield := fs.String("playfield-color", pal.Playfield.Hex(), "Playfield color")
	snake := fs.String("snake-color", pal.Snake.Hex(), "Snake color")
	food := fs.String("food-color", pal.Food.Hex(), "Food color")
	text := fs.String("text-color", pal.Text.Hex(), "Text color")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if err := o.cfg.Validate(); err != nil {
		return options{}, err
	}
	if o.tick <= 0 {
		return options{}, fmt.Errorf("tick must be positive, got %v", o.tick)
	}
	if o.width <= 0 || o.height <= 0 {
		return options{}, fmt.Errorf("window size must be positive, got %dx%d", o.width, o.height)
	}

	o.palette = pal
	for _, c := range []struct {
		value string
		dst   *ui.Color
	}{
		{*board, &o.palette.Board},
		{*playfield, &o.palette.Playfield},
		{*snake, &o.palette.Snake},
		{*food, &o.palette.Food},
		{*text, &o.palette.Text},
	} {
		color, err := ui.ParseColor(c.value)
		if err != nil {
			return options{}, err
		}
		*c.dst = color
	}
	o.palette.Head = o.palette.Snake.Lighten(0.3)
	return o, nil
}

// sessionOptions builds the options shared by both hosts.
func (o options) sessionOptions(r *ui.Renderer) []session.Option {
	opts := []session.Option{
		session.WithLogger(log.Default()),
		session.WithRenderer(r),
	}
	if o.seed != 0 {
		opts = append(opts, session.WithSeed(o.seed))
	}
	return opts
}

// steer hands control to the pilot, if any, right before a tick.
func steer(s *session.Session, pilot *autopilot.Pilot) {
	if pilot != nil {
		s.ChangeDirection(pilot.Next(s.View()))
	}
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "snake-canvas: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(o.debug)
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting: grid %dx%d, tick %v, terminal %v, autopilot %v",
		o.cfg.Width, o.cfg.Height, o.tick, o.terminal, o.autopilot)

	var pilot *autopilot.Pilot
	if o.autopilot {
		pilot = autopilot.New()
	}

	if o.terminal {
		err = runTerminal(o, pilot)
	} else {
		err = runWindow(o, pilot)
	}
	if err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "snake-canvas: %v\n", err)
		os.Exit(1)
	}
}
