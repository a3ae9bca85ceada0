// Package session ties a game to the surface it is drawn on. A Session is the
// only owner of its Game and Viewport; hosts call its methods from a single
// goroutine.
package session

import (
	"fmt"
	"io"
	"log"
	"time"

	"snake-canvas/game"
	"snake-canvas/game/types"
	"snake-canvas/ui"

	"golang.org/x/exp/rand"
)

type Session struct {
	cfg      game.Config
	game     *game.Game
	viewport ui.Viewport
	renderer *ui.Renderer
	surface  ui.Surface
	stats    *Stats
	logger   *log.Logger
	rng      *rand.Rand
	now      func() time.Time

	startedAt time.Time
	recorded  bool
}

type Option func(*Session)

// WithLogger sets where game events are logged. The default discards them.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func WithRenderer(r *ui.Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithSeed makes food placement reproducible across runs and restarts.
func WithSeed(seed uint64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithClock replaces time.Now for game durations.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New starts a game on a surface of width x height pixels.
func New(cfg game.Config, surface ui.Surface, width, height int, opts ...Option) (*Session, error) {
	s := &Session{
		cfg:     cfg,
		surface: surface,
		stats:   NewStats(),
		logger:  log.New(io.Discard, "", 0),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = ui.NewRenderer(ui.DefaultPalette())
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	g, err := game.New(cfg, s.rng)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	vp, err := ui.NewViewport(width, height, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("new viewport: %w", err)
	}
	s.viewport = vp
	s.start(g)
	return s, nil
}

func (s *Session) start(g *game.Game) {
	s.game = g
	s.startedAt = s.now()
	s.recorded = false
	food, _ := g.Food()
	s.logger.Printf("game %s started: %dx%d grid, head %v heading %v, food %v",
		g.ID, g.Width(), g.Height(), g.Head(), g.Heading(), food)
}

func (s *Session) ChangeDirection(d types.Direction) {
	s.game.ChangeDirection(d)
}

// Update advances the game one tick and records it once it ends.
func (s *Session) Update() {
	s.game.Update()
	if s.game.Outcome().Terminal() && !s.recorded {
		s.finish()
	}
}

func (s *Session) finish() {
	g := s.game
	end := s.now()
	s.recorded = true
	s.stats.AddGame(g.ID, g.Outcome().String(), g.Score(), s.startedAt, end)
	s.logger.Printf("game %s over: %v (collision %v), score %d, length %d, %s",
		g.ID, g.Outcome(), g.Collision(), g.Score(), g.Len(), end.Sub(s.startedAt).Round(time.Millisecond))
	s.logger.Printf("%d games played, average score %.2f, best %d",
		s.stats.GetGamesPlayed(), s.stats.GetAverageScore(), s.stats.GetMaxScore())
}

// Restart replaces the game with a fresh one on the same grid. A game still
// in progress is dropped without being recorded.
func (s *Session) Restart() error {
	g, err := game.New(s.cfg, s.rng)
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	if !s.recorded {
		s.logger.Printf("game %s abandoned at score %d", s.game.ID, s.game.Score())
	}
	s.start(g)
	return nil
}

// Resize remaps the grid onto a surface of the new size. On error the
// previous mapping is kept.
func (s *Session) Resize(width, height int) error {
	vp, err := s.viewport.Resize(width, height)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	s.viewport = vp
	return nil
}

func (s *Session) Draw() {
	s.renderer.Draw(s.surface, s.game.View(), s.viewport)
}

func (s *Session) View() game.View {
	return s.game.View()
}

func (s *Session) Viewport() ui.Viewport {
	return s.viewport
}

func (s *Session) Stats() *Stats {
	return s.stats
}
