package game

import (
	"fmt"
	"time"

	"snake-canvas/game/entity"
	"snake-canvas/game/manager"
	"snake-canvas/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Outcome is the lifecycle state of a game.
type Outcome int

const (
	Alive Outcome = iota
	Dead
	// Won means the snake filled the grid and no cell is left for food.
	Won
)

func (o Outcome) String() string {
	switch o {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Terminal reports whether no further moves are possible.
func (o Outcome) Terminal() bool {
	return o != Alive
}

// Game is the snake state machine. It is mutated only by ChangeDirection and
// Update and is not safe for concurrent use; callers serialize access.
type Game struct {
	ID string

	grid      types.Grid
	snake     *entity.Snake
	heading   types.Direction
	pending   types.Direction
	food      types.Cell
	hasFood   bool
	outcome   Outcome
	collision manager.CollisionType

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// New creates a game with the snake centered on the grid, heading away from
// the nearest wall that leaves room for the rest of the body. A nil rng is
// seeded from the clock.
func New(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := types.Grid{Width: cfg.Width, Height: cfg.Height}
	body, heading, err := startPosition(grid, cfg.StartLength)
	if err != nil {
		return nil, err
	}
	return newGame(grid, body, heading, rng), nil
}

// NewWithState creates a game from an explicit body (head first) and heading.
// The body must lie inside the grid, be contiguous and free of duplicates.
func NewWithState(cfg Config, body []types.Cell, heading types.Direction, rng *rand.Rand) (*Game, error) {
	cfg.StartLength = max(len(body), 1)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidStart)
	}
	if !heading.Valid() {
		return nil, fmt.Errorf("%w: heading %v", ErrInvalidStart, heading)
	}
	grid := types.Grid{Width: cfg.Width, Height: cfg.Height}
	seen := make(map[types.Cell]bool, len(body))
	for i, c := range body {
		if !grid.Contains(c) {
			return nil, fmt.Errorf("%w: cell %v outside %dx%d grid", ErrInvalidStart, c, grid.Width, grid.Height)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: cell %v repeated", ErrInvalidStart, c)
		}
		seen[c] = true
		if i > 0 && c.Manhattan(body[i-1]) != 1 {
			return nil, fmt.Errorf("%w: cells %v and %v are not adjacent", ErrInvalidStart, body[i-1], c)
		}
	}
	return newGame(grid, body, heading, rng), nil
}

func newGame(grid types.Grid, body []types.Cell, heading types.Direction, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		ID:           uuid.NewString(),
		grid:         grid,
		snake:        entity.NewSnake(body),
		heading:      heading,
		pending:      heading,
		outcome:      Alive,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(),
	}
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
	return g
}

// startPosition walks the walls from nearest to farthest and heads away from
// the first one that leaves room to move and room for the trailing body.
func startPosition(grid types.Grid, length int) ([]types.Cell, types.Direction, error) {
	center := types.Cell{X: grid.Width / 2, Y: grid.Height / 2}
	room := map[types.Direction]int{
		types.Left:  center.X,
		types.Right: grid.Width - 1 - center.X,
		types.Up:    center.Y,
		types.Down:  grid.Height - 1 - center.Y,
	}
	walls := []types.Direction{types.Left, types.Right, types.Up, types.Down}
	for i := 1; i < len(walls); i++ {
		for j := i; j > 0 && room[walls[j]] < room[walls[j-1]]; j-- {
			walls[j], walls[j-1] = walls[j-1], walls[j]
		}
	}
	for _, wall := range walls {
		heading := wall.Opposite()
		if room[heading] < 1 || room[wall] < length-1 {
			continue
		}
		body := make([]types.Cell, length)
		body[0] = center
		for i := 1; i < length; i++ {
			body[i] = body[i-1].Move(wall)
		}
		return body, heading, nil
	}
	return nil, 0, fmt.Errorf("%w: no room for a snake of length %d on a %dx%d grid", ErrInvalidStart, length, grid.Width, grid.Height)
}

// ChangeDirection queues d for the next Update. Reversals onto the current
// heading are ignored, as are calls once the game is over.
func (g *Game) ChangeDirection(d types.Direction) {
	if g.outcome.Terminal() || !d.Valid() {
		return
	}
	if d == g.heading.Opposite() {
		return
	}
	g.pending = d
}

// Update advances the game by one tick.
func (g *Game) Update() {
	if g.outcome.Terminal() {
		return
	}

	g.heading = g.pending
	newHead := g.snake.GetHead().Move(g.heading)
	growing := g.collisionMgr.IsFoodCollision(newHead, g.food, g.hasFood)

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake, growing); collision != manager.NoCollision {
		g.outcome = Dead
		g.collision = collision
		return
	}

	g.snake.Move(newHead)
	if !growing {
		g.snake.RemoveTail()
		return
	}

	g.stateMgr.AddPoint()
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
	if !g.hasFood {
		g.outcome = Won
	}
}

func (g *Game) Body() []types.Cell {
	return g.snake.Body()
}

func (g *Game) Head() types.Cell {
	return g.snake.GetHead()
}

func (g *Game) Len() int {
	return g.snake.Len()
}

func (g *Game) Heading() types.Direction {
	return g.heading
}

// Food returns the food cell. The second result is false once the grid is
// full.
func (g *Game) Food() (types.Cell, bool) {
	return g.food, g.hasFood
}

func (g *Game) Width() int {
	return g.grid.Width
}

func (g *Game) Height() int {
	return g.grid.Height
}

func (g *Game) Alive() bool {
	return g.outcome == Alive
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Collision reports what killed the snake, NoCollision while alive or won.
func (g *Game) Collision() manager.CollisionType {
	return g.collision
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

// View is a self-contained snapshot of a game for renderers and input
// sources. It shares no memory with the game.
type View struct {
	ID        string
	Width     int
	Height    int
	Body      []types.Cell
	Heading   types.Direction
	Food      types.Cell
	HasFood   bool
	Outcome   Outcome
	Collision manager.CollisionType
	Score     int
}

func (g *Game) View() View {
	return View{
		ID:        g.ID,
		Width:     g.grid.Width,
		Height:    g.grid.Height,
		Body:      g.snake.Body(),
		Heading:   g.heading,
		Food:      g.food,
		HasFood:   g.hasFood,
		Outcome:   g.outcome,
		Collision: g.collision,
		Score:     g.stateMgr.GetScore(),
	}
}
