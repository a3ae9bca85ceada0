package manager

import (
	"snake-canvas/game/entity"
	"snake-canvas/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a cell uniformly among the cells the snake does not
// occupy. It returns false when the snake fills the grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Cell, bool) {
	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Cell{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Cell {
	free := make([]types.Cell, 0, max(fm.grid.Area()-snake.Len(), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			c := types.Cell{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(c, snake) {
				free = append(free, c)
			}
		}
	}
	return free
}
