package manager

import (
	"snake-canvas/game/entity"
	"snake-canvas/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies moving the head of snake onto pos. When growing is
// false the tail is vacated on this tick, so pos may equal the current tail.
func (cm *CollisionManager) CheckCollision(pos types.Cell, snake *entity.Snake, growing bool) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if cm.isSelfCollision(pos, snake, growing) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.grid.Contains(pos)
}

func (cm *CollisionManager) isSelfCollision(pos types.Cell, snake *entity.Snake, growing bool) bool {
	body := snake.Body()
	if !growing {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is free for food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food types.Cell, hasFood bool) bool {
	return hasFood && pos == food
}
