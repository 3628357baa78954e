package manager

import (
	"snake-astar/game/types"
)

// CollisionManager answers occupancy questions about the snake body.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsOccupied reports whether pos is any cell of body. The tail counts even
// though it may move away on the next step.
func (cm *CollisionManager) IsOccupied(pos types.Point, body []types.Point) bool {
	for _, p := range body {
		if p == pos {
			return true
		}
	}
	return false
}

// Blocker returns the blocking predicate for a search against body.
// body is read at call time, so it must not change while the search runs.
func (cm *CollisionManager) Blocker(body []types.Point) func(types.Point) bool {
	return func(pos types.Point) bool {
		return cm.IsOccupied(pos, body)
	}
}

// IsSelfCollision reports whether a freshly computed head lands on the body
// it is about to lead. The last cell is skipped unless the snake grows,
// since it is vacated in the same step.
func (cm *CollisionManager) IsSelfCollision(newHead types.Point, body []types.Point, growing bool) bool {
	n := len(body)
	if !growing && n > 0 {
		n--
	}
	return cm.IsOccupied(newHead, body[:n])
}

// IsWallCollision reports whether pos is off the canvas, i.e. needs wrapping.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// IsFoodCollision checks if a position collides with the apple
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
