package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"snake-astar/game/types"
)

// FoodManager places the apple.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

// NewFoodManager seeds its own generator; seed 0 means time based.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed int64) *FoodManager {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(uint64(seed))),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood draws column and row independently and uniformly. Draws that
// land on the snake are retried, unless the snake already covers every cell.
func (fm *FoodManager) GenerateFood(body []types.Point) types.Point {
	full := len(body) >= fm.grid.Cells()
	for {
		food := fm.grid.CellAt(fm.rng.Intn(fm.grid.Cols()), fm.rng.Intn(fm.grid.Rows()))
		if full || !fm.collisionMgr.IsOccupied(food, body) {
			return food
		}
	}
}
