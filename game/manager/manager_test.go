package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-astar/game/types"
)

func TestIsOccupiedIncludesTail(t *testing.T) {
	cm := NewCollisionManager(types.NewGrid(400, 400, 20))
	body := []types.Point{{X: 40, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 0}}

	assert.True(t, cm.IsOccupied(types.Point{X: 40, Y: 0}, body))
	assert.True(t, cm.IsOccupied(types.Point{X: 0, Y: 0}, body), "tail must block")
	assert.False(t, cm.IsOccupied(types.Point{X: 60, Y: 0}, body))

	blocked := cm.Blocker(body)
	assert.True(t, blocked(types.Point{X: 20, Y: 0}))
	assert.False(t, blocked(types.Point{X: 20, Y: 20}))
}

func TestIsSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewGrid(400, 400, 20))
	body := []types.Point{{X: 20, Y: 20}, {X: 20, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 20}}

	// moving onto the tail is safe unless the snake grows this step
	assert.False(t, cm.IsSelfCollision(types.Point{X: 0, Y: 20}, body, false))
	assert.True(t, cm.IsSelfCollision(types.Point{X: 0, Y: 20}, body, true))
	assert.True(t, cm.IsSelfCollision(types.Point{X: 20, Y: 0}, body, false))
	assert.False(t, cm.IsSelfCollision(types.Point{X: 40, Y: 20}, body, false))
}

func TestWallAndFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewGrid(100, 100, 20))
	assert.True(t, cm.IsWallCollision(types.Point{X: 100, Y: 0}))
	assert.False(t, cm.IsWallCollision(types.Point{X: 80, Y: 80}))
	assert.True(t, cm.IsFoodCollision(types.Point{X: 20, Y: 20}, types.Point{X: 20, Y: 20}))
}

func TestGenerateFoodStaysOnGridAndOffSnake(t *testing.T) {
	grid := types.NewGrid(100, 100, 20)
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, 99)

	// snake covers every cell but one
	var body []types.Point
	free := types.Point{X: 80, Y: 80}
	for col := 0; col < grid.Cols(); col++ {
		for row := 0; row < grid.Rows(); row++ {
			if p := grid.CellAt(col, row); p != free {
				body = append(body, p)
			}
		}
	}

	for i := 0; i < 20; i++ {
		assert.Equal(t, free, fm.GenerateFood(body))
	}
}

func TestGenerateFoodUniformCells(t *testing.T) {
	grid := types.NewGrid(400, 400, 20)
	fm := NewFoodManager(grid, NewCollisionManager(grid), 1)

	seen := make(map[types.Point]bool)
	for i := 0; i < 2000; i++ {
		p := fm.GenerateFood(nil)
		require.True(t, grid.InBounds(p))
		require.Zero(t, p.X%grid.Box)
		require.Zero(t, p.Y%grid.Box)
		seen[p] = true
	}
	assert.Greater(t, len(seen), grid.Cells()/2)
}

func TestGenerateFoodFullBoardReturns(t *testing.T) {
	grid := types.NewGrid(40, 40, 20)
	fm := NewFoodManager(grid, NewCollisionManager(grid), 3)
	body := []types.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}}

	assert.True(t, grid.InBounds(fm.GenerateFood(body)))
}

func TestGenerateFoodSeeded(t *testing.T) {
	grid := types.NewGrid(400, 400, 20)
	a := NewFoodManager(grid, NewCollisionManager(grid), 5)
	b := NewFoodManager(grid, NewCollisionManager(grid), 5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.GenerateFood(nil), b.GenerateFood(nil))
	}
}

func TestStateManagerCounters(t *testing.T) {
	sm := NewStateManager(1)
	sm.RecordTick()
	sm.RecordTick()
	sm.RecordMove(MoveRecord{PathLength: 2, Expanded: 1, Ate: true, Length: 2})
	sm.RecordMove(MoveRecord{PathLength: 4, Expanded: 5, Length: 2})
	sm.RecordMove(MoveRecord{Fallback: true, SelfCollision: true, Length: 2})

	stats := sm.GetStats()
	assert.Equal(t, 2, stats.Ticks)
	assert.Equal(t, 3, stats.Moves)
	assert.Equal(t, 1, stats.ApplesEaten)
	assert.Equal(t, 1, stats.FallbackMoves)
	assert.Equal(t, 1, stats.SelfCollisions)
	assert.Equal(t, 2, stats.MaxLength)
	assert.Equal(t, 0, stats.LastExpanded)
	assert.InDelta(t, 2.0, stats.AvgPathLength, 1e-9)
}
