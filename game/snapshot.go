package game

import (
	"snake-astar/game/manager"
	"snake-astar/game/types"
)

// Snapshot is what renderers draw from. It shares no memory with the Game.
type Snapshot struct {
	UUID      string            `json:"uuid"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Box       int               `json:"box"`
	Snake     []types.Point     `json:"snake"`
	Apple     types.Point       `json:"apple"`
	Direction types.Direction   `json:"direction"`
	Stats     manager.GameStats `json:"stats"`
}

func (g *Game) Snapshot() Snapshot {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return Snapshot{
		UUID:      g.UUID,
		Width:     g.Grid.Width,
		Height:    g.Grid.Height,
		Box:       g.Grid.Box,
		Snake:     g.Snake.Cells(),
		Apple:     g.Apple,
		Direction: g.Direction,
		Stats:     g.stateMgr.GetStats(),
	}
}
