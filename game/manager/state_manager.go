package manager

import (
	"sync"
)

// GameStats is a point in time copy of the run counters.
type GameStats struct {
	Ticks          int     `json:"ticks"`
	Moves          int     `json:"moves"`
	ApplesEaten    int     `json:"applesEaten"`
	FallbackMoves  int     `json:"fallbackMoves"`
	SelfCollisions int     `json:"selfCollisions"`
	Length         int     `json:"length"`
	MaxLength      int     `json:"maxLength"`
	AvgPathLength  float64 `json:"avgPathLength"`
	LastExpanded   int     `json:"lastExpanded"`
}

// StateManager keeps the counters of the current run in memory. The driver
// writes and renderers read, possibly from another goroutine.
type StateManager struct {
	mutex         sync.RWMutex
	stats         GameStats
	pathSteps     int
	pathsObserved int
}

func NewStateManager(length int) *StateManager {
	return &StateManager{
		stats: GameStats{Length: length, MaxLength: length},
	}
}

// RecordTick counts a driver frame, whether or not the snake moved.
func (sm *StateManager) RecordTick() {
	sm.mutex.Lock()
	sm.stats.Ticks++
	sm.mutex.Unlock()
}

// MoveRecord describes one movement step.
type MoveRecord struct {
	PathLength    int // cells in the found path, 0 when none
	Expanded      int
	Fallback      bool
	Ate           bool
	SelfCollision bool
	Length        int
}

func (sm *StateManager) RecordMove(m MoveRecord) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.stats.Moves++
	sm.stats.LastExpanded = m.Expanded
	sm.stats.Length = m.Length
	if m.Length > sm.stats.MaxLength {
		sm.stats.MaxLength = m.Length
	}
	if m.Fallback {
		sm.stats.FallbackMoves++
	} else {
		sm.pathSteps += m.PathLength - 1
		sm.pathsObserved++
		sm.stats.AvgPathLength = float64(sm.pathSteps) / float64(sm.pathsObserved)
	}
	if m.Ate {
		sm.stats.ApplesEaten++
	}
	if m.SelfCollision {
		sm.stats.SelfCollisions++
	}
}

func (sm *StateManager) GetStats() GameStats {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.stats
}
