package ai

import (
	"snake-astar/game/types"
)

type nodeState uint8

const (
	unseen nodeState = iota
	open
	closed
)

// node is one A* search node. Nodes live in an arena with one slot per grid
// cell; parent is the arena index of the predecessor, -1 for the start.
type node struct {
	cell   types.Point
	g      int // steps from the start
	h      int // Manhattan estimate to the goal
	f      int // g + h
	parent int
	state  nodeState
	stamp  uint32 // search that last touched this slot
}

// Pathfinder runs A* searches on a fixed grid. Its arena is reused between
// searches and reset wholesale when a new one begins, so a Pathfinder must
// not be shared between goroutines.
type Pathfinder struct {
	grid     types.Grid
	nodes    []node
	openList []int // arena indices in insertion order
	stamp    uint32
	expanded int
}

func NewPathfinder(grid types.Grid) *Pathfinder {
	return &Pathfinder{
		grid:  grid,
		nodes: make([]node, grid.Cells()),
	}
}

// Expanded reports how many nodes the last search moved to the closed set.
func (pf *Pathfinder) Expanded() int {
	return pf.expanded
}

// FindPath returns the cells of a shortest route from start to goal, both
// included, that never enters a cell for which isBlocked is true. The start
// cell itself is never tested. The second result is false when no route
// exists; that is an ordinary outcome, not an error.
//
// Among open nodes of equal f the one inserted first is expanded first, and
// neighbours are visited Left, Right, Up, Down, so results are deterministic.
func (pf *Pathfinder) FindPath(start, goal types.Point, isBlocked func(types.Point) bool) ([]types.Point, bool) {
	pf.reset()
	if !pf.grid.InBounds(start) {
		return nil, false
	}

	startIdx := pf.grid.Index(start)
	h := pf.grid.Manhattan(start, goal)
	pf.nodes[startIdx] = node{cell: start, g: 0, h: h, f: h, parent: -1, state: open, stamp: pf.stamp}
	pf.openList = append(pf.openList, startIdx)

	for len(pf.openList) > 0 {
		best := 0
		for i := 1; i < len(pf.openList); i++ {
			if pf.nodes[pf.openList[i]].f < pf.nodes[pf.openList[best]].f {
				best = i
			}
		}

		currentIdx := pf.openList[best]
		current := &pf.nodes[currentIdx]
		if current.cell == goal {
			return pf.reconstruct(currentIdx), true
		}

		pf.openList = append(pf.openList[:best], pf.openList[best+1:]...)
		current.state = closed
		pf.expanded++

		for _, next := range pf.grid.Neighbors(current.cell) {
			if !pf.grid.InBounds(next) || isBlocked(next) {
				continue
			}
			idx := pf.grid.Index(next)
			n := &pf.nodes[idx]
			if n.stamp != pf.stamp {
				*n = node{cell: next, parent: -1, state: unseen, stamp: pf.stamp}
			}
			if n.state == closed {
				continue
			}

			tentativeG := current.g + 1
			if n.state == unseen || tentativeG < n.g {
				n.g = tentativeG
				n.h = pf.grid.Manhattan(next, goal)
				n.f = n.g + n.h
				n.parent = currentIdx
				if n.state == unseen {
					n.state = open
					pf.openList = append(pf.openList, idx)
				}
			}
		}
	}

	return nil, false
}

func (pf *Pathfinder) reset() {
	pf.openList = pf.openList[:0]
	pf.expanded = 0
	pf.stamp++
	if pf.stamp == 0 {
		// stamp wrapped; old slots could look current
		for i := range pf.nodes {
			pf.nodes[i] = node{}
		}
		pf.stamp = 1
	}
}

func (pf *Pathfinder) reconstruct(endIdx int) []types.Point {
	path := make([]types.Point, 0, pf.nodes[endIdx].g+1)
	for idx := endIdx; idx != -1; idx = pf.nodes[idx].parent {
		path = append(path, pf.nodes[idx].cell)
	}
	for i := 0; i < len(path)/2; i++ {
		j := len(path) - 1 - i
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindPath runs a single search with a throwaway Pathfinder.
func FindPath(grid types.Grid, start, goal types.Point, isBlocked func(types.Point) bool) ([]types.Point, bool) {
	return NewPathfinder(grid).FindPath(start, goal, isBlocked)
}

// NextDirection reads the heading of the first step of path. It reports
// false when the path is missing or holds only the start cell.
func NextDirection(path []types.Point) (types.Direction, bool) {
	if len(path) < 2 {
		return types.NONE, false
	}
	return types.DirectionBetween(path[0], path[1])
}
