package types

import "fmt"

// Direction represents a cardinal heading
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction into a unit displacement (in cells)
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "UP"
	case RIGHT:
		return "RIGHT"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	default:
		return "NONE"
	}
}

// MarshalText lets snapshots carry directions as their names.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "UP":
		*d = UP
	case "RIGHT":
		*d = RIGHT
	case "DOWN":
		*d = DOWN
	case "LEFT":
		*d = LEFT
	case "NONE":
		*d = NONE
	default:
		return fmt.Errorf("unknown direction %q", b)
	}
	return nil
}

// Step moves p one cell in direction d, without wrapping.
func (g Grid) Step(p Point, d Direction) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X*g.Box, Y: p.Y + v.Y*g.Box}
}

// DirectionBetween reads the heading of a single step from one cell to the next.
// Horizontal deltas are checked before vertical ones; a zero delta reports false.
func DirectionBetween(from, to Point) (Direction, bool) {
	switch {
	case to.X < from.X:
		return LEFT, true
	case to.X > from.X:
		return RIGHT, true
	case to.Y < from.Y:
		return UP, true
	case to.Y > from.Y:
		return DOWN, true
	default:
		return NONE, false
	}
}
