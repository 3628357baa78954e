package types

import (
	"errors"
	"fmt"
)

// Point is one grid-aligned cell, addressed in pixels.
// Both coordinates are multiples of the grid's cell size.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid represents the playfield: a Width x Height canvas cut into Box sized cells
type Grid struct {
	Width  int
	Height int
	Box    int
}

// NewGrid builds a grid and panics on a malformed shape.
func NewGrid(width, height, box int) Grid {
	if err := validateShape(width, height, box); err != nil {
		panic(err)
	}
	return Grid{Width: width, Height: height, Box: box}
}

// InBounds reports whether p lies on the canvas.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Neighbors returns the four cells one step away from p, in the order
// Left, Right, Up, Down. Equal cost paths are broken by this order.
// Cells off the canvas are included; callers filter with InBounds.
func (g Grid) Neighbors(p Point) [4]Point {
	return [4]Point{
		{X: p.X - g.Box, Y: p.Y},
		{X: p.X + g.Box, Y: p.Y},
		{X: p.X, Y: p.Y - g.Box},
		{X: p.X, Y: p.Y + g.Box},
	}
}

// Wrap moves a point that stepped off one edge onto the opposite edge.
func (g Grid) Wrap(p Point) Point {
	if p.X < 0 {
		p.X = g.Width - g.Box
	}
	if p.Y < 0 {
		p.Y = g.Height - g.Box
	}
	if p.X >= g.Width {
		p.X = 0
	}
	if p.Y >= g.Height {
		p.Y = 0
	}
	return p
}

// Cols is the number of cells per row.
func (g Grid) Cols() int { return g.Width / g.Box }

// Rows is the number of cells per column.
func (g Grid) Rows() int { return g.Height / g.Box }

// Cells is the total number of cells on the grid.
func (g Grid) Cells() int { return g.Cols() * g.Rows() }

// Index flattens an in-bounds cell to row*cols + col.
func (g Grid) Index(p Point) int {
	return (p.Y/g.Box)*g.Cols() + p.X/g.Box
}

// CellAt converts a column and row into pixel coordinates.
func (g Grid) CellAt(col, row int) Point {
	return Point{X: col * g.Box, Y: row * g.Box}
}

// Center returns the cell closest to the middle of the canvas.
func (g Grid) Center() Point {
	return g.CellAt(g.Cols()/2, g.Rows()/2)
}

// Manhattan returns |dx| + |dy| between two cells, counted in cells.
func (g Grid) Manhattan(a, b Point) int {
	return (abs(a.X-b.X) + abs(a.Y-b.Y)) / g.Box
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the options fixed at start.
type Config struct {
	Width  int   // canvas width in pixels
	Height int   // canvas height in pixels
	Box    int   // cell size in pixels
	Speed  int   // moves per second
	Seed   int64 // apple RNG seed, 0 means time based
}

// DefaultConfig matches the original 400x400 canvas with 20px cells at 15 moves/s.
func DefaultConfig() Config {
	return Config{
		Width:  400,
		Height: 400,
		Box:    20,
		Speed:  15,
		Seed:   0,
	}
}

// Validate reports the first problem with the config, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validateShape(c.Width, c.Height, c.Box); err != nil {
		return err
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %d", ErrInvalidConfig, c.Speed)
	}
	return nil
}

// Grid builds the grid described by the config.
func (c Config) Grid() Grid {
	return NewGrid(c.Width, c.Height, c.Box)
}

func validateShape(width, height, box int) error {
	switch {
	case box <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, box)
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalidConfig, width, height)
	case width%box != 0 || height%box != 0:
		return fmt.Errorf("%w: grid %dx%d is not a multiple of cell size %d", ErrInvalidConfig, width, height, box)
	}
	return nil
}
