package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsBadShapes(t *testing.T) {
	assert.Panics(t, func() { NewGrid(400, 400, 0) })
	assert.Panics(t, func() { NewGrid(400, 400, -20) })
	assert.Panics(t, func() { NewGrid(0, 400, 20) })
	assert.Panics(t, func() { NewGrid(410, 400, 20) })
	assert.NotPanics(t, func() { NewGrid(400, 300, 20) })
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Speed = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Width = 390
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestInBounds(t *testing.T) {
	g := NewGrid(400, 400, 20)

	assert.True(t, g.InBounds(Point{X: 0, Y: 0}))
	assert.True(t, g.InBounds(Point{X: 380, Y: 380}))
	assert.False(t, g.InBounds(Point{X: 400, Y: 0}))
	assert.False(t, g.InBounds(Point{X: 0, Y: 400}))
	assert.False(t, g.InBounds(Point{X: -20, Y: 0}))
	assert.False(t, g.InBounds(Point{X: 0, Y: -20}))
}

func TestNeighborsOrder(t *testing.T) {
	g := NewGrid(400, 400, 20)
	got := g.Neighbors(Point{X: 100, Y: 100})

	want := [4]Point{
		{X: 80, Y: 100},  // left
		{X: 120, Y: 100}, // right
		{X: 100, Y: 80},  // up
		{X: 100, Y: 120}, // down
	}
	assert.Equal(t, want, got)
}

func TestWrapEveryEdge(t *testing.T) {
	g := NewGrid(400, 400, 20)

	tests := []struct {
		name string
		from Point
		dir  Direction
		want Point
	}{
		{"right edge", Point{X: 380, Y: 140}, RIGHT, Point{X: 0, Y: 140}},
		{"left edge", Point{X: 0, Y: 140}, LEFT, Point{X: 380, Y: 140}},
		{"top edge", Point{X: 60, Y: 0}, UP, Point{X: 60, Y: 380}},
		{"bottom edge", Point{X: 60, Y: 380}, DOWN, Point{X: 60, Y: 0}},
		{"interior", Point{X: 60, Y: 60}, DOWN, Point{X: 60, Y: 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Wrap(g.Step(tt.from, tt.dir)))
		})
	}
}

func TestIndexAndCells(t *testing.T) {
	g := NewGrid(400, 300, 20)

	assert.Equal(t, 20, g.Cols())
	assert.Equal(t, 15, g.Rows())
	assert.Equal(t, 300, g.Cells())
	assert.Equal(t, 0, g.Index(Point{X: 0, Y: 0}))
	assert.Equal(t, 21, g.Index(Point{X: 20, Y: 20}))
	assert.Equal(t, 299, g.Index(Point{X: 380, Y: 280}))
	assert.Equal(t, Point{X: 200, Y: 140}, g.Center())
}

func TestManhattanCountsCells(t *testing.T) {
	g := NewGrid(400, 400, 20)
	assert.Equal(t, 0, g.Manhattan(Point{X: 40, Y: 40}, Point{X: 40, Y: 40}))
	assert.Equal(t, 5, g.Manhattan(Point{X: 0, Y: 0}, Point{X: 60, Y: 40}))
	assert.Equal(t, 5, g.Manhattan(Point{X: 60, Y: 40}, Point{X: 0, Y: 0}))
}

func TestDirectionBetween(t *testing.T) {
	head := Point{X: 100, Y: 100}

	for _, d := range []Direction{UP, DOWN, LEFT, RIGHT} {
		got, ok := DirectionBetween(head, Point{X: head.X + d.ToPoint().X*20, Y: head.Y + d.ToPoint().Y*20})
		require.True(t, ok)
		assert.Equal(t, d, got)
	}

	_, ok := DirectionBetween(head, head)
	assert.False(t, ok)
}

func TestDirectionText(t *testing.T) {
	b, err := LEFT.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "LEFT", string(b))
	assert.Equal(t, "NONE", NONE.String())

	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("DOWN")))
	assert.Equal(t, DOWN, d)
	assert.Error(t, d.UnmarshalText([]byte("SIDEWAYS")))
}
