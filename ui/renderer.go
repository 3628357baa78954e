package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-astar/game"
)

const (
	statsPanel    = 180 // width of the stats panel on the right
	borderPadding = 10  // padding around game area
)

// Renderer draws snapshots into a raylib window. It never touches the game.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// WindowSize returns the window needed to show a canvas of the given size
// next to the stats panel.
func WindowSize(width, height int) (int32, int32) {
	return int32(width) + statsPanel + borderPadding*3, int32(height) + borderPadding*2
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.offsetX = borderPadding
	r.offsetY = borderPadding
}

func (r *Renderer) Draw(s game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	box := int32(s.Box)

	// Playfield
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, int32(s.Width)+2, int32(s.Height)+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, int32(s.Width), int32(s.Height), rl.Black)

	for _, p := range s.Snake {
		rl.DrawRectangle(r.offsetX+int32(p.X), r.offsetY+int32(p.Y), box, box, rl.Green)
	}
	rl.DrawRectangle(r.offsetX+int32(s.Apple.X), r.offsetY+int32(s.Apple.Y), box, box, rl.Red)

	r.drawStatsPanel(s, int32(s.Width)+borderPadding*2)
	rl.EndDrawing()
}

func (r *Renderer) drawStatsPanel(s game.Snapshot, statsX int32) {
	const fontSize = 16
	const lineHeight = 22
	statsY := int32(borderPadding)

	rl.DrawText("A* Snake", statsX, statsY, fontSize+4, rl.White)
	statsY += lineHeight + 6

	lines := []string{
		fmt.Sprintf("Run: %s", s.UUID[:8]),
		fmt.Sprintf("Heading: %s", s.Direction),
		fmt.Sprintf("Length: %d", s.Stats.Length),
		fmt.Sprintf("Best: %d", s.Stats.MaxLength),
		fmt.Sprintf("Apples: %d", s.Stats.ApplesEaten),
		fmt.Sprintf("Moves: %d", s.Stats.Moves),
		fmt.Sprintf("Fallbacks: %d", s.Stats.FallbackMoves),
		fmt.Sprintf("Bumps: %d", s.Stats.SelfCollisions),
		fmt.Sprintf("Avg path: %.1f", s.Stats.AvgPathLength),
		fmt.Sprintf("Expanded: %d", s.Stats.LastExpanded),
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.LightGray)
		statsY += lineHeight
	}
}
