package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-astar/game"
	"snake-astar/game/types"
	"snake-astar/server"
	"snake-astar/ui"
)

// frameInterval paces the web and desktop loops at roughly 60 frames per second.
const frameInterval = time.Second / 60

func main() {
	defaults := types.DefaultConfig()
	width := flag.Int("width", defaults.Width, "Canvas width in pixels")
	height := flag.Int("height", defaults.Height, "Canvas height in pixels")
	box := flag.Int("box", defaults.Box, "Cell size in pixels")
	speed := flag.Int("speed", defaults.Speed, "Snake moves per second")
	seed := flag.Int64("seed", defaults.Seed, "Apple RNG seed (0 = time based)")
	mode := flag.String("mode", "desktop", "Renderer: desktop, web or headless")
	addr := flag.String("addr", ":8080", "Listen address in web mode")
	ticks := flag.Int("ticks", 1000, "Moves to simulate in headless mode")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	cfg := types.Config{
		Width:  *width,
		Height: *height,
		Box:    *box,
		Speed:  *speed,
		Seed:   *seed,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	g := game.NewGame(cfg, nil)
	g.SetVerbose(*verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch *mode {
	case "desktop":
		runDesktop(g, cfg)
	case "web":
		err = runWeb(ctx, g, *addr)
	case "headless":
		err = game.RunSteps(ctx, g, *ticks)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}

	stats := g.Stats()
	log.Printf("run %s: %d moves, %d apples, length %d (best %d), %d fallbacks, %d bumps in %.1fs",
		g.UUID, stats.Moves, stats.ApplesEaten, stats.Length, stats.MaxLength,
		stats.FallbackMoves, stats.SelfCollisions, g.ElapsedTime())

	if err != nil && ctx.Err() == nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}

// runDesktop owns the raylib window; raylib has to stay on the main goroutine.
func runDesktop(g *game.Game, cfg types.Config) {
	w, h := ui.WindowSize(cfg.Width, cfg.Height)
	rl.InitWindow(w, h, "Snake AI - A*")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		now := time.Now()
		g.Tick(now.Sub(lastUpdate))
		lastUpdate = now

		renderer.Draw(g.Snapshot())
	}
}

func runWeb(ctx context.Context, g *game.Game, addr string) error {
	srv := server.NewServer(addr, log.Default())
	go srv.Run(ctx)
	go func() {
		_ = game.RunLoop(ctx, g, frameInterval, srv.Publish)
	}()
	return srv.ListenAndServe(ctx)
}
