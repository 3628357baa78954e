package game

import (
	"context"
	"time"
)

// RunLoop drives g at a fixed frame cadence until ctx is done. Every frame
// passes the real elapsed time to Tick and hands a fresh snapshot to
// publish, moved or not, the way a render loop redraws every frame.
func RunLoop(ctx context.Context, g *Game, frame time.Duration, publish func(Snapshot)) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	lastUpdate := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			g.Tick(now.Sub(lastUpdate))
			lastUpdate = now
			if publish != nil {
				publish(g.Snapshot())
			}
		}
	}
}

// RunSteps performs n moves back to back, ignoring time. Headless runs use it.
func RunSteps(ctx context.Context, g *Game, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.Advance()
	}
	return nil
}
