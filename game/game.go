package game

import (
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"snake-astar/ai"
	"snake-astar/game/entity"
	"snake-astar/game/manager"
	"snake-astar/game/types"
)

// Game is the whole simulation state. Every mutation happens inside Tick or
// Advance on the driver goroutine; the mutex only lets renderers take
// snapshots from elsewhere.
type Game struct {
	UUID      string
	Grid      types.Grid
	Snake     *entity.Snake
	Apple     types.Point
	Direction types.Direction
	StartTime time.Time

	moveInterval  time.Duration
	sinceLastMove time.Duration

	pathfinder   *ai.Pathfinder
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	logger  *log.Logger
	verbose bool
	mutex   sync.Mutex
}

// NewGame builds a game from cfg and panics if cfg is invalid. The snake
// starts as one cell in the middle of the grid heading RIGHT. A nil logger
// writes to stderr.
func NewGame(cfg types.Config, logger *log.Logger) *Game {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	grid := cfg.Grid()
	gameUUID := uuid.New().String()
	if logger == nil {
		logger = log.New(os.Stderr, "["+gameUUID[:8]+"] ", log.LstdFlags)
	}

	collisionMgr := manager.NewCollisionManager(grid)
	snake := entity.NewSnake(grid.Center())

	g := &Game{
		UUID:         gameUUID,
		Grid:         grid,
		Snake:        snake,
		Direction:    types.RIGHT,
		StartTime:    time.Now(),
		moveInterval: time.Second / time.Duration(cfg.Speed),
		pathfinder:   ai.NewPathfinder(grid),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, cfg.Seed),
		stateMgr:     manager.NewStateManager(snake.Len()),
		logger:       logger,
	}
	g.Apple = g.foodMgr.GenerateFood(snake.Body)
	return g
}

// Quiet returns a logger that drops everything, for tests and benchmarks.
func Quiet() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// SetVerbose turns per-move debug logging on or off.
func (g *Game) SetVerbose(v bool) {
	g.verbose = v
}

// MoveInterval is the time between two moves at the configured speed.
func (g *Game) MoveInterval() time.Duration {
	return g.moveInterval
}

// AdvanceResult tells the caller what a single move did.
type AdvanceResult struct {
	Path          []types.Point // nil when no path was found
	Direction     types.Direction
	Head          types.Point
	Fallback      bool // kept the previous direction
	Ate           bool
	SelfCollision bool // head moved onto the body; the game goes on
}

// Tick feeds elapsed frame time into the move accumulator. Once the
// accumulated time reaches the move interval the snake advances one cell and
// the accumulator restarts from zero. It reports whether a move happened.
func (g *Game) Tick(elapsed time.Duration) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.stateMgr.RecordTick()
	g.sinceLastMove += elapsed
	if g.sinceLastMove < g.moveInterval {
		return false
	}
	g.advance()
	g.sinceLastMove = 0
	return true
}

// Advance performs exactly one move regardless of elapsed time.
func (g *Game) Advance() AdvanceResult {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.advance()
}

func (g *Game) advance() AdvanceResult {
	head := g.Snake.GetHead()
	path, found := g.pathfinder.FindPath(head, g.Apple, g.collisionMgr.Blocker(g.Snake.Body))

	res := AdvanceResult{Path: path, Fallback: true}
	if dir, ok := ai.NextDirection(path); ok {
		g.Direction = dir
		res.Fallback = false
	}
	res.Direction = g.Direction

	newHead := g.Grid.Wrap(g.Grid.Step(head, g.Direction))
	res.Head = newHead
	res.Ate = g.collisionMgr.IsFoodCollision(newHead, g.Apple)
	res.SelfCollision = g.collisionMgr.IsSelfCollision(newHead, g.Snake.Body, res.Ate)

	g.Snake.Move(newHead)
	if res.Ate {
		g.Apple = g.foodMgr.GenerateFood(g.Snake.Body)
	} else {
		g.Snake.RemoveTail()
	}

	pathLen := 0
	if found {
		pathLen = len(path)
	}
	g.stateMgr.RecordMove(manager.MoveRecord{
		PathLength:    pathLen,
		Expanded:      g.pathfinder.Expanded(),
		Fallback:      res.Fallback,
		Ate:           res.Ate,
		SelfCollision: res.SelfCollision,
		Length:        g.Snake.Len(),
	})

	if g.verbose {
		g.logger.Printf("move dir=%s head=%v path=%d expanded=%d fallback=%t",
			res.Direction, newHead, pathLen, g.pathfinder.Expanded(), res.Fallback)
	}
	if res.Ate {
		g.logger.Printf("apple eaten, length %d, next apple at %v", g.Snake.Len(), g.Apple)
	}
	if res.SelfCollision && g.verbose {
		g.logger.Printf("head ran into the body at %v", newHead)
	}
	return res
}

// Stats returns the run counters.
func (g *Game) Stats() manager.GameStats {
	return g.stateMgr.GetStats()
}

// ElapsedTime is the wall clock age of the game in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}
