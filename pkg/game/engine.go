package game

import (
	"math"
	"sync"
	"time"

	"github.com/alconn/tetraterm/pkg/event"
	"github.com/alconn/tetraterm/pkg/tetromino"
)

// lineScore is the base award for clearing n rows at once; the award is
// multiplied by (level + 1). Clears beyond four rows score as four.
var lineScore = map[int]int{
	1: 40,
	2: 100,
	3: 300,
	4: 1200,
}

func clearScore(level int, n int) int {
	if n > 4 {
		n = 4
	}

	return lineScore[n] * (level + 1)
}

// fallInterval is the gravity interval at a level: a geometric speed-up
// curve with a hard floor.
func fallInterval(cfg Config, level int) time.Duration {
	d := time.Duration(float64(cfg.BaseInterval) * math.Pow(0.85, float64(level)))
	if d < cfg.MinInterval {
		return cfg.MinInterval
	}

	return d
}

// Engine owns all mutable game state and drives the falling-block state
// machine: spawning, movement, rotation with wall kicks, gravity, locking,
// line clearing, scoring and leveling. All gameplay mutations become
// no-ops once the game is over; the game-over latch never resets.
//
// Engine methods are synchronized so that a key-event goroutine and the
// frame loop may both call in, but every operation is synchronous and
// completes within one call.
type Engine struct {
	cfg Config

	board *tetromino.Board
	bag   *tetromino.Bag

	current    *tetromino.Piece
	next       tetromino.PieceKind
	score      int
	level      int
	lines      int
	fallEvery  time.Duration
	lastFall   time.Time
	fallPrimed bool
	gameOver   bool
	paused     bool

	*sync.Mutex
}

// NewEngine creates an engine with an empty board, seeds the bag with the
// given value and spawns the first piece.
func NewEngine(cfg Config, seed int64) *Engine {
	e := &Engine{
		cfg:       cfg,
		board:     tetromino.NewBoard(cfg.Width, cfg.Height, cfg.BufferRows),
		bag:       tetromino.NewBag(seed),
		fallEvery: fallInterval(cfg, 0),
		Mutex:     new(sync.Mutex),
	}

	e.spawnNext()

	return e
}

// Handle applies a single input command. Unknown actions are ignored.
func (e *Engine) Handle(a event.GameAction) {
	switch a {
	case event.ActionMoveLeft:
		e.Move(-1, 0)
	case event.ActionMoveRight:
		e.Move(1, 0)
	case event.ActionSoftDrop:
		e.SoftDrop()
	case event.ActionHardDrop:
		e.HardDrop()
	case event.ActionRotateCW:
		e.Rotate(1)
	case event.ActionRotateCCW:
		e.Rotate(-1)
	case event.ActionPause:
		e.TogglePause()
	case event.ActionQuit:
		e.Quit()
	}
}

// Move attempts to shift the current piece by dx, dy and reports whether
// the shift was committed. Invalid moves leave the piece unchanged.
func (e *Engine) Move(dx int, dy int) bool {
	e.Lock()
	defer e.Unlock()

	return e.move(dx, dy)
}

func (e *Engine) move(dx int, dy int) bool {
	if e.current == nil || e.paused || e.gameOver {
		return false
	}

	moved := e.current.Translated(dx, dy)
	if !e.board.Valid(moved) {
		return false
	}

	e.current = &moved

	return true
}

// SoftDrop moves the current piece down one row, awarding one point per
// manually accelerated row.
func (e *Engine) SoftDrop() bool {
	e.Lock()
	defer e.Unlock()

	moved := e.move(0, 1)
	if moved {
		e.score++
	}

	return moved
}

// HardDrop moves the current piece down until it rests, then locks it
// immediately. The drop itself awards no score.
func (e *Engine) HardDrop() {
	e.Lock()
	defer e.Unlock()

	if e.current == nil || e.paused || e.gameOver {
		return
	}

	for e.move(0, 1) {
	}

	e.lock()
}

// rotationKicks is the fixed order of horizontal offsets tried when a
// rotation is blocked in place.
var rotationKicks = []int{0, -1, 1, -2, 2}

// Rotate turns the current piece by delta quarter turns, resolving wall
// kicks in a fixed offset order. When no kick candidate is valid the
// rotation is silently rejected.
func (e *Engine) Rotate(delta int) {
	e.Lock()
	defer e.Unlock()

	if e.current == nil || e.paused || e.gameOver {
		return
	}

	rotated := e.current.Rotated(delta)
	for _, dx := range rotationKicks {
		candidate := rotated.Translated(dx, 0)
		if e.board.Valid(candidate) {
			e.current = &candidate
			return
		}
	}
}

// spawnNext promotes the queued kind to the current piece and draws a new
// queued kind. A spawn that collides with settled blocks ends the game;
// the colliding piece is kept for final-frame rendering.
func (e *Engine) spawnNext() {
	if e.next == tetromino.PieceNone {
		e.next = e.bag.Draw()
	}

	p := tetromino.NewPiece(e.next, (e.board.W/2)-2, 0)
	e.next = e.bag.Draw()
	e.current = &p

	if !e.board.Valid(p) {
		e.gameOver = true
	}
}

// lock commits the current piece onto the board, clears full rows, awards
// score, advances the level every ten lines and spawns the next piece.
func (e *Engine) lock() {
	if e.current == nil || e.gameOver {
		return
	}

	e.board.Place(*e.current)

	cleared := e.board.ClearLines()
	if cleared > 0 {
		e.score += clearScore(e.level, cleared)
		e.lines += cleared

		if level := e.lines / 10; level != e.level {
			e.level = level
			e.fallEvery = fallInterval(e.cfg, level)
		}
	}

	e.spawnNext()

	if e.board.GameOver() {
		e.gameOver = true
	}
}

// Tick advances gravity against the supplied timestamp. While paused or
// after game over it only resets the drop timer reference, so gravity
// does not catch up after unpausing.
func (e *Engine) Tick(now time.Time) {
	e.Lock()
	defer e.Unlock()

	if e.paused || e.gameOver || !e.fallPrimed {
		e.lastFall = now
		e.fallPrimed = true
		return
	}

	if now.Sub(e.lastFall) >= e.fallEvery {
		if !e.move(0, 1) {
			e.lock()
		}

		e.lastFall = now
	}
}

// TogglePause flips the paused flag. Pausing after game over is a no-op.
func (e *Engine) TogglePause() {
	e.Lock()
	defer e.Unlock()

	if e.gameOver {
		return
	}

	e.paused = !e.paused
}

// Quit ends the game. Internally indistinguishable from a lost game.
func (e *Engine) Quit() {
	e.Lock()
	defer e.Unlock()

	e.gameOver = true
}

func (e *Engine) GameOver() bool {
	e.Lock()
	defer e.Unlock()

	return e.gameOver
}

func (e *Engine) Paused() bool {
	e.Lock()
	defer e.Unlock()

	return e.paused
}
