package game

import (
	"github.com/alconn/tetraterm/pkg/tetromino"
)

// PieceSnapshot is the read-only view of a piece: its kind and the
// absolute cells it occupies.
type PieceSnapshot struct {
	Kind   tetromino.PieceKind
	Blocks []tetromino.Point
}

// Snapshot captures the complete engine state for rendering. Renderers
// receive a copy and must not feed anything back into the engine.
type Snapshot struct {
	Width  int
	Height int
	Buffer int

	// Cells is the full grid in row-major order, buffer rows first.
	// Renderers normally skip the buffer rows.
	Cells []tetromino.PieceKind

	Current *PieceSnapshot
	Next    tetromino.PieceKind

	Score int
	Level int
	Lines int

	Paused   bool
	GameOver bool
}

// Cell returns the settled kind at a cell, or PieceNone when empty or out
// of bounds. The current piece is not part of the grid.
func (s *Snapshot) Cell(x int, y int) tetromino.PieceKind {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height+s.Buffer {
		return tetromino.PieceNone
	}

	return s.Cells[(y*s.Width)+x]
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	e.Lock()
	defer e.Unlock()

	s := Snapshot{
		Width:    e.board.W,
		Height:   e.board.H,
		Buffer:   e.board.B,
		Cells:    e.board.Cells(),
		Next:     e.next,
		Score:    e.score,
		Level:    e.level,
		Lines:    e.lines,
		Paused:   e.paused,
		GameOver: e.gameOver,
	}

	if e.current != nil {
		s.Current = &PieceSnapshot{Kind: e.current.Kind, Blocks: e.current.Blocks()}
	}

	return s
}
