package tetromino

// Board is the playfield: W columns by H visible rows, plus B buffer rows
// above the visible area used for spawning and game over detection. Each
// cell holds the kind that locked into it, or PieceNone. The board is
// owned and mutated by a single engine; it carries no locking of its own.
type Board struct {
	W int // Width
	H int // Height
	B int // Buffer height

	cells []PieceKind
}

func NewBoard(w int, h int, b int) *Board {
	return &Board{W: w, H: h, B: b, cells: make([]PieceKind, w*(h+b))}
}

func (b *Board) index(x int, y int) int {
	return (y * b.W) + x
}

// Inside reports whether the cell lies within the board, buffer rows
// included.
func (b *Board) Inside(x int, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H+b.B
}

// Empty reports whether the cell is unoccupied. Out of bounds cells are
// never empty.
func (b *Board) Empty(x int, y int) bool {
	if !b.Inside(x, y) {
		return false
	}

	return b.cells[b.index(x, y)] == PieceNone
}

// Valid reports whether every block of the piece is inside the board and
// unoccupied. It is the single authority for whether a piece may occupy a
// position and rotation.
func (b *Board) Valid(p Piece) bool {
	for _, blk := range p.Blocks() {
		if !b.Empty(blk.X, blk.Y) {
			return false
		}
	}

	return true
}

// Place writes the piece's kind into each of its in-bounds cells. Callers
// are expected to have checked Valid first; out of bounds blocks are
// skipped rather than written.
func (b *Board) Place(p Piece) {
	for _, blk := range p.Blocks() {
		if b.Inside(blk.X, blk.Y) {
			b.cells[b.index(blk.X, blk.Y)] = p.Kind
		}
	}
}

// ClearLines removes every full row, shifts the rows above each removed
// row down one step and returns the number of rows removed. Non-full rows
// keep their relative order.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := 0; y < b.H+b.B; y++ {
		if b.lineFilled(y) {
			b.removeLine(y)
			cleared++
		}
	}

	return cleared
}

func (b *Board) lineFilled(y int) bool {
	for x := 0; x < b.W; x++ {
		if b.cells[b.index(x, y)] == PieceNone {
			return false
		}
	}

	return true
}

func (b *Board) removeLine(y int) {
	for my := y; my > 0; my-- {
		for x := 0; x < b.W; x++ {
			b.cells[b.index(x, my)] = b.cells[b.index(x, my-1)]
		}
	}

	for x := 0; x < b.W; x++ {
		b.cells[b.index(x, 0)] = PieceNone
	}
}

// GameOver reports whether any buffer row cell is occupied. The engine
// evaluates this after a lock, not continuously.
func (b *Board) GameOver() bool {
	for y := 0; y < b.B; y++ {
		for x := 0; x < b.W; x++ {
			if b.cells[b.index(x, y)] != PieceNone {
				return true
			}
		}
	}

	return false
}

// SetCell writes a single cell and reports whether the cell was inside
// the board.
func (b *Board) SetCell(x int, y int, kind PieceKind) bool {
	if !b.Inside(x, y) {
		return false
	}

	b.cells[b.index(x, y)] = kind

	return true
}

// Cell returns the kind occupying a cell, or PieceNone when the cell is
// empty or out of bounds.
func (b *Board) Cell(x int, y int) PieceKind {
	if !b.Inside(x, y) {
		return PieceNone
	}

	return b.cells[b.index(x, y)]
}

// Cells returns a copy of the grid in row-major order, buffer rows first.
func (b *Board) Cells() []PieceKind {
	cells := make([]PieceKind, len(b.cells))
	copy(cells, b.cells)

	return cells
}
