package tetromino

import (
	"testing"
)

func fillRow(b *Board, y int, kind PieceKind, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}

	for x := 0; x < b.W; x++ {
		if !skip[x] {
			b.SetCell(x, y, kind)
		}
	}
}

func TestBoardClearLines(t *testing.T) {
	// Rows top to bottom: full, full, partial, empty.
	b := NewBoard(4, 4, 0)
	fillRow(b, 0, PieceI)
	fillRow(b, 1, PieceJ)
	b.SetCell(0, 2, PieceT)

	cleared := b.ClearLines()
	if cleared != 2 {
		t.Fatalf("wanted 2 rows cleared, got %d", cleared)
	}

	// Non-full rows keep their relative order: the partial row had no
	// removed rows below it and stays put.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := PieceNone
			if x == 0 && y == 2 {
				want = PieceT
			}
			if got := b.Cell(x, y); got != want {
				t.Errorf("cell (%d,%d): wanted %s, got %s", x, y, want, got)
			}
		}
	}
}

func TestBoardClearLinesShiftsDown(t *testing.T) {
	b := NewBoard(4, 4, 0)
	b.SetCell(1, 2, PieceS)
	fillRow(b, 3, PieceZ)

	cleared := b.ClearLines()
	if cleared != 1 {
		t.Fatalf("wanted 1 row cleared, got %d", cleared)
	}
	if got := b.Cell(1, 3); got != PieceS {
		t.Errorf("stacked cell did not settle down: wanted %s at (1,3), got %s", PieceS, got)
	}
	if got := b.Cell(1, 2); got != PieceNone {
		t.Errorf("source cell not vacated after settle: got %s", got)
	}
}

func TestBoardValid(t *testing.T) {
	b := NewBoard(10, 20, 4)

	if !b.Valid(NewPiece(PieceO, 3, 0)) {
		t.Error("piece on an empty board reported invalid")
	}
	if b.Valid(NewPiece(PieceO, -2, 0)) {
		t.Error("piece past the left wall reported valid")
	}
	if b.Valid(NewPiece(PieceO, 3, 23)) {
		t.Error("piece past the floor reported valid")
	}

	b.SetCell(4, 1, PieceL)
	if b.Valid(NewPiece(PieceO, 3, 0)) {
		t.Error("piece overlapping an occupied cell reported valid")
	}
}

func TestBoardPlaceSkipsOutOfBounds(t *testing.T) {
	b := NewBoard(10, 20, 4)

	// Two of the O blocks hang past the left wall; only the in-bounds
	// cells may be written.
	b.Place(NewPiece(PieceO, -2, 0))

	occupied := 0
	for _, c := range b.Cells() {
		if c != PieceNone {
			occupied++
		}
	}
	if occupied != 2 {
		t.Errorf("wanted 2 occupied cells, got %d", occupied)
	}
}

func TestBoardGameOver(t *testing.T) {
	b := NewBoard(10, 20, 4)
	if b.GameOver() {
		t.Error("empty board reported game over")
	}

	b.SetCell(5, 4, PieceI)
	if b.GameOver() {
		t.Error("block below the buffer rows reported game over")
	}

	b.SetCell(5, 3, PieceI)
	if !b.GameOver() {
		t.Error("block inside the buffer rows not reported as game over")
	}
}
