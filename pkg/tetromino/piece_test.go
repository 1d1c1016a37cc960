package tetromino

import (
	"testing"
)

func TestPieceBlocks(t *testing.T) {
	p := NewPiece(PieceT, 3, 5)

	want := []Point{{4, 5}, {3, 6}, {4, 6}, {5, 6}}
	got := p.Blocks()

	if len(got) != len(want) {
		t.Fatalf("wanted %d blocks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("block %d: wanted %s, got %s", i, want[i], got[i])
		}
	}
}

func TestPieceTransformsAreValues(t *testing.T) {
	p := NewPiece(PieceJ, 2, 2)

	moved := p.Translated(1, 2)
	if p.X != 2 || p.Y != 2 {
		t.Error("Translated mutated its receiver")
	}
	if moved.X != 3 || moved.Y != 4 {
		t.Errorf("Translated returned origin (%d,%d), wanted (3,4)", moved.X, moved.Y)
	}

	rotated := p.Rotated(-1)
	if p.Rotation != 0 {
		t.Error("Rotated mutated its receiver")
	}
	if rotated.Rotation != 3 {
		t.Errorf("Rotated(-1) produced rotation %d, wanted 3", rotated.Rotation)
	}
	if r := p.Rotated(5).Rotation; r != 1 {
		t.Errorf("Rotated(5) produced rotation %d, wanted 1", r)
	}
}
