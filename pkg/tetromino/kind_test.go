package tetromino

import (
	"testing"
)

func TestRotationOffsets(t *testing.T) {
	for _, kind := range Kinds() {
		for rotation := 0; rotation < RotationStates; rotation++ {
			offsets := RotationOffsets(kind, rotation)
			if len(offsets) != 4 {
				t.Fatalf("kind %s rotation %d: wanted 4 offsets, got %d", kind, rotation, len(offsets))
			}

			seen := make(map[Point]bool)
			for _, o := range offsets {
				if o.X < 0 || o.X > 3 || o.Y < 0 || o.Y > 3 {
					t.Errorf("kind %s rotation %d: offset %s outside the 4x4 frame", kind, rotation, o)
				}
				if seen[o] {
					t.Errorf("kind %s rotation %d: duplicate offset %s", kind, rotation, o)
				}
				seen[o] = true
			}
		}
	}
}

func TestRotationOffsetsO(t *testing.T) {
	base := RotationOffsets(PieceO, 0)
	for rotation := 1; rotation < RotationStates; rotation++ {
		offsets := RotationOffsets(PieceO, rotation)
		for i := range base {
			if offsets[i] != base[i] {
				t.Errorf("O rotation %d differs from rotation 0 at offset %d: %s != %s", rotation, i, offsets[i], base[i])
			}
		}
	}
}

func TestRotationOffsetsWrap(t *testing.T) {
	for _, d := range []struct{ rotation, canonical int }{
		{4, 0},
		{5, 1},
		{-1, 3},
		{-4, 0},
	} {
		a := RotationOffsets(PieceT, d.rotation)
		b := RotationOffsets(PieceT, d.canonical)
		for i := range b {
			if a[i] != b[i] {
				t.Errorf("rotation %d did not wrap to %d", d.rotation, d.canonical)
			}
		}
	}
}
