package tetromino

import (
	"testing"
)

func TestBag(t *testing.T) {
	b := NewBag(0)

	taken := make(map[PieceKind]int)
	for cycle := 1; cycle <= 4; cycle++ {
		for i := 0; i < len(Kinds()); i++ {
			taken[b.Draw()]++
		}

		if len(taken) != len(Kinds()) {
			t.Errorf("kinds drawn in cycle %d do not cover the bag - taken: %v", cycle, taken)
		}

		for _, kind := range Kinds() {
			if taken[kind] != cycle {
				t.Fatalf("kind %s drawn %d times after %d full cycles", kind, taken[kind], cycle)
			}
		}
	}
}

func TestBagDeterminism(t *testing.T) {
	a := NewBag(42)
	b := NewBag(42)

	for i := 0; i < 21; i++ {
		ka := a.Draw()
		kb := b.Draw()
		if ka != kb {
			t.Fatalf("bags with equal seeds diverged on draw %d: %s != %s", i, ka, kb)
		}
	}
}
