package tetromino

import (
	"math/rand"
	"sync"
)

// Bag deals kinds using the 7-bag discipline: an internal queue is
// refilled with a freshly shuffled permutation of all seven kinds exactly
// when it runs empty, never partially, so every run of seven draws between
// refills contains each kind once.
type Bag struct {
	queue []PieceKind

	randomizer *rand.Rand

	*sync.Mutex
}

// NewBag returns a Bag seeded with the given value. Equal seeds produce
// equal draw sequences.
func NewBag(seed int64) *Bag {
	return &Bag{randomizer: rand.New(rand.NewSource(seed)), Mutex: new(sync.Mutex)}
}

// Draw removes and returns the next kind, refilling the queue first when
// it is empty.
func (b *Bag) Draw() PieceKind {
	b.Lock()
	defer b.Unlock()

	if len(b.queue) == 0 {
		b.refill()
	}

	kind := b.queue[0]
	b.queue = b.queue[1:]

	return kind
}

func (b *Bag) refill() {
	b.queue = Kinds()

	b.randomizer.Shuffle(len(b.queue), func(i, j int) { b.queue[i], b.queue[j] = b.queue[j], b.queue[i] })
}
