package tetromino

// Piece is an immutable falling tetromino: a kind, a rotation state and
// the position of its 4x4 frame on the board. Transformations return new
// values; validity against the playfield is the caller's concern.
type Piece struct {
	Kind     PieceKind
	Rotation int
	X, Y     int
}

func NewPiece(kind PieceKind, x, y int) Piece {
	return Piece{Kind: kind, X: x, Y: y}
}

// Blocks returns the four absolute cells the piece occupies.
func (p Piece) Blocks() []Point {
	offsets := RotationOffsets(p.Kind, p.Rotation)

	blocks := make([]Point, len(offsets))
	for i, o := range offsets {
		blocks[i] = Point{p.X + o.X, p.Y + o.Y}
	}

	return blocks
}

// Translated returns a copy of the piece shifted by dx, dy.
func (p Piece) Translated(dx int, dy int) Piece {
	p.X += dx
	p.Y += dy

	return p
}

// Rotated returns a copy of the piece rotated by delta quarter turns.
// Negative deltas rotate counter-clockwise.
func (p Piece) Rotated(delta int) Piece {
	p.Rotation = (p.Rotation + delta) % RotationStates
	if p.Rotation < 0 {
		p.Rotation += RotationStates
	}

	return p
}
