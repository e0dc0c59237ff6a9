package chess

// Move is a source-destination square pair.
// It does not carry captured-piece information.
type Move struct {
	From Square
	To   Square
}

// String returns e.g. "(6,4)->(4,4)".
func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// MoveRecord is a move as it was played, with enough information to undo it.
type MoveRecord struct {
	Move Move

	// The side that made the move.
	Mover Colour

	// The piece that occupied Move.To before the move, valid only when
	// HasCapture is true.
	Captured   Piece
	HasCapture bool
}
