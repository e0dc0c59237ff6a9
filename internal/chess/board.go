package chess

import (
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Occupant is the content of one square.
type Occupant struct {
	Piece    Piece
	Occupied bool
}

// BoardState captures every square of a board as a comparable value.
// BoardState[rank][file] holds the occupant of Square{rank, file}.
type BoardState [BoardSize][BoardSize]Occupant

// Board represents the 8x8 grid of occupants.
// Rank 0 is Black's back rank and rank 7 is White's.
type Board struct {
	squares BoardState
}

// NewEmptyBoard creates a board with every square empty.
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewEmptyBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = BoardState{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[0][file] = Occupant{Piece: B(backRank[file]), Occupied: true}
		b.squares[1][file] = Occupant{Piece: B(Pawn), Occupied: true}
		b.squares[6][file] = Occupant{Piece: W(Pawn), Occupied: true}
		b.squares[7][file] = Occupant{Piece: W(backRank[file]), Occupied: true}
	}
}

// InBounds reports whether the square lies on the board.
func (b *Board) InBounds(sq Square) bool {
	return sq.Valid()
}

// OccupantAt returns the piece on sq and whether the square is occupied.
// Out-of-range squares report as empty.
func (b *Board) OccupantAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	o := b.squares[sq.Rank][sq.File]
	return o.Piece, o.Occupied
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	if !sq.Valid() {
		return false
	}
	return !b.squares[sq.Rank][sq.File].Occupied
}

// IsEnemy reports whether sq holds a piece of the colour opposing c.
func (b *Board) IsEnemy(sq Square, c Colour) bool {
	p, ok := b.OccupantAt(sq)
	return ok && p.Colour != c
}

// Place puts p on sq, replacing any occupant. It is a no-op off the board.
func (b *Board) Place(sq Square, p Piece) {
	if sq.Valid() {
		b.squares[sq.Rank][sq.File] = Occupant{Piece: p, Occupied: true}
	}
}

// Clear empties sq. It is a no-op off the board.
func (b *Board) Clear(sq Square) {
	if sq.Valid() {
		b.squares[sq.Rank][sq.File] = Occupant{}
	}
}

// Apply moves whatever occupies m.From to m.To and returns what was
// overwritten on m.To. Legality is not checked. The board is unchanged
// when an error is returned.
func (b *Board) Apply(m Move) (captured Piece, hadCapture bool, err error) {
	if err := checkBounds("apply", m); err != nil {
		return Piece{}, false, err
	}
	mover, ok := b.OccupantAt(m.From)
	if !ok {
		return Piece{}, false, &errors.SquareError{Err: errors.ErrEmptySource, Op: "apply", Rank: m.From.Rank, File: m.From.File}
	}

	captured, hadCapture = b.OccupantAt(m.To)
	b.Clear(m.From)
	b.Place(m.To, mover)
	return captured, hadCapture, nil
}

// Restore is the exact inverse of Apply: it moves the occupant of m.To
// back to m.From and reinstates the captured piece, if any, on m.To.
func (b *Board) Restore(m Move, captured Piece, hadCapture bool) error {
	if err := checkBounds("restore", m); err != nil {
		return err
	}
	mover, ok := b.OccupantAt(m.To)
	if !ok {
		return &errors.SquareError{Err: errors.ErrEmptySource, Op: "restore", Rank: m.To.Rank, File: m.To.File}
	}

	b.Place(m.From, mover)
	if hadCapture {
		b.Place(m.To, captured)
	} else {
		b.Clear(m.To)
	}
	return nil
}

// Pieces returns the squares holding pieces of colour c in row-major order.
func (b *Board) Pieces(c Colour) []Square {
	var out []Square
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			o := b.squares[rank][file]
			if o.Occupied && o.Piece.Colour == c {
				out = append(out, Sq(rank, file))
			}
		}
	}
	return out
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// SaveState captures the full occupant mapping.
func (b *Board) SaveState() BoardState {
	return b.squares
}

// RestoreState replaces every square with a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.squares = s
}

func checkBounds(op string, m Move) error {
	for _, sq := range []Square{m.From, m.To} {
		if !sq.Valid() {
			return &errors.SquareError{Err: errors.ErrOutOfBounds, Op: op, Rank: sq.Rank, File: sq.File}
		}
	}
	return nil
}
