package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialPlacement is the piece placement of the standard starting position.
// Ranks are listed from rank 0 (Black's back rank) to rank 7.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ConvertPlacementCharToKind converts a placement character to a piece kind.
func ConvertPlacementCharToKind(c byte) (chess.Kind, bool) {
	switch c {
	case 'K', 'k':
		return chess.King, true
	case 'Q', 'q':
		return chess.Queen, true
	case 'R', 'r':
		return chess.Rook, true
	case 'N', 'n':
		return chess.Knight, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'P', 'p':
		return chess.Pawn, true
	default:
		return 0, false
	}
}

// NewBoardFromPlacement creates a board from a FEN-style piece placement.
// Only the placement field is read; anything after the first space is ignored.
func NewBoardFromPlacement(placement string) (*chess.Board, error) {
	board, _, err := ParsePosition(placement)
	return board, err
}

// ParsePosition reads a placement field optionally followed by the side to
// move ("w" or "b"). The side defaults to White when absent.
func ParsePosition(s string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(s)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty placement string: %w", errors.ErrInvalidPlacement)
	}

	board := chess.NewEmptyBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	side, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}
	return board, side, nil
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank, file := 0, 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return &errors.PlacementError{Err: errors.ErrInvalidPlacement, Offset: i, Got: fmt.Sprintf("rank %d with %d files", rank, file)}
			}
			rank++
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind, ok := ConvertPlacementCharToKind(c)
			if !ok {
				return &errors.PlacementError{Err: errors.ErrInvalidPlacement, Offset: i, Got: fmt.Sprintf("%q", c)}
			}
			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			sq := chess.Sq(rank, file)
			if !sq.Valid() {
				return &errors.PlacementError{Err: errors.ErrInvalidPlacement, Offset: i, Got: "piece beyond board edge"}
			}
			board.Place(sq, chess.Piece{Colour: colour, Kind: kind})
			file++
		}
		if file > chess.BoardSize || rank >= chess.BoardSize {
			return &errors.PlacementError{Err: errors.ErrInvalidPlacement, Offset: i, Got: "square beyond board edge"}
		}
	}

	if rank != chess.BoardSize-1 || file != chess.BoardSize {
		return &errors.PlacementError{Err: errors.ErrInvalidPlacement, Offset: len(positions), Got: fmt.Sprintf("%d ranks", rank+1)}
	}
	return nil
}

// parseSideToMove reads the optional side-to-move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidPlacement)
}

// Placement renders the board's piece placement, the inverse of
// NewBoardFromPlacement.
func Placement(board *chess.Board) string {
	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			p, ok := board.OccupantAt(chess.Sq(rank, file))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}
