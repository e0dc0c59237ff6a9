package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is attacked by any
// opposing piece. It returns ErrMissingKing when that king is not on the board.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, ok := FindKing(board, colour)
	if !ok {
		return false, errors.Wrapf(errors.ErrMissingKing, "%v king", colour)
	}

	for _, from := range board.Pieces(colour.Opposite()) {
		for _, sq := range Destinations(board, from) {
			if sq == kingSq {
				return true, nil
			}
		}
	}
	return false, nil
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.Piece{Colour: colour, Kind: chess.King}
	for _, sq := range board.Pieces(colour) {
		if p, _ := board.OccupantAt(sq); p == king {
			return sq, true
		}
	}
	return chess.Square{}, false
}

// IsGameOver returns true once either king is absent from the board.
func IsGameOver(board *chess.Board) bool {
	_, white := FindKing(board, chess.White)
	_, black := FindKing(board, chess.Black)
	return !white || !black
}

// Winner returns the colour whose king survives when exactly one king is
// missing. ok is false while both kings (or neither) are present.
func Winner(board *chess.Board) (winner chess.Colour, ok bool) {
	_, white := FindKing(board, chess.White)
	_, black := FindKing(board, chess.Black)
	switch {
	case white && !black:
		return chess.White, true
	case black && !white:
		return chess.Black, true
	}
	return chess.White, false
}
