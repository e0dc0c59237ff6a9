package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// IsValidMove reports whether the piece on from may move to to.
func IsValidMove(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	piece, ok := board.OccupantAt(from)
	if !ok {
		return false
	}
	// Can't capture own piece
	if target, occupied := board.OccupantAt(to); occupied && target.Colour == piece.Colour {
		return false
	}

	for _, sq := range Destinations(board, from) {
		if sq == to {
			return true
		}
	}
	return false
}

// LegalDestinations returns every square the piece on from may move to,
// in row-major order (rank ascending, then file ascending).
func LegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	var out []chess.Square
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			to := chess.Sq(rank, file)
			if IsValidMove(board, from, to) {
				out = append(out, to)
			}
		}
	}
	return out
}

// AllMoves returns every pseudo-legal move for colour, ordered by source
// square then destination square, both row-major.
func AllMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Pieces(colour) {
		for _, to := range LegalDestinations(board, from) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}
