// Package engine provides pseudo-legal move generation and check detection.
//
// Every function here is a pure query over a *chess.Board: nothing is cached
// and the board is never modified. Moves are pseudo-legal, meaning they follow
// each piece's movement pattern and the board's occupancy but do not consider
// whether the mover's own king is left in check.
package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Direction tables as {rank delta, file delta}.
var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	knightJumps  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Destinations returns every square the piece on from could move to next.
// It returns nil when from is empty or off the board. The order follows the
// direction tables and is not sorted; use LegalDestinations for row-major order.
func Destinations(board *chess.Board, from chess.Square) []chess.Square {
	piece, ok := board.OccupantAt(from)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnDestinations(board, from, piece.Colour)
	case chess.Rook:
		return slidingDestinations(board, from, piece.Colour, straightDirs)
	case chess.Bishop:
		return slidingDestinations(board, from, piece.Colour, diagonalDirs)
	case chess.Queen:
		return slidingDestinations(board, from, piece.Colour, queenDirs)
	case chess.Knight:
		return steppingDestinations(board, from, piece.Colour, knightJumps)
	case chess.King:
		return steppingDestinations(board, from, piece.Colour, kingSteps)
	}
	return nil
}

// pawnDestinations generates single and double pushes onto empty squares
// and diagonal captures onto opposing pieces.
func pawnDestinations(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var out []chess.Square
	dir := colour.Forward()

	one := from.Offset(dir, 0)
	if board.IsEmpty(one) {
		out = append(out, one)
		if from.Rank == colour.PawnStartRank() {
			two := from.Offset(2*dir, 0)
			if board.IsEmpty(two) {
				out = append(out, two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		target := from.Offset(dir, df)
		if board.IsEnemy(target, colour) {
			out = append(out, target)
		}
	}
	return out
}

// slidingDestinations walks each ray until the board edge or the first
// occupied square, which is included only when it holds an opposing piece.
func slidingDestinations(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var out []chess.Square
	for _, dir := range dirs {
		sq := from.Offset(dir[0], dir[1])
		for sq.Valid() {
			if board.IsEmpty(sq) {
				out = append(out, sq)
			} else {
				if board.IsEnemy(sq, colour) {
					out = append(out, sq)
				}
				break // Blocked
			}
			sq = sq.Offset(dir[0], dir[1])
		}
	}
	return out
}

// steppingDestinations checks each fixed offset independently.
func steppingDestinations(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var out []chess.Square
	for _, off := range offsets {
		sq := from.Offset(off[0], off[1])
		if board.IsEmpty(sq) || board.IsEnemy(sq, colour) {
			out = append(out, sq)
		}
	}
	return out
}
