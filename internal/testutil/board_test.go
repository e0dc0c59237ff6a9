package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

func TestMustPlacement(t *testing.T) {
	board := MustPlacement(t, engine.InitialPlacement)
	AssertBoardEqual(t, board, chess.NewInitialBoard())
}

func TestMustPosition(t *testing.T) {
	board, side := MustPosition(t, "4k3/8/8/8/8/8/8/4K3 b")
	AssertEqual(t, side, chess.Black)

	piece, ok := board.OccupantAt(chess.Sq(0, 4))
	AssertTrue(t, ok, "black king on (0,4)")
	AssertEqual(t, piece, chess.B(chess.King))
}

func TestAssertBoardEqual_Copy(t *testing.T) {
	board := MustPlacement(t, "r3k2r/8/8/8/8/8/8/R3K2R")
	AssertBoardEqual(t, board.Copy(), board, "copy of %s", "castling layout")
}
