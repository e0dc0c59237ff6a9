package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// MustPlacement builds a board from a placement string.
// It calls t.Fatal if the string does not parse.
func MustPlacement(t testing.TB, placement string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromPlacement(placement)
	if err != nil {
		t.Fatalf("failed to parse placement %q: %v", placement, err)
	}
	return board
}

// MustPosition parses a placement with an optional side to move.
func MustPosition(t testing.TB, position string) (*chess.Board, chess.Colour) {
	t.Helper()
	board, side, err := engine.ParsePosition(position)
	if err != nil {
		t.Fatalf("failed to parse position %q: %v", position, err)
	}
	return board, side
}

// AssertBoardEqual compares every square of two boards and reports the
// differing occupants.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want.SaveState(), got.SaveState()); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: board mismatch (-want +got):\n%s\nwant %s\ngot  %s",
				msg, diff, engine.Placement(want), engine.Placement(got))
		} else {
			t.Errorf("board mismatch (-want +got):\n%s\nwant %s\ngot  %s",
				diff, engine.Placement(want), engine.Placement(got))
		}
	}
}
