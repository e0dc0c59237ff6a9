package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
)

func TestNewEmptyBoard(t *testing.T) {
	b := NewEmptyBoard()

	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if _, ok := b.OccupantAt(Sq(rank, file)); ok {
				t.Errorf("OccupantAt(%d, %d) occupied on empty board", rank, file)
			}
		}
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		// Black back rank
		{"black rook a8", Sq(0, 0), B(Rook)},
		{"black knight b8", Sq(0, 1), B(Knight)},
		{"black bishop c8", Sq(0, 2), B(Bishop)},
		{"black queen d8", Sq(0, 3), B(Queen)},
		{"black king e8", Sq(0, 4), B(King)},
		{"black bishop f8", Sq(0, 5), B(Bishop)},
		{"black knight g8", Sq(0, 6), B(Knight)},
		{"black rook h8", Sq(0, 7), B(Rook)},
		// Pawns
		{"black pawn a7", Sq(1, 0), B(Pawn)},
		{"black pawn h7", Sq(1, 7), B(Pawn)},
		{"white pawn a2", Sq(6, 0), W(Pawn)},
		{"white pawn e2", Sq(6, 4), W(Pawn)},
		// White back rank
		{"white rook a1", Sq(7, 0), W(Rook)},
		{"white knight b1", Sq(7, 1), W(Knight)},
		{"white bishop c1", Sq(7, 2), W(Bishop)},
		{"white queen d1", Sq(7, 3), W(Queen)},
		{"white king e1", Sq(7, 4), W(King)},
		{"white bishop f1", Sq(7, 5), W(Bishop)},
		{"white knight g1", Sq(7, 6), W(Knight)},
		{"white rook h1", Sq(7, 7), W(Rook)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.OccupantAt(tt.sq)
			if !ok || got != tt.piece {
				t.Errorf("OccupantAt(%v) = %v, %v; want %v, true", tt.sq, got, ok, tt.piece)
			}
		})
	}

	t.Run("middle ranks empty", func(t *testing.T) {
		for rank := 2; rank <= 5; rank++ {
			for file := 0; file < BoardSize; file++ {
				if !b.IsEmpty(Sq(rank, file)) {
					t.Errorf("IsEmpty(%d, %d) = false; want true", rank, file)
				}
			}
		}
	})

	t.Run("piece counts", func(t *testing.T) {
		if n := len(b.Pieces(White)); n != 16 {
			t.Errorf("len(Pieces(White)) = %d; want 16", n)
		}
		if n := len(b.Pieces(Black)); n != 16 {
			t.Errorf("len(Pieces(Black)) = %d; want 16", n)
		}
	})
}

func TestInBounds(t *testing.T) {
	b := NewEmptyBoard()
	tests := []struct {
		sq   Square
		want bool
	}{
		{Sq(0, 0), true},
		{Sq(7, 7), true},
		{Sq(3, 5), true},
		{Sq(-1, 0), false},
		{Sq(0, -1), false},
		{Sq(8, 0), false},
		{Sq(0, 8), false},
	}
	for _, tt := range tests {
		if got := b.InBounds(tt.sq); got != tt.want {
			t.Errorf("InBounds(%v) = %v; want %v", tt.sq, got, tt.want)
		}
	}
}

func TestOccupantAtOutOfRange(t *testing.T) {
	b := NewInitialBoard()
	if _, ok := b.OccupantAt(Sq(8, 8)); ok {
		t.Error("OccupantAt(8, 8) reported occupied")
	}
	if b.IsEmpty(Sq(-1, 3)) {
		t.Error("IsEmpty(-1, 3) = true; want false for off-board square")
	}
}

func TestApply(t *testing.T) {
	t.Run("quiet move", func(t *testing.T) {
		b := NewInitialBoard()
		captured, had, err := b.Apply(Move{From: Sq(6, 4), To: Sq(4, 4)})
		if err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
		if had {
			t.Errorf("Apply() captured %v; want nothing", captured)
		}
		if !b.IsEmpty(Sq(6, 4)) {
			t.Error("source square still occupied after Apply")
		}
		if got, _ := b.OccupantAt(Sq(4, 4)); got != W(Pawn) {
			t.Errorf("OccupantAt(4, 4) = %v; want white pawn", got)
		}
	})

	t.Run("capture returns overwritten piece", func(t *testing.T) {
		b := NewEmptyBoard()
		b.Place(Sq(4, 4), W(Rook))
		b.Place(Sq(1, 4), B(Knight))
		captured, had, err := b.Apply(Move{From: Sq(4, 4), To: Sq(1, 4)})
		if err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
		if !had || captured != B(Knight) {
			t.Errorf("Apply() = %v, %v; want black knight, true", captured, had)
		}
	})

	t.Run("empty source", func(t *testing.T) {
		b := NewInitialBoard()
		before := b.SaveState()
		_, _, err := b.Apply(Move{From: Sq(4, 4), To: Sq(3, 4)})
		if !errors.Is(err, chesserrors.ErrEmptySource) {
			t.Errorf("Apply() error = %v; want ErrEmptySource", err)
		}
		if diff := cmp.Diff(before, b.SaveState()); diff != "" {
			t.Errorf("board changed after failed Apply (-want +got):\n%s", diff)
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		b := NewInitialBoard()
		_, _, err := b.Apply(Move{From: Sq(6, 4), To: Sq(6, 8)})
		if !errors.Is(err, chesserrors.ErrOutOfBounds) {
			t.Errorf("Apply() error = %v; want ErrOutOfBounds", err)
		}
	})
}

func TestApplyRestoreIdentity(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Board)
		move  Move
	}{
		{
			name:  "pawn push from initial position",
			setup: func(b *Board) { b.SetupInitialPosition() },
			move:  Move{From: Sq(6, 4), To: Sq(4, 4)},
		},
		{
			name: "rook captures queen",
			setup: func(b *Board) {
				b.Place(Sq(7, 0), W(Rook))
				b.Place(Sq(2, 0), B(Queen))
			},
			move: Move{From: Sq(7, 0), To: Sq(2, 0)},
		},
		{
			name: "king captured",
			setup: func(b *Board) {
				b.Place(Sq(0, 4), B(King))
				b.Place(Sq(1, 3), W(Pawn))
			},
			move: Move{From: Sq(1, 3), To: Sq(0, 4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEmptyBoard()
			tt.setup(b)
			before := b.SaveState()

			captured, had, err := b.Apply(tt.move)
			if err != nil {
				t.Fatalf("Apply() error: %v", err)
			}
			if err := b.Restore(tt.move, captured, had); err != nil {
				t.Fatalf("Restore() error: %v", err)
			}
			if diff := cmp.Diff(before, b.SaveState()); diff != "" {
				t.Errorf("apply+restore not identity (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRestoreEmptyDestination(t *testing.T) {
	b := NewEmptyBoard()
	err := b.Restore(Move{From: Sq(6, 4), To: Sq(4, 4)}, Piece{}, false)
	if !errors.Is(err, chesserrors.ErrEmptySource) {
		t.Errorf("Restore() error = %v; want ErrEmptySource", err)
	}
}

func TestBoardCopy(t *testing.T) {
	original := NewInitialBoard()
	copied := original.Copy()

	copied.Clear(Sq(0, 4))
	copied.Place(Sq(4, 4), W(Queen))

	if got, _ := original.OccupantAt(Sq(0, 4)); got != B(King) {
		t.Errorf("original OccupantAt(0, 4) = %v after copy modification; want black king", got)
	}
	if !original.IsEmpty(Sq(4, 4)) {
		t.Error("original (4, 4) occupied after copy modification")
	}
}

func TestBoardSaveRestoreState(t *testing.T) {
	b := NewInitialBoard()
	saved := b.SaveState()

	b.Clear(Sq(6, 4))
	b.Place(Sq(4, 4), W(Pawn))
	b.RestoreState(saved)

	if diff := cmp.Diff(NewInitialBoard().SaveState(), b.SaveState()); diff != "" {
		t.Errorf("RestoreState mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceClearOffBoardNoop(t *testing.T) {
	b := NewInitialBoard()
	before := b.SaveState()
	b.Place(Sq(9, 9), W(Queen))
	b.Clear(Sq(-1, 0))
	if diff := cmp.Diff(before, b.SaveState()); diff != "" {
		t.Errorf("off-board Place/Clear changed the board (-want +got):\n%s", diff)
	}
}

func TestPieceLetters(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(King), 'K'},
		{B(King), 'k'},
		{W(Knight), 'N'},
		{B(Pawn), 'p'},
		{B(Queen), 'q'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}

func TestColourHelpers(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Errorf("Forward() = %d, %d; want -1, 1", White.Forward(), Black.Forward())
	}
	if White.PawnStartRank() != 6 || Black.PawnStartRank() != 1 {
		t.Errorf("PawnStartRank() = %d, %d; want 6, 1", White.PawnStartRank(), Black.PawnStartRank())
	}
}
