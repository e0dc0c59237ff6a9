package session

import "github.com/lgbarn/chesscore-go/internal/chess"

// OutcomeKind classifies the result of a session call.
type OutcomeKind int

const (
	// OutcomeSelected means a square was selected and the session now
	// awaits a destination.
	OutcomeSelected OutcomeKind = iota
	// OutcomeSelectionRejected means the select call changed nothing.
	OutcomeSelectionRejected
	// OutcomeMoved means the move was applied.
	OutcomeMoved
	// OutcomeRejected means the destination was not a legal target; the
	// selection was discarded and the board is unchanged.
	OutcomeRejected
	// OutcomeUndone means the last move was reversed.
	OutcomeUndone
	// OutcomeNothingToUndo means undo was called with an empty history.
	OutcomeNothingToUndo
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSelected:
		return "selected"
	case OutcomeSelectionRejected:
		return "selection rejected"
	case OutcomeMoved:
		return "moved"
	case OutcomeRejected:
		return "rejected"
	case OutcomeUndone:
		return "undone"
	case OutcomeNothingToUndo:
		return "nothing to undo"
	default:
		return "unknown"
	}
}

// Outcome is the result value returned by every mutating session call.
// The caller renders it; the session never pushes notifications.
type Outcome struct {
	Kind OutcomeKind

	// Square is the square passed to Select.
	Square chess.Square
	// Destinations lists the selected piece's legal targets in row-major
	// order. Set only for OutcomeSelected.
	Destinations []chess.Square

	// Move is the move applied, rejected or undone.
	Move       chess.Move
	Captured   chess.Piece
	HasCapture bool

	WhiteInCheck bool
	BlackInCheck bool

	GameOver  bool
	Winner    chess.Colour
	HasWinner bool
}

// Accepted reports whether the call changed the session.
func (o Outcome) Accepted() bool {
	switch o.Kind {
	case OutcomeSelected, OutcomeMoved, OutcomeUndone:
		return true
	}
	return false
}

// InCheck reports the check flag for the given colour.
func (o Outcome) InCheck(c chess.Colour) bool {
	if c == chess.White {
		return o.WhiteInCheck
	}
	return o.BlackInCheck
}
