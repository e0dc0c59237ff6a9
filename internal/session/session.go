// Package session implements the turn-based game state machine that sits
// between an input shell and the board.
//
// A Session owns its board, move history and selection. It is driven one
// call at a time and is not safe for concurrent use; callers that share a
// game across goroutines should serialise access through a single owner
// (see package hub).
//
// Invalid user moves are reported through Outcome values. Errors are
// reserved for contract violations: out-of-range squares, calls after the
// game has ended, and a destination without a selection.
package session

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// State is the observable state of the selection state machine.
type State int

const (
	// AwaitingSelection means no square is selected.
	AwaitingSelection State = iota
	// AwaitingDestination means a square holding a piece of the side to
	// move has been selected.
	AwaitingDestination
)

// String returns the string representation of a state.
func (s State) String() string {
	if s == AwaitingDestination {
		return "AwaitingDestination"
	}
	return "AwaitingSelection"
}

// Session is one two-player game.
type Session struct {
	board    *chess.Board
	history  []chess.MoveRecord
	side     chess.Colour
	state    State
	selected chess.Square

	whiteInCheck bool
	blackInCheck bool
	over         bool
	winner       chess.Colour
	hasWinner    bool

	logger *zap.Logger
}

// New creates a session in the standard starting position with White to
// move. A board supplied through WithBoard that is already missing a king
// yields a session that is over from the start.
func New(opts ...Option) *Session {
	s := &Session{
		side:   chess.White,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.board == nil {
		s.board = chess.NewInitialBoard()
	}
	s.refresh()
	return s
}

// Select chooses the piece on sq. It only takes effect in AwaitingSelection
// and only for a piece of the side to move; anything else leaves the
// session unchanged and returns OutcomeSelectionRejected.
func (s *Session) Select(sq chess.Square) (Outcome, error) {
	if err := s.checkCall("select", sq); err != nil {
		return Outcome{}, err
	}

	if s.state == AwaitingDestination {
		return s.outcome(OutcomeSelectionRejected, sq), nil
	}
	piece, ok := s.board.OccupantAt(sq)
	if !ok || piece.Colour != s.side {
		return s.outcome(OutcomeSelectionRejected, sq), nil
	}

	s.state = AwaitingDestination
	s.selected = sq
	out := s.outcome(OutcomeSelected, sq)
	out.Destinations = engine.LegalDestinations(s.board, sq)
	return out, nil
}

// AttemptMove moves the selected piece to dest. An illegal destination
// discards the selection and returns OutcomeRejected without touching the
// board. ErrNoSelection is returned when nothing is selected.
func (s *Session) AttemptMove(dest chess.Square) (Outcome, error) {
	if err := s.checkCall("move", dest); err != nil {
		return Outcome{}, err
	}
	if s.state != AwaitingDestination {
		return Outcome{}, &errors.SquareError{Err: errors.ErrNoSelection, Op: "move", Rank: dest.Rank, File: dest.File}
	}

	m := chess.Move{From: s.selected, To: dest}
	s.clearSelection()

	if !engine.IsValidMove(s.board, m.From, m.To) {
		s.logger.Debug("move_rejected",
			zap.Stringer("side", s.side),
			zap.Stringer("from", m.From),
			zap.Stringer("to", m.To),
		)
		out := s.outcome(OutcomeRejected, dest)
		out.Move = m
		return out, nil
	}

	captured, hadCapture, err := s.board.Apply(m)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "move %v", m)
	}
	s.history = append(s.history, chess.MoveRecord{
		Move:       m,
		Mover:      s.side,
		Captured:   captured,
		HasCapture: hadCapture,
	})
	s.side = s.side.Opposite()
	s.refresh()

	fields := []zap.Field{
		zap.Stringer("from", m.From),
		zap.Stringer("to", m.To),
		zap.Int("ply", len(s.history)),
		zap.Bool("white_in_check", s.whiteInCheck),
		zap.Bool("black_in_check", s.blackInCheck),
	}
	if hadCapture {
		fields = append(fields, zap.Stringer("captured", captured))
	}
	s.logger.Info("move_applied", fields...)
	if s.over {
		s.logger.Info("game_over", zap.Stringer("winner", s.winner), zap.Int("ply", len(s.history)))
	}

	out := s.outcome(OutcomeMoved, dest)
	out.Move = m
	out.Captured = captured
	out.HasCapture = hadCapture
	return out, nil
}

// Undo reverses the last move, restoring any captured piece and handing
// the turn back to the colour that made it. With an empty history it
// returns OutcomeNothingToUndo and changes nothing, the pending selection
// included.
func (s *Session) Undo() (Outcome, error) {
	if s.over {
		return Outcome{}, errors.Wrap(errors.ErrSessionOver, "undo")
	}
	if len(s.history) == 0 {
		return s.outcome(OutcomeNothingToUndo, s.selected), nil
	}

	last := s.history[len(s.history)-1]
	if err := s.board.Restore(last.Move, last.Captured, last.HasCapture); err != nil {
		return Outcome{}, errors.Wrapf(err, "undo %v", last.Move)
	}
	s.history = s.history[:len(s.history)-1]
	s.side = last.Mover
	s.clearSelection()
	s.refresh()

	s.logger.Info("undo",
		zap.Stringer("from", last.Move.From),
		zap.Stringer("to", last.Move.To),
		zap.Stringer("side", s.side),
		zap.Int("ply", len(s.history)),
	)

	out := s.outcome(OutcomeUndone, last.Move.To)
	out.Move = last.Move
	out.Captured = last.Captured
	out.HasCapture = last.HasCapture
	return out, nil
}

// OccupantAt returns the piece on sq and whether the square is occupied.
func (s *Session) OccupantAt(sq chess.Square) (chess.Piece, bool, error) {
	if !sq.Valid() {
		return chess.Piece{}, false, outOfBounds("occupant", sq)
	}
	p, ok := s.board.OccupantAt(sq)
	return p, ok, nil
}

// LegalDestinations lists the legal targets of the piece on sq in row-major
// order, regardless of whose turn it is.
func (s *Session) LegalDestinations(sq chess.Square) ([]chess.Square, error) {
	if !sq.Valid() {
		return nil, outOfBounds("destinations", sq)
	}
	return engine.LegalDestinations(s.board, sq), nil
}

// SideToMove returns the colour whose turn it is.
func (s *Session) SideToMove() chess.Colour {
	return s.side
}

// IsInCheck reports whether c's king is attacked. A colour whose king has
// been captured is never in check.
func (s *Session) IsInCheck(c chess.Colour) bool {
	if c == chess.White {
		return s.whiteInCheck
	}
	return s.blackInCheck
}

// IsGameOver reports whether a king has been captured.
func (s *Session) IsGameOver() bool {
	return s.over
}

// Winner returns the colour whose king survived, once the game is over.
func (s *Session) Winner() (chess.Colour, bool) {
	return s.winner, s.hasWinner
}

// State returns the selection state.
func (s *Session) State() State {
	return s.state
}

// Selected returns the selected square while in AwaitingDestination.
func (s *Session) Selected() (chess.Square, bool) {
	return s.selected, s.state == AwaitingDestination
}

// History returns a copy of the applied moves, oldest first.
func (s *Session) History() []chess.MoveRecord {
	out := make([]chess.MoveRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// checkCall validates the preconditions shared by Select and AttemptMove.
func (s *Session) checkCall(op string, sq chess.Square) error {
	if s.over {
		return errors.Wrap(errors.ErrSessionOver, op)
	}
	if !sq.Valid() {
		return outOfBounds(op, sq)
	}
	return nil
}

func (s *Session) clearSelection() {
	s.state = AwaitingSelection
	s.selected = chess.Square{}
}

// refresh recomputes the derived game status from the board.
func (s *Session) refresh() {
	s.over = engine.IsGameOver(s.board)
	s.winner, s.hasWinner = engine.Winner(s.board)

	// A missing king means that side lost, not that it is in check.
	s.whiteInCheck, _ = engine.IsInCheck(s.board, chess.White)
	s.blackInCheck, _ = engine.IsInCheck(s.board, chess.Black)
}

// outcome builds an Outcome carrying the current status flags.
func (s *Session) outcome(kind OutcomeKind, sq chess.Square) Outcome {
	return Outcome{
		Kind:         kind,
		Square:       sq,
		WhiteInCheck: s.whiteInCheck,
		BlackInCheck: s.blackInCheck,
		GameOver:     s.over,
		Winner:       s.winner,
		HasWinner:    s.hasWinner,
	}
}

func outOfBounds(op string, sq chess.Square) error {
	return &errors.SquareError{Err: errors.ErrOutOfBounds, Op: op, Rank: sq.Rank, File: sq.File}
}
