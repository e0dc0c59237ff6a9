package session

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Option configures a Session.
type Option func(*Session)

// WithBoard starts the session from a copy of board instead of the
// standard layout.
func WithBoard(board *chess.Board) Option {
	return func(s *Session) {
		if board != nil {
			s.board = board.Copy()
		}
	}
}

// WithSideToMove sets which colour moves first.
func WithSideToMove(c chess.Colour) Option {
	return func(s *Session) {
		s.side = c
	}
}

// WithLogger sets the logger for session events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
