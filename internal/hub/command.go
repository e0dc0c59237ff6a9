package hub

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/session"
)

// Op identifies a session call.
type Op int

const (
	OpSelect Op = iota
	OpMove
	OpUndo
)

// String returns the string representation of an op.
func (o Op) String() string {
	switch o {
	case OpSelect:
		return "select"
	case OpMove:
		return "move"
	case OpUndo:
		return "undo"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Command is one session call delivered to a game's owner goroutine.
type Command struct {
	Op     Op
	Square chess.Square // Ignored for OpUndo
}

// Select returns a command selecting sq.
func Select(sq chess.Square) Command {
	return Command{Op: OpSelect, Square: sq}
}

// Move returns a command moving the selected piece to sq.
func Move(sq chess.Square) Command {
	return Command{Op: OpMove, Square: sq}
}

// Undo returns a command reversing the last move.
func Undo() Command {
	return Command{Op: OpUndo}
}

// apply runs cmd against s.
func (c Command) apply(s *session.Session) (session.Outcome, error) {
	switch c.Op {
	case OpSelect:
		return s.Select(c.Square)
	case OpMove:
		return s.AttemptMove(c.Square)
	case OpUndo:
		return s.Undo()
	}
	return session.Outcome{}, fmt.Errorf("unknown command %v", c.Op)
}
