// Package errors provides sentinel errors and error types for the chess core.
// It defines the contract violations the board, generator and session report,
// plus structured error types that preserve context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a square coordinate outside [0,8).
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrEmptySource indicates a move or restore from an unoccupied square.
	ErrEmptySource = errors.New("empty source square")

	// ErrMissingKing indicates a check query on a board without that king.
	ErrMissingKing = errors.New("king missing from board")

	// ErrSessionOver indicates a mutating call after a king was captured.
	ErrSessionOver = errors.New("session is over")

	// ErrNoSelection indicates a destination was given before a square was selected.
	ErrNoSelection = errors.New("no square selected")

	// ErrInvalidPlacement indicates a malformed piece placement string.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates a hub lookup for an unknown game ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrHubFull indicates the hub already hosts its maximum number of games.
	ErrHubFull = errors.New("hub is full")

	// ErrHubClosed indicates a call on a hub or game that has shut down.
	ErrHubClosed = errors.New("hub closed")
)

// SquareError wraps errors with the operation and square that caused them.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type SquareError struct {
	Err  error  // The underlying error
	Op   string // Operation that failed (e.g. "apply", "select")
	Rank int    // Rank of the offending square
	File int    // File of the offending square
}

// Error returns a formatted error message including the operation and square.
func (e *SquareError) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	parts = append(parts, fmt.Sprintf("square (%d,%d)", e.Rank, e.File))

	context := strings.Join(parts, " ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SquareError wrapper.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// PlacementError reports where a placement string failed to parse.
type PlacementError struct {
	Err    error  // The underlying error
	Offset int    // 0-based byte offset into the placement string
	Got    string // What was found instead
}

// Error returns a formatted error message with offset and context.
func (e *PlacementError) Error() string {
	msg := fmt.Sprintf("offset %d", e.Offset)
	if e.Got != "" {
		msg += fmt.Sprintf(": unexpected %s", e.Got)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *PlacementError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
