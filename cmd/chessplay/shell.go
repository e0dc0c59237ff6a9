// shell.go - Interactive command loop
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/hub"
	"github.com/lgbarn/chesscore-go/internal/session"
)

const helpText = `Commands:
  select R F   select the piece on rank R, file F        (s)
  move R F     move the selected piece to rank R, file F (m)
  undo         take back the last move                   (u)
  moves R F    list destinations of the piece on R F
  board        redraw the board                          (b)
  history      list the moves played
  new          start another game and switch to it
  games        list open games
  switch NAME  switch to the game named NAME
  help         show this text                            (?)
  quit         leave                                     (q)
Rank 0 is Black's back rank; files run 0 to 7 from left to right.
`

// errQuit ends the command loop without an error.
var errQuit = errors.New("quit")

// Shell reads commands and drives games hosted by a hub.
type Shell struct {
	hub      *hub.Hub
	renderer *Renderer
	out      io.Writer
	current  uuid.UUID
}

// NewShell creates a shell writing to out.
func NewShell(h *hub.Hub, r *Renderer, out io.Writer) *Shell {
	return &Shell{hub: h, renderer: r, out: out}
}

// Run starts a first game and executes commands from in until quit, end of
// input, or ctx is done.
func (sh *Shell) Run(ctx context.Context, in io.Reader) error {
	if err := sh.newGame(ctx); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Type 'help' for commands.")
	if err := sh.showBoard(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sh.prompt(ctx); err != nil {
			return err
		}
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}
		err := sh.Execute(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			sh.reportError(err)
		}
	}
}

func (sh *Shell) prompt(ctx context.Context) error {
	view, err := sh.hub.Snapshot(ctx, sh.current)
	if err != nil {
		return err
	}
	status := view.SideToMove.String() + " to move"
	if view.GameOver {
		status = "game over"
	}
	fmt.Fprintf(sh.out, "%s (%s)> ", view.Name, status)
	return nil
}

// Execute runs one command line. It returns errQuit for the quit command.
func (sh *Shell) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "select", "s":
		sq, err := parseSquare(args)
		if err != nil {
			return err
		}
		return sh.do(ctx, hub.Select(sq))
	case "move", "m":
		sq, err := parseSquare(args)
		if err != nil {
			return err
		}
		return sh.do(ctx, hub.Move(sq))
	case "undo", "u":
		return sh.do(ctx, hub.Undo())
	case "moves":
		sq, err := parseSquare(args)
		if err != nil {
			return err
		}
		return sh.listMoves(ctx, sq)
	case "board", "b":
		return sh.showBoard(ctx)
	case "history":
		view, err := sh.hub.Snapshot(ctx, sh.current)
		if err != nil {
			return err
		}
		sh.renderer.History(sh.out, view.History)
		return nil
	case "new":
		if err := sh.newGame(ctx); err != nil {
			return err
		}
		return sh.showBoard(ctx)
	case "games":
		sh.listGames()
		return nil
	case "switch":
		if len(args) != 1 {
			return fmt.Errorf("usage: switch NAME")
		}
		return sh.switchGame(ctx, args[0])
	case "help", "?":
		fmt.Fprint(sh.out, helpText)
		return nil
	case "quit", "q", "exit":
		return errQuit
	}
	return fmt.Errorf("unknown command %q (try 'help')", cmd)
}

// do sends cmd to the current game and renders the outcome.
func (sh *Shell) do(ctx context.Context, cmd hub.Command) error {
	before, err := sh.hub.Snapshot(ctx, sh.current)
	if err != nil {
		return err
	}
	out, err := sh.hub.Do(ctx, sh.current, cmd)
	if err != nil {
		return err
	}

	mover := before.SideToMove
	sh.renderer.Outcome(sh.out, out, mover)

	switch out.Kind {
	case session.OutcomeSelected, session.OutcomeMoved, session.OutcomeUndone:
		return sh.showBoard(ctx)
	}
	return nil
}

func (sh *Shell) listMoves(ctx context.Context, sq chess.Square) error {
	view, err := sh.hub.Snapshot(ctx, sh.current)
	if err != nil {
		return err
	}
	if !sq.Valid() {
		return &chesserrors.SquareError{Err: chesserrors.ErrOutOfBounds, Op: "moves", Rank: sq.Rank, File: sq.File}
	}
	piece, ok := view.Board.OccupantAt(sq)
	if !ok {
		fmt.Fprintf(sh.out, "No piece on %v.\n", sq)
		return nil
	}
	dests := engine.LegalDestinations(view.Board, sq)
	fmt.Fprintf(sh.out, "%v on %v: %s\n", piece, sq, formatSquares(dests))
	sh.renderer.Board(sh.out, view.Board, &sq, dests)
	return nil
}

// showBoard draws the current game, highlighting any selection.
func (sh *Shell) showBoard(ctx context.Context) error {
	view, err := sh.hub.Snapshot(ctx, sh.current)
	if err != nil {
		return err
	}
	var selected *chess.Square
	var targets []chess.Square
	if view.State == session.AwaitingDestination {
		sq := view.Selected
		selected = &sq
		targets = engine.LegalDestinations(view.Board, sq)
	}
	sh.renderer.Board(sh.out, view.Board, selected, targets)
	sh.renderer.Status(sh.out, view.WhiteInCheck, view.BlackInCheck, view.GameOver, view.Winner, view.HasWinner)
	return nil
}

func (sh *Shell) newGame(ctx context.Context) error {
	info, err := sh.hub.Create(ctx)
	if err != nil {
		return err
	}
	sh.current = info.ID
	fmt.Fprintf(sh.out, "Started game %s.\n", info.Name)
	return nil
}

func (sh *Shell) listGames() {
	for _, info := range sh.hub.List() {
		marker := " "
		if info.ID == sh.current {
			marker = "*"
		}
		fmt.Fprintf(sh.out, "%s %s  %s\n", marker, info.Name, info.Created.Format("15:04:05"))
	}
}

func (sh *Shell) switchGame(ctx context.Context, name string) error {
	for _, info := range sh.hub.List() {
		if info.Name == name || info.ID.String() == name {
			sh.current = info.ID
			fmt.Fprintf(sh.out, "Switched to %s.\n", info.Name)
			return sh.showBoard(ctx)
		}
	}
	return fmt.Errorf("no game named %q", name)
}

// reportError explains err to the player.
func (sh *Shell) reportError(err error) {
	switch {
	case errors.Is(err, chesserrors.ErrSessionOver):
		sh.renderer.alert.Fprintln(sh.out, "The game is over. Type 'new' to start another.")
	case errors.Is(err, chesserrors.ErrNoSelection):
		sh.renderer.alert.Fprintln(sh.out, "Select a piece first.")
	case errors.Is(err, chesserrors.ErrOutOfBounds):
		sh.renderer.alert.Fprintln(sh.out, "Ranks and files run from 0 to 7.")
	default:
		sh.renderer.alert.Fprintf(sh.out, "Error: %v\n", err)
	}
}

// parseSquare reads "R F" from args. Range checks are left to the session.
func parseSquare(args []string) (chess.Square, error) {
	if len(args) != 2 {
		return chess.Square{}, fmt.Errorf("expected rank and file, got %d values", len(args))
	}
	rank, err := strconv.Atoi(args[0])
	if err != nil {
		return chess.Square{}, fmt.Errorf("rank %q: %w", args[0], err)
	}
	file, err := strconv.Atoi(args[1])
	if err != nil {
		return chess.Square{}, fmt.Errorf("file %q: %w", args[1], err)
	}
	return chess.Sq(rank, file), nil
}
