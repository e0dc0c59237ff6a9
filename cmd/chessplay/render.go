// render.go - Board and outcome rendering
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/session"
)

var unicodeGlyphs = map[chess.Piece]string{
	chess.W(chess.King):   "♔",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Pawn):   "♙",
	chess.B(chess.King):   "♚",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Pawn):   "♟",
}

// Renderer draws boards and outcome messages for the terminal.
type Renderer struct {
	unicode bool
	colour  bool

	lightSquare *color.Color
	darkSquare  *color.Color
	selected    *color.Color
	target      *color.Color
	whitePiece  *color.Color
	blackPiece  *color.Color
	alert       *color.Color
	info        *color.Color
}

// NewRenderer creates a renderer from display settings.
func NewRenderer(cfg config.DisplayConfig) *Renderer {
	r := &Renderer{
		unicode:     cfg.Glyphs == "unicode",
		colour:      cfg.Color,
		lightSquare: color.New(color.BgHiWhite),
		darkSquare:  color.New(color.BgGreen),
		selected:    color.New(color.BgYellow),
		target:      color.New(color.BgCyan),
		whitePiece:  color.New(color.FgHiBlue, color.Bold),
		blackPiece:  color.New(color.FgBlack, color.Bold),
		alert:       color.New(color.FgRed, color.Bold),
		info:        color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{r.lightSquare, r.darkSquare, r.selected, r.target, r.whitePiece, r.blackPiece, r.alert, r.info} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Board writes board with rank 0 at the top. selected and targets may be
// empty.
func (r *Renderer) Board(w io.Writer, board *chess.Board, selected *chess.Square, targets []chess.Square) {
	isTarget := make(map[chess.Square]bool, len(targets))
	for _, sq := range targets {
		isTarget[sq] = true
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for file := 0; file < chess.BoardSize; file++ {
		fmt.Fprintf(&sb, " %d ", file)
	}
	sb.WriteByte('\n')

	for rank := 0; rank < chess.BoardSize; rank++ {
		fmt.Fprintf(&sb, " %d ", rank)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(rank, file)
			isSel := selected != nil && *selected == sq
			sb.WriteString(r.cell(board, sq, isSel, isTarget[sq]))
		}
		fmt.Fprintf(&sb, " %d\n", rank)
	}
	fmt.Fprint(w, sb.String())
}

// cell renders one three-column square.
func (r *Renderer) cell(board *chess.Board, sq chess.Square, selected, target bool) string {
	piece, occupied := board.OccupantAt(sq)

	if !r.colour {
		glyph := "."
		if occupied {
			glyph = r.glyph(piece)
		}
		switch {
		case selected:
			return "[" + glyph + "]"
		case target && occupied:
			return "<" + glyph + ">"
		case target:
			return " * "
		}
		return " " + glyph + " "
	}

	text := "   "
	if occupied {
		pc := r.whitePiece
		if piece.Colour == chess.Black {
			pc = r.blackPiece
		}
		text = " " + pc.Sprint(r.glyph(piece)) + " "
	} else if target {
		text = " · "
	}

	bg := r.lightSquare
	switch {
	case selected:
		bg = r.selected
	case target:
		bg = r.target
	case (sq.Rank+sq.File)%2 == 1:
		bg = r.darkSquare
	}
	return bg.Sprint(text)
}

func (r *Renderer) glyph(p chess.Piece) string {
	if r.unicode {
		return unicodeGlyphs[p]
	}
	return string(p.Letter())
}

// Outcome writes a one-line description of out followed by any check and
// game-over notices.
func (r *Renderer) Outcome(w io.Writer, out session.Outcome, mover chess.Colour) {
	switch out.Kind {
	case session.OutcomeSelected:
		fmt.Fprintf(w, "Selected %v. Destinations: %s\n", out.Square, formatSquares(out.Destinations))
	case session.OutcomeSelectionRejected:
		fmt.Fprintf(w, "Cannot select %v.\n", out.Square)
	case session.OutcomeMoved:
		fmt.Fprintf(w, "%v moved %v", mover, out.Move)
		if out.HasCapture {
			fmt.Fprintf(w, " capturing %v", out.Captured)
		}
		fmt.Fprintln(w, ".")
	case session.OutcomeRejected:
		r.alert.Fprintf(w, "Illegal move %v.\n", out.Move)
	case session.OutcomeUndone:
		fmt.Fprintf(w, "Undid %v", out.Move)
		if out.HasCapture {
			fmt.Fprintf(w, ", restoring %v", out.Captured)
		}
		fmt.Fprintln(w, ".")
	case session.OutcomeNothingToUndo:
		fmt.Fprintln(w, "Nothing to undo.")
	}
	r.Status(w, out.WhiteInCheck, out.BlackInCheck, out.GameOver, out.Winner, out.HasWinner)
}

// Status writes check and game-over notices.
func (r *Renderer) Status(w io.Writer, whiteInCheck, blackInCheck, over bool, winner chess.Colour, hasWinner bool) {
	if over {
		if hasWinner {
			r.alert.Fprintf(w, "Game over: %v wins.\n", winner)
		} else {
			r.alert.Fprintln(w, "Game over.")
		}
		return
	}
	if whiteInCheck {
		r.alert.Fprintln(w, "White is in check!")
	}
	if blackInCheck {
		r.alert.Fprintln(w, "Black is in check!")
	}
}

// History writes the move list, one numbered line per ply.
func (r *Renderer) History(w io.Writer, history []chess.MoveRecord) {
	if len(history) == 0 {
		r.info.Fprintln(w, "No moves yet.")
		return
	}
	for i, rec := range history {
		fmt.Fprintf(w, "%3d. %-5v %v", i+1, rec.Mover, rec.Move)
		if rec.HasCapture {
			fmt.Fprintf(w, " x %v", rec.Captured)
		}
		fmt.Fprintln(w)
	}
}

func formatSquares(squares []chess.Square) string {
	if len(squares) == 0 {
		return "none"
	}
	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = sq.String()
	}
	return strings.Join(parts, " ")
}
