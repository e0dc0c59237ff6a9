// chessplay is a terminal front end for the two-player chess move engine.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hub"
	"github.com/lgbarn/chesscore-go/internal/obslog"
	"github.com/lgbarn/chesscore-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the logger, hub and shell together and blocks until the shell
// exits.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out, logOut io.Writer) error {
	logger := obslog.New(cfg.Log, logOut)
	defer func() { _ = logger.Sync() }()

	sessionOpts, err := sessionOptions(cfg.Game)
	if err != nil {
		return err
	}

	h := hub.New(
		hub.WithMaxGames(cfg.Hub.MaxGames),
		hub.WithQueueSize(cfg.Hub.QueueSize),
		hub.WithLogger(logger),
		hub.WithSessionOptions(sessionOpts...),
	)
	defer h.Shutdown()

	logger.Debug("chessplay_start",
		zap.String("version", programVersion),
		zap.String("position", cfg.Game.Position),
		zap.Int("max_games", cfg.Hub.MaxGames),
	)

	return NewShell(h, NewRenderer(cfg.Display), out).Run(ctx, in)
}

// sessionOptions converts the configured starting position.
func sessionOptions(game config.GameConfig) ([]session.Option, error) {
	if game.Position == "" {
		return nil, nil
	}
	board, side, err := engine.ParsePosition(game.Position)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	return []session.Option{session.WithBoard(board), session.WithSideToMove(side)}, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two-player chess in the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment: CHESS_LOG_LEVEL, CHESS_LOG_FORMAT, CHESS_LOG_CALLER, CHESS_COLOR,\n")
	fmt.Fprintf(os.Stderr, "CHESS_GLYPHS, CHESS_MAX_GAMES, CHESS_QUEUE_SIZE, CHESS_POSITION\n\n")
	fmt.Fprint(os.Stderr, helpText)
}
