// Package hub hosts many game sessions at once.
//
// Each game is owned by a single goroutine that executes commands one at a
// time, so a session is never touched by two goroutines. Callers talk to a
// game through Do and Snapshot, which block until the owner answers, the
// context is done, or the game is closed.
package hub

import (
	"context"
	"sort"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/session"
)

// Info identifies a hosted game.
type Info struct {
	ID      uuid.UUID
	Name    string // Human readable, not unique
	Created time.Time
}

// View is a read-only snapshot of a game.
type View struct {
	Info
	Board        *chess.Board // Copy owned by the caller
	Placement    string
	SideToMove   chess.Colour
	State        session.State
	Selected     chess.Square // Valid when State is AwaitingDestination
	WhiteInCheck bool
	BlackInCheck bool
	GameOver     bool
	Winner       chess.Colour
	HasWinner    bool
	History      []chess.MoveRecord
}

// Hub manages a set of games, each served by its own goroutine.
type Hub struct {
	maxGames    int
	queueSize   int
	logger      *zap.Logger
	sessionOpts []session.Option
	now         func() time.Time

	mu     sync.RWMutex
	games  map[uuid.UUID]*game
	closed bool
	wg     sync.WaitGroup
}

// game is the handle to one owner goroutine.
type game struct {
	info     Info
	requests chan func(*session.Session)
	done     chan struct{}
	once     sync.Once
}

func (g *game) stop() {
	g.once.Do(func() { close(g.done) })
}

// Option configures a Hub.
type Option func(*Hub)

// WithMaxGames limits how many games may be open at once.
func WithMaxGames(n int) Option {
	return func(h *Hub) {
		if n >= 1 {
			h.maxGames = n
		}
	}
}

// WithQueueSize sets the per-game command buffer size.
func WithQueueSize(size int) Option {
	return func(h *Hub) {
		if size >= 1 {
			h.queueSize = size
		}
	}
}

// WithLogger sets the logger for hub and session events.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Hub) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithSessionOptions sets options applied to every new session.
func WithSessionOptions(opts ...session.Option) Option {
	return func(h *Hub) {
		h.sessionOpts = append(h.sessionOpts, opts...)
	}
}

// New creates a hub.
// Default: 64 games, queue size of 8.
func New(opts ...Option) *Hub {
	h := &Hub{
		maxGames:  64,
		queueSize: 8,
		logger:    zap.NewNop(),
		now:       time.Now,
		games:     make(map[uuid.UUID]*game),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Create starts a new game in its own goroutine. Extra options are applied
// after the hub-wide session options.
func (h *Hub) Create(ctx context.Context, opts ...session.Option) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return Info{}, errors.ErrHubClosed
	}
	if len(h.games) >= h.maxGames {
		return Info{}, errors.Wrapf(errors.ErrHubFull, "%d games", len(h.games))
	}

	info := Info{
		ID:      uuid.New(),
		Name:    petname.Generate(2, "-"),
		Created: h.now(),
	}
	logger := h.logger.With(zap.String("game_id", info.ID.String()), zap.String("game", info.Name))

	all := make([]session.Option, 0, len(h.sessionOpts)+len(opts)+1)
	all = append(all, h.sessionOpts...)
	all = append(all, opts...)
	all = append(all, session.WithLogger(logger))
	s := session.New(all...)

	g := &game{
		info:     info,
		requests: make(chan func(*session.Session), h.queueSize),
		done:     make(chan struct{}),
	}
	h.games[info.ID] = g

	h.wg.Add(1)
	go h.serve(g, s)

	logger.Info("game_created", zap.Stringer("side_to_move", s.SideToMove()))
	return info, nil
}

// serve executes requests for one game until it is stopped.
func (h *Hub) serve(g *game, s *session.Session) {
	defer h.wg.Done()
	for {
		select {
		case fn := <-g.requests:
			fn(s)
		case <-g.done:
			return
		}
	}
}

// Do runs cmd on the game's session and returns its outcome.
func (h *Hub) Do(ctx context.Context, id uuid.UUID, cmd Command) (session.Outcome, error) {
	var (
		out    session.Outcome
		cmdErr error
	)
	err := h.call(ctx, id, func(s *session.Session) {
		out, cmdErr = cmd.apply(s)
	})
	if err != nil {
		return session.Outcome{}, err
	}
	if cmdErr != nil {
		return out, errors.Wrapf(cmdErr, "game %s", id)
	}
	return out, nil
}

// Snapshot returns a consistent view of the game.
func (h *Hub) Snapshot(ctx context.Context, id uuid.UUID) (View, error) {
	info, err := h.info(id)
	if err != nil {
		return View{}, err
	}
	var view View
	err = h.call(ctx, id, func(s *session.Session) {
		winner, ok := s.Winner()
		board := s.Board()
		selected, _ := s.Selected()
		view = View{
			Info:         info,
			Board:        board,
			Placement:    engine.Placement(board),
			SideToMove:   s.SideToMove(),
			State:        s.State(),
			Selected:     selected,
			WhiteInCheck: s.IsInCheck(chess.White),
			BlackInCheck: s.IsInCheck(chess.Black),
			GameOver:     s.IsGameOver(),
			Winner:       winner,
			HasWinner:    ok,
			History:      s.History(),
		}
	})
	if err != nil {
		return View{}, err
	}
	return view, nil
}

// call hands fn to the game's owner and waits for it to run.
//
// A request whose context is done by the time the owner reaches it is
// dropped without running fn. Once queued, call waits for the owner to
// decide, so a nil error always means fn ran and a non-nil one means it
// did not.
func (h *Hub) call(ctx context.Context, id uuid.UUID, fn func(*session.Session)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g, err := h.lookup(id)
	if err != nil {
		return err
	}

	var skipped error
	finished := make(chan struct{})
	req := func(s *session.Session) {
		defer close(finished)
		if skipped = ctx.Err(); skipped != nil {
			return
		}
		fn(s)
	}

	select {
	case g.requests <- req:
	case <-g.done:
		return errors.Wrapf(errors.ErrHubClosed, "game %s", id)
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
	case <-g.done:
		// The owner may have run req just before stopping.
		select {
		case <-finished:
		default:
			return errors.Wrapf(errors.ErrHubClosed, "game %s", id)
		}
	}

	return skipped
}

func (h *Hub) lookup(id uuid.UUID) (*game, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return nil, errors.ErrHubClosed
	}
	g, ok := h.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	return g, nil
}

func (h *Hub) info(id uuid.UUID) (Info, error) {
	g, err := h.lookup(id)
	if err != nil {
		return Info{}, err
	}
	return g.info, nil
}

// List returns the open games, oldest first.
func (h *Hub) List() []Info {
	h.mu.RLock()
	out := make([]Info, 0, len(h.games))
	for _, g := range h.games {
		out = append(out, g.info)
	}
	h.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.Before(out[j].Created)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// Len returns the number of open games.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games)
}

// Close stops one game and frees its slot.
func (h *Hub) Close(id uuid.UUID) error {
	h.mu.Lock()
	g, ok := h.games[id]
	if ok {
		delete(h.games, id)
	}
	h.mu.Unlock()

	if !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	g.stop()
	h.logger.Info("game_closed", zap.String("game_id", id.String()), zap.String("game", g.info.Name))
	return nil
}

// Shutdown stops every game and waits for their goroutines to exit.
// Later calls return ErrHubClosed.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	games := h.games
	h.games = make(map[uuid.UUID]*game)
	h.mu.Unlock()

	for _, g := range games {
		g.stop()
	}
	h.wg.Wait()
	h.logger.Info("hub_shutdown", zap.Int("games", len(games)))
}
