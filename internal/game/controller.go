package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/gomoku/internal/board"
	"github.com/jask/gomoku/internal/players"
)

var (
	ErrRunning    = errors.New("game already in progress")
	ErrNotRunning = errors.New("no game in progress")
	ErrNotPaused  = errors.New("game is not paused")

	errIllegalMoves = errors.New("too many illegal moves")
)

// maxIllegal is how many illegal moves a player may try in one turn.
const maxIllegal = 3

// recordTimeout bounds how long a Recorder may take for one game.
const recordTimeout = 5 * time.Second

// Record is a finished game as handed to a Recorder.
type Record struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Rules      Snapshot
	Result     Result
	Moves      []Move
}

// Recorder persists finished games.
type Recorder interface {
	Record(ctx context.Context, r Record) error
}

type Option func(*Controller)

func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithClock replaces time.Now for turn timing.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller runs one game at a time between two registry players.
type Controller struct {
	settings *Settings
	registry *players.Registry
	log      *zap.SugaredLogger
	recorder Recorder
	now      func() time.Time

	lmu       sync.RWMutex
	listeners []Listener

	mu        sync.Mutex
	state     State
	rules     Snapshot
	board     *board.Board
	players   [2]players.Player
	remaining [2]time.Duration
	turn      int
	waiting   bool
	moves     []Move
	id        string
	startedAt time.Time
	cancel    context.CancelFunc
	done      chan struct{}
}

func New(settings *Settings, registry *players.Registry, log *zap.SugaredLogger, opts ...Option) *Controller {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	c := &Controller{
		settings: settings,
		registry: registry,
		log:      log,
		now:      time.Now,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) AddListener(l Listener) {
	c.lmu.Lock()
	defer c.lmu.Unlock()
	c.listeners = append(c.listeners, l)
}

func (c *Controller) Settings() *Settings { return c.settings }

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the rules of the current or last game, or the pending
// settings when no game has been played.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle {
		return c.settings.Snapshot()
	}
	return c.rules
}

// Board returns a copy of the current board, or nil before the first game.
func (c *Controller) Board() *board.Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.board == nil {
		return nil
	}
	return c.board.Clone()
}

func (c *Controller) Moves() []Move {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Move(nil), c.moves...)
}

// Turn returns the player to move (1 or 2).
func (c *Controller) Turn() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.turn
}

func (c *Controller) GameID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// GameTime returns the player's remaining game budget as of the start of
// the current turn.
func (c *Controller) GameTime(player int) time.Duration {
	if player != 1 && player != 2 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle {
		return c.settings.GameTime()
	}
	return c.remaining[player-1]
}

// Start begins a new game from the current settings.
func (c *Controller) Start(ctx context.Context) error {
	rules := c.settings.Snapshot()
	b, err := board.New(rules.Size)
	if err != nil {
		return err
	}
	var ps [2]players.Player
	for i := range ps {
		p, err := c.registry.New(rules.Player(i + 1))
		if err != nil {
			return fmt.Errorf("player %d: %w", i+1, err)
		}
		ps[i] = p
	}

	c.mu.Lock()
	if c.state == StateRunning || c.state == StatePaused {
		c.mu.Unlock()
		return ErrRunning
	}
	c.rules = rules
	c.board = b
	c.players = ps
	c.remaining = [2]time.Duration{rules.GameTime, rules.GameTime}
	c.turn = 1
	c.waiting = false
	c.moves = nil
	c.id = uuid.NewString()
	c.startedAt = c.now()
	c.state = StateRunning
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel, c.done = cancel, done
	c.mu.Unlock()

	c.log.Infof("new game %dx%d: %s (black) vs %s (white)", rules.Size, rules.Size, rules.Player1, rules.Player2)
	c.emit(func(l Listener) { l.GameStarted() })
	go c.run(runCtx, done)
	return nil
}

// Pause stops the clock and the turn in progress. Budgets are kept.
func (c *Controller) Pause() error {
	c.mu.Lock()
	if c.state != StateRunning {
		c.mu.Unlock()
		return ErrNotRunning
	}
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	cancel()
	<-done

	c.mu.Lock()
	if c.state != StateRunning {
		c.mu.Unlock()
		return nil
	}
	c.state = StatePaused
	c.waiting = false
	c.mu.Unlock()

	c.log.Info("game paused")
	c.emit(func(l Listener) { l.GamePaused() })
	return nil
}

func (c *Controller) Resume(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StatePaused {
		c.mu.Unlock()
		return ErrNotPaused
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel, c.done = cancel, done
	c.state = StateRunning
	c.mu.Unlock()

	c.log.Info("game resumed")
	c.emit(func(l Listener) { l.GameResumed() })
	go c.run(runCtx, done)
	return nil
}

// Stop aborts the current game without a winner.
func (c *Controller) Stop() error {
	c.mu.Lock()
	if c.state != StateRunning && c.state != StatePaused {
		c.mu.Unlock()
		return ErrNotRunning
	}
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	cancel()
	<-done

	c.mu.Lock()
	if c.state == StateFinished {
		c.mu.Unlock()
		return nil
	}
	rec := c.finishLocked(0, ReasonAborted)
	c.mu.Unlock()
	c.finished(rec)
	return nil
}

// SubmitMove hands p to the player to move when that player takes moves
// from the UI.
func (c *Controller) SubmitMove(p board.Point) bool {
	c.mu.Lock()
	if c.state != StateRunning || !c.waiting {
		c.mu.Unlock()
		return false
	}
	s, ok := c.players[c.turn-1].(players.Submitter)
	c.mu.Unlock()
	if !ok {
		return false
	}
	return s.Submit(p)
}

func (c *Controller) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for ctx.Err() == nil {
		c.mu.Lock()
		idx := c.turn
		p := c.players[idx-1]
		stone := stoneOf(idx)
		pos := players.Position{Board: c.board.Clone(), Stone: stone, Last: c.lastPointLocked(), ExactFive: c.rules.ExactFive}
		budget, limited := c.budgetLocked(idx)
		c.waiting = true
		c.mu.Unlock()

		c.emit(func(l Listener) { l.TurnStarted(idx) })

		started := c.now()
		pt, err := c.ask(ctx, p, pos, budget, limited)
		elapsed := c.now().Sub(started)
		if err == nil && limited && elapsed > budget {
			err = context.DeadlineExceeded
		}

		c.mu.Lock()
		c.waiting = false
		if c.rules.GameTimingEnabled() {
			c.remaining[idx-1] -= elapsed
		}
		if ctx.Err() != nil {
			c.mu.Unlock()
			return
		}
		if err != nil {
			reason := ReasonForfeit
			if errors.Is(err, context.DeadlineExceeded) {
				reason = ReasonTimeout
			}
			c.log.Infof("player %d (%s) %s: %v", idx, p.Name(), reason, err)
			rec := c.finishLocked(3-idx, reason)
			c.mu.Unlock()
			c.finished(rec)
			return
		}
		if err := c.board.Place(pt, stone); err != nil {
			c.mu.Unlock()
			c.log.Errorf("place %v: %v", pt, err)
			continue
		}
		mv := Move{Number: len(c.moves) + 1, Player: idx, Point: pt, Elapsed: elapsed}
		c.moves = append(c.moves, mv)
		var rec *Record
		switch {
		case c.board.Wins(pt, c.rules.ExactFive):
			r := c.finishLocked(idx, ReasonFive)
			rec = &r
		case c.board.Full():
			r := c.finishLocked(0, ReasonDraw)
			rec = &r
		default:
			c.turn = 3 - idx
		}
		size := c.board.Size()
		c.mu.Unlock()

		c.log.Infof("%d. %s (%s) %s", mv.Number, p.Name(), stone, pt.Notation(size))
		c.emit(func(l Listener) { l.MoveMade(mv) })
		if rec != nil {
			c.finished(*rec)
			return
		}
	}
}

// ask requests a legal move from p, retrying on occupied or off-board
// points until the turn deadline.
func (c *Controller) ask(ctx context.Context, p players.Player, pos players.Position, budget time.Duration, limited bool) (board.Point, error) {
	turnCtx, cancel := ctx, context.CancelFunc(func() {})
	if limited {
		turnCtx, cancel = context.WithTimeout(ctx, budget)
	}
	defer cancel()
	for tries := 1; ; tries++ {
		pt, err := p.NextMove(turnCtx, pos)
		if err != nil {
			return board.Point{}, err
		}
		if pos.Board.Empty(pt) {
			return pt, nil
		}
		if tries >= maxIllegal {
			return board.Point{}, errIllegalMoves
		}
		c.log.Warnf("%s played an illegal move at %v, asking again", p.Name(), pt)
	}
}

// budgetLocked returns how long player idx may think this turn. limited is
// false when neither move nor game timing is enabled.
func (c *Controller) budgetLocked(idx int) (budget time.Duration, limited bool) {
	if c.rules.MoveTimingEnabled() {
		budget, limited = c.rules.MoveTime, true
	}
	if c.rules.GameTimingEnabled() {
		rem := max(c.remaining[idx-1], 0)
		if !limited || rem < budget {
			budget = rem
		}
		limited = true
	}
	return budget, limited
}

func (c *Controller) lastPointLocked() *board.Point {
	if len(c.moves) == 0 {
		return nil
	}
	p := c.moves[len(c.moves)-1].Point
	return &p
}

func (c *Controller) finishLocked(winner int, reason Reason) Record {
	c.state = StateFinished
	c.waiting = false
	return Record{
		ID:         c.id,
		StartedAt:  c.startedAt,
		FinishedAt: c.now(),
		Rules:      c.rules,
		Result:     Result{GameID: c.id, Winner: winner, Reason: reason, Moves: len(c.moves)},
		Moves:      append([]Move(nil), c.moves...),
	}
}

func (c *Controller) finished(rec Record) {
	res := rec.Result
	if res.Winner == 0 {
		c.log.Infof("game over: %s after %d moves", res.Reason, res.Moves)
	} else {
		c.log.Infof("game over: %s wins by %s after %d moves", rec.Rules.Player(res.Winner), res.Reason, res.Moves)
	}
	c.emit(func(l Listener) { l.GameFinished(res) })

	if c.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := c.recorder.Record(ctx, rec); err != nil {
		c.log.Errorf("record game %s: %v", rec.ID, err)
	}
}

func (c *Controller) emit(fn func(Listener)) {
	c.lmu.RLock()
	ls := append([]Listener(nil), c.listeners...)
	c.lmu.RUnlock()
	for _, l := range ls {
		fn(l)
	}
}

// stoneOf maps player 1 to black and player 2 to white.
func stoneOf(player int) board.Stone {
	if player == 1 {
		return board.Black
	}
	return board.White
}
