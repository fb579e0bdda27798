package game

import (
	"sync"
	"time"

	"github.com/jask/gomoku/internal/board"
)

// Snapshot is an immutable copy of Settings.
type Snapshot struct {
	Size      int
	GameTime  time.Duration
	MoveTime  time.Duration
	Player1   string
	Player2   string
	ExactFive bool
}

func (s Snapshot) GameTimingEnabled() bool { return s.GameTime > 0 }
func (s Snapshot) MoveTimingEnabled() bool { return s.MoveTime > 0 }

// Player returns the configured name for player 1 or 2.
func (s Snapshot) Player(i int) string {
	if i == 2 {
		return s.Player2
	}
	return s.Player1
}

// Settings holds the options for the next game and notifies listeners when
// they change. Zero time budgets mean unlimited.
type Settings struct {
	mu        sync.Mutex
	s         Snapshot
	listeners map[int]func()
	nextID    int
}

func NewSettings(s Snapshot) *Settings {
	if !board.ValidSize(s.Size) {
		s.Size = board.Sizes[0]
	}
	return &Settings{s: s, listeners: make(map[int]func())}
}

// OnChange registers fn to run after every effective change. The returned
// func removes it.
func (st *Settings) OnChange(fn func()) (unsubscribe func()) {
	st.mu.Lock()
	id := st.nextID
	st.nextID++
	st.listeners[id] = fn
	st.mu.Unlock()
	return func() {
		st.mu.Lock()
		delete(st.listeners, id)
		st.mu.Unlock()
	}
}

func (st *Settings) Snapshot() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s
}

func (st *Settings) Size() int               { return st.Snapshot().Size }
func (st *Settings) GameTime() time.Duration { return st.Snapshot().GameTime }
func (st *Settings) MoveTime() time.Duration { return st.Snapshot().MoveTime }
func (st *Settings) Player1() string         { return st.Snapshot().Player1 }
func (st *Settings) Player2() string         { return st.Snapshot().Player2 }
func (st *Settings) ExactFive() bool         { return st.Snapshot().ExactFive }
func (st *Settings) GameTimingEnabled() bool { return st.Snapshot().GameTimingEnabled() }
func (st *Settings) MoveTimingEnabled() bool { return st.Snapshot().MoveTimingEnabled() }

func (st *Settings) SetSize(n int) error {
	if !board.ValidSize(n) {
		return board.ErrInvalidSize
	}
	st.update(func(s *Snapshot) { s.Size = n })
	return nil
}

// SetGameTime sets the per-game budget; d <= 0 disables game timing.
func (st *Settings) SetGameTime(d time.Duration) {
	st.update(func(s *Snapshot) { s.GameTime = max(d, 0) })
}

// SetMoveTime sets the per-move budget; d <= 0 disables move timing.
func (st *Settings) SetMoveTime(d time.Duration) {
	st.update(func(s *Snapshot) { s.MoveTime = max(d, 0) })
}

func (st *Settings) SetPlayer1(name string) { st.update(func(s *Snapshot) { s.Player1 = name }) }
func (st *Settings) SetPlayer2(name string) { st.update(func(s *Snapshot) { s.Player2 = name }) }
func (st *Settings) SetExactFive(v bool)    { st.update(func(s *Snapshot) { s.ExactFive = v }) }

func (st *Settings) update(fn func(*Snapshot)) {
	st.mu.Lock()
	before := st.s
	fn(&st.s)
	if st.s == before {
		st.mu.Unlock()
		return
	}
	fns := make([]func(), 0, len(st.listeners))
	for _, l := range st.listeners {
		fns = append(fns, l)
	}
	st.mu.Unlock()
	for _, l := range fns {
		l()
	}
}
