package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/gomoku/internal/game"
)

type (
	gameStartedMsg  struct{}
	gameResumedMsg  struct{}
	gamePausedMsg   struct{}
	gameFinishedMsg struct{ Result game.Result }
	turnStartedMsg  struct {
		Player int
		// GameLeft, Rules and At are taken when the controller emits the
		// event. At is zero when no seed func is set.
		GameLeft time.Duration
		Rules    game.Snapshot
		At       time.Time
	}
	moveMadeMsg     struct{ Move game.Move }
	settingsMsg     struct{}
)

// Events forwards controller and settings notifications to the UI loop.
// Controller events are queued in order; settings changes are coalesced.
type Events struct {
	ch      chan tea.Msg
	changed chan struct{}
	done    chan struct{}
	once    sync.Once

	// seed reads the player's remaining game time and the rules of the
	// running game. It must not wait for the turn loop.
	seed func(player int) (time.Duration, game.Snapshot)
	now  func() time.Time
}

var _ game.Listener = (*Events)(nil)

func NewEvents(buffer int) *Events {
	return &Events{
		ch:      make(chan tea.Msg, buffer),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
		now:     time.Now,
	}
}

func (e *Events) send(msg tea.Msg) {
	select {
	case e.ch <- msg:
	case <-e.done:
	}
}

func (e *Events) GameStarted()               { e.send(gameStartedMsg{}) }
func (e *Events) GameResumed()               { e.send(gameResumedMsg{}) }
func (e *Events) GamePaused()                { e.send(gamePausedMsg{}) }
func (e *Events) GameFinished(r game.Result) { e.send(gameFinishedMsg{Result: r}) }
func (e *Events) MoveMade(m game.Move)       { e.send(moveMadeMsg{Move: m}) }

// TurnStarted runs before the player is asked for a move, so the budget
// read here is the one the turn starts with.
func (e *Events) TurnStarted(player int) {
	msg := turnStartedMsg{Player: player}
	if e.seed != nil {
		msg.GameLeft, msg.Rules = e.seed(player)
		msg.At = e.now()
	}
	e.send(msg)
}
// SettingsChanged is registered with game.Settings.OnChange. It never
// blocks, so it is safe to trigger from Update.
func (e *Events) SettingsChanged() {
	select {
	case e.changed <- struct{}{}:
	default:
	}
}

// Wait returns a command delivering the next notification. It yields nil
// once the bridge is closed.
func (e *Events) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-e.ch:
			return msg
		case <-e.changed:
			return settingsMsg{}
		case <-e.done:
			return nil
		}
	}
}

// Close releases blocked senders. Events sent afterwards are dropped.
func (e *Events) Close() {
	e.once.Do(func() { close(e.done) })
}

type logLineMsg string

func waitLog(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		l, ok := <-lines
		if !ok {
			return nil
		}
		return logLineMsg(l)
	}
}
